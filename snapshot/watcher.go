package snapshot

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

const (
	// DefaultDebounce is how long changes are collected before a batch is emitted.
	DefaultDebounce = 250 * time.Millisecond

	batchChannelBuffer = 16
)

// excludedDirs are never watched.
var excludedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

// Watcher watches snapshot files matching a set of patterns and emits the
// changed paths in debounced batches.
type Watcher struct {
	patterns []string
	roots    []string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *slog.Logger

	// Debouncing: collect changes before emitting
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	// Content hashes suppress batches for saves that change nothing.
	hashMu sync.Mutex
	hashes map[string]string

	batches chan []string

	droppedBatches atomic.Int64
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce delay.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithWatchLogger sets the logger.
func WithWatchLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatcher creates a watcher for the given file paths, directories and
// glob patterns. Patterns are interpreted the same way as ResolvePaths.
func NewWatcher(patterns []string, opts ...WatcherOption) (*Watcher, error) {
	w := &Watcher{
		debounce: DefaultDebounce,
		logger:   slog.Default(),
		pending:  make(map[string]fsnotify.Op),
		hashes:   make(map[string]string),
		batches:  make(chan []string, batchChannelBuffer),
	}
	for _, opt := range opts {
		opt(w)
	}

	seenRoot := make(map[string]bool)
	for _, pattern := range patterns {
		abs, root, err := watchPattern(pattern)
		if err != nil {
			return nil, err
		}
		w.patterns = append(w.patterns, abs)
		if !seenRoot[root] {
			seenRoot[root] = true
			w.roots = append(w.roots, root)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w.watcher = fsw
	return w, nil
}

// watchPattern normalises a pattern to an absolute glob and returns the
// directory that has to be watched for it.
func watchPattern(pattern string) (string, string, error) {
	if !containsGlob(pattern) {
		abs, err := filepath.Abs(pattern)
		if err != nil {
			return "", "", err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", "", err
		}
		if info.IsDir() {
			return filepath.Join(abs, "**", "*"), abs, nil
		}
		return abs, filepath.Dir(abs), nil
	}

	abs, err := makeAbsolutePattern(pattern)
	if err != nil {
		return "", "", err
	}
	root := abs[:strings.IndexAny(abs, "*?[{")]
	if i := strings.LastIndex(root, string(filepath.Separator)); i >= 0 {
		root = root[:i]
	}
	if root == "" {
		root = string(filepath.Separator)
	}
	return abs, root, nil
}

// Batches returns the channel of changed snapshot paths. Each batch is
// sorted and holds every file that changed during one debounce window.
func (w *Watcher) Batches() <-chan []string {
	return w.batches
}

// Start begins watching. The batch channel is closed when ctx is done or
// the watcher is stopped.
func (w *Watcher) Start(ctx context.Context) error {
	for _, root := range w.roots {
		if err := w.addWatchesRecursive(root); err != nil {
			return err
		}
	}

	go w.processEvents(ctx)

	w.logger.Info("Snapshot watcher started",
		"roots", w.roots,
		"debounce", w.debounce)

	return nil
}

// Stop stops the watcher.
// The batch channel is closed by processEvents when it exits.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// Matches reports whether path is a snapshot covered by the watch patterns.
func (w *Watcher) Matches(path string) bool {
	if !IsSnapshotFile(path) {
		return false
	}
	for _, pattern := range w.patterns {
		if pattern == path {
			return true
		}
		if ok, err := doublestar.PathMatch(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

// DroppedBatches returns the number of batches dropped because the channel
// was full.
func (w *Watcher) DroppedBatches() int64 {
	return w.droppedBatches.Load()
}

// addWatchesRecursive adds watches to all directories below root.
func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		if path != root && skipDir(filepath.Base(path)) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory",
				"path", path,
				"error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}

		return nil
	})
}

func skipDir(base string) bool {
	return excludedDirs[base] || (strings.HasPrefix(base, ".") && base != ".")
}

// processEvents handles fsnotify events with debouncing.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.batches)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// handleFSEvent processes a single fsnotify event.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := event.Name

	if !IsSnapshotFile(path) {
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				w.handleNewDirectory(path)
			}
		}
		return
	}

	if !w.Matches(path) {
		return
	}

	w.pendingMu.Lock()
	w.pending[path] |= event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Snapshot change detected",
		"path", path,
		"op", event.Op.String())
}

// handleNewDirectory adds a watch to a newly created directory.
func (w *Watcher) handleNewDirectory(path string) {
	if skipDir(filepath.Base(path)) {
		return
	}

	if err := w.watcher.Add(path); err != nil {
		w.logger.Warn("Failed to watch new directory",
			"path", path,
			"error", err)
	} else {
		w.logger.Debug("Added watch for new directory", "path", path)
	}
}

// flushPending emits accumulated changes as one batch.
func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	var batch []string
	for path := range toProcess {
		if w.changed(path) {
			batch = append(batch, path)
		}
	}
	if len(batch) == 0 {
		return
	}
	sort.Strings(batch)

	select {
	case w.batches <- batch:
		w.logger.Debug("Sent snapshot batch", "files", len(batch))
	default:
		dropped := w.droppedBatches.Add(1)
		w.logger.Warn("Batch channel full, dropping batch",
			"files", len(batch),
			"total_dropped", dropped)
	}
}

// changed reports whether the file content differs from the last batch.
// Removed files always count as changed.
func (w *Watcher) changed(path string) bool {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()

	content, err := os.ReadFile(path)
	if err != nil {
		_, had := w.hashes[path]
		delete(w.hashes, path)
		return had || os.IsNotExist(err)
	}

	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:])
	if w.hashes[path] == hash {
		return false
	}
	w.hashes[path] = hash
	return true
}
