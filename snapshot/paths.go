package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Extensions are the file extensions recognised as snapshots.
var Extensions = []string{".yaml", ".yml"}

// ResolvePaths expands file paths, directories and glob patterns to snapshot
// files. Supports both single-level wildcards (*) and recursive wildcards (**).
//
// Examples:
//   - "./pizza.yaml" → ["/abs/pizza.yaml"]
//   - "./ontologies" → every snapshot below the directory
//   - "./ontologies/**/*.yaml" → every match, recursively
//
// The result is absolute, deduplicated and sorted.
func ResolvePaths(patterns []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		paths, err := resolvePattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}

		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				resolved = append(resolved, p)
			}
		}
	}

	sort.Strings(resolved)
	return resolved, nil
}

// resolvePattern expands a single pattern to snapshot files.
func resolvePattern(pattern string) ([]string, error) {
	if !containsGlob(pattern) {
		absPath, err := filepath.Abs(pattern)
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			return []string{absPath}, nil
		}

		// A directory stands for every snapshot below it.
		pattern = filepath.Join(absPath, "**", "*")
	}

	absPattern, err := makeAbsolutePattern(pattern)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}

	var files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		if IsSnapshotFile(match) {
			files = append(files, match)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no snapshot files match pattern: %s", pattern)
	}

	return files, nil
}

// IsSnapshotFile reports whether path has a snapshot extension.
func IsSnapshotFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// makeAbsolutePattern converts a relative pattern to absolute.
// Preserves glob characters in the pattern.
func makeAbsolutePattern(pattern string) (string, error) {
	pattern = filepath.FromSlash(pattern)
	if filepath.IsAbs(pattern) {
		return pattern, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, pattern), nil
}
