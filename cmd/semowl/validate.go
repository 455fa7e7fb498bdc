package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/semowl/config"
	"github.com/c360studio/semowl/export"
	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/snapshot"
	"github.com/c360studio/semowl/storage"
	"github.com/c360studio/semowl/validator"
	"github.com/c360studio/semowl/validator/report"
)

type validateOptions struct {
	rules       []string
	format      string
	profile     string
	failOn      string
	watch       bool
	natsURL     string
	natsSubject string
	store       bool
}

func validateCmd(g *globals) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [files|dirs|globs...]",
		Short: "Validate ontology snapshots",
		Long: `Validate loads each snapshot, runs the configured rules and prints one
report per file. Directories expand to every snapshot below them and glob
patterns may use ** for recursive matching.

The command exits non-zero when any report has an issue at or above the
--fail-on severity.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.apply(cmd, g.cfg); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runValidate(ctx, cmd.OutOrStdout(), g.cfg, g.logger, args, opts.watch)
		},
	}

	cmd.Flags().StringSliceVar(&opts.rules, "rules", nil, "Rules to run (default all)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format ("+strings.Join(config.Formats, ", ")+")")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "RDF export profile ("+strings.Join(config.Profiles, ", ")+")")
	cmd.Flags().StringVar(&opts.failOn, "fail-on", "", "Severity that fails the run (error, warning, none)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-validate snapshots when they change")
	cmd.Flags().StringVar(&opts.natsURL, "nats-url", "", "Publish reports to this NATS server")
	cmd.Flags().StringVar(&opts.natsSubject, "nats-subject", "", "Subject reports are published on")
	cmd.Flags().BoolVar(&opts.store, "store", false, "Keep reports in the NATS KV report store")

	return cmd
}

// apply overrides cfg with the flags that were set and re-validates it.
func (o *validateOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("rules") {
		cfg.Validator.Rules = o.rules
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("profile") {
		cfg.Output.Profile = o.profile
	}
	if flags.Changed("fail-on") {
		cfg.Validator.FailOn = o.failOn
	}
	if flags.Changed("nats-url") {
		cfg.NATS.URL = o.natsURL
	}
	if flags.Changed("nats-subject") {
		cfg.NATS.Subject = o.natsSubject
	}
	if flags.Changed("store") {
		cfg.NATS.Store = o.store
	}
	return cfg.Validate()
}

// session validates snapshots with one configured validator.
type session struct {
	out       io.Writer
	cfg       *config.Config
	logger    *slog.Logger
	validator *validator.Validator
	publisher graph.Publisher
	store     *storage.Store
}

func newSession(out io.Writer, cfg *config.Config, logger *slog.Logger) (*session, error) {
	v := validator.New(validator.WithLogger(logger))
	ids, err := cfg.Validator.RuleIDs()
	if err != nil {
		return nil, err
	}
	if ids == nil {
		v.AddAllStandardRules()
	} else if err := v.AddStandardRules(ids...); err != nil {
		return nil, err
	}
	return &session{out: out, cfg: cfg, logger: logger, validator: v}, nil
}

func runValidate(ctx context.Context, out io.Writer, cfg *config.Config, logger *slog.Logger, patterns []string, watch bool) error {
	s, err := newSession(out, cfg, logger)
	if err != nil {
		return err
	}

	if cfg.NATS.URL != "" {
		client, err := graph.Connect(ctx, cfg.NATS.URL, cfg.NATS.Timeout)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close(context.Background()) }()
		s.publisher = client

		if cfg.NATS.Store {
			if s.store, err = storage.Open(ctx, client); err != nil {
				return err
			}
		}
	}

	paths, err := snapshot.ResolvePaths(patterns)
	if err != nil {
		return err
	}

	failed, err := s.validateAll(ctx, paths)
	if err != nil {
		return err
	}
	if !watch {
		if failed {
			return errThreshold
		}
		return nil
	}
	return s.watch(ctx, patterns)
}

// validateAll validates each path in order and reports whether any report
// reached the fail-on threshold.
func (s *session) validateAll(ctx context.Context, paths []string) (bool, error) {
	threshold, enabled, err := s.cfg.Validator.Threshold()
	if err != nil {
		return false, err
	}

	failed := false
	for _, path := range paths {
		rep, err := s.validateFile(ctx, path)
		if err != nil {
			return failed, err
		}
		if enabled && rep.AtLeast(threshold) {
			failed = true
		}
	}
	return failed, nil
}

func (s *session) validateFile(ctx context.Context, path string) (*report.Report, error) {
	ont, err := snapshot.LoadFile(path)
	if err != nil {
		return nil, err
	}

	started := time.Now().UTC()
	rep := s.validator.ApplyToOntology(ont)
	meta := export.ReportMeta{
		Rules:     s.validator.Rules(),
		StartedAt: started,
		EndedAt:   time.Now().UTC(),
		Version:   Version,
	}

	if err := renderReport(s.out, path, rep, meta, s.cfg.Output); err != nil {
		return nil, err
	}

	if err := graph.PublishReport(ctx, s.publisher, s.cfg.NATS.Subject, rep, meta); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.logger.Info("Published report",
			"report", rep.ID,
			"subject", s.cfg.NATS.Subject)
	}

	if s.store != nil {
		rec := &storage.Record{Report: rep, File: path, Rules: meta.Rules}
		if err := s.store.Save(ctx, rec); err != nil {
			return nil, err
		}
		s.logger.Debug("Stored report", "report", rep.ID, "bucket", storage.BucketReports)
	}
	return rep, nil
}

// watch re-validates changed snapshots until ctx is done. Load errors are
// logged so that a broken save does not end the session.
func (s *session) watch(ctx context.Context, patterns []string) error {
	w, err := snapshot.NewWatcher(patterns,
		snapshot.WithDebounce(s.cfg.Watch.Debounce),
		snapshot.WithWatchLogger(s.logger))
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	for batch := range w.Batches() {
		for _, path := range batch {
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				s.logger.Info("Snapshot removed", "path", path)
				continue
			}
			if _, err := s.validateFile(ctx, path); err != nil {
				s.logger.Error("Validation failed", "path", path, "error", err)
			}
		}
	}
	return nil
}
