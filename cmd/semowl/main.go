// Package main provides the semowl binary entry point.
// Semowl validates OWL 2 ontology snapshots against the standard
// consistency rules and resolves OWL-Time descriptions.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/semowl/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semowl"
)

// errThreshold is returned when a report reaches the fail-on severity.
var errThreshold = errors.New("validation failed")

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globals carries the persistent flags and what they load.
type globals struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func rootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "OWL 2 ontology validator and OWL-Time resolver",
		Long: `Semowl checks OWL 2 ontologies for semantic inconsistencies and
interprets W3C OWL-Time descriptions.

It provides:
- Validation with 25 standard consistency rules
- Reports as tables, JSON, YAML or RDF (Turtle, N-Triples, JSON-LD)
- Publishing of reports to the knowledge graph over NATS
- Calendar coordinates and extents of OWL-Time instants and intervals`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load()
		},
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(validateCmd(g))
	cmd.AddCommand(rulesCmd())
	cmd.AddCommand(timeCmd(g))

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// load configures logging and reads the layered configuration.
func (g *globals) load() error {
	g.logger = newLogger(g.logLevel)
	slog.SetDefault(g.logger)

	cfg, err := config.NewLoader(g.logger).Load(g.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	g.cfg = cfg
	return nil
}

func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
