// Package cli implements the cobra-based CLI commands for repodesc.
//
// Each subcommand (split, generate) is defined in its own file within
// this package. This file defines the root command that serves as the
// parent for all subcommands and handles global flags, logging and the
// translation of errors into exit codes.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/repodesc/internal/config"
	"github.com/mmr-tortoise/repodesc/internal/logging"
	"github.com/mmr-tortoise/repodesc/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether errors are reported as JSON on stderr.
	jsonOutput bool

	// verbose lowers the log level from error to debug.
	verbose bool

	// configPath is the optional YAML configuration file.
	configPath string
)

// logger is built once flags are parsed (see PersistentPreRunE).
var logger *slog.Logger

// now supplies the update date of rendered descriptions. Tests pin it.
var now = time.Now

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action; it only provides
// help text and global flags. The work is done by the split and generate
// subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repodesc",
		Short: "Generate container registry descriptions from markdown",
		Long: `repodesc renders the descriptions shown on container registry listings.

It splits registry documentation into the "about" and "usage" documents
used by the public ECR gallery, and renders the full description for
Docker Hub from a template and the CI build matrix.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute logs them itself (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// The logger depends on --verbose, so it can only be built once
		// flags have been parsed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = logging.New(cmd.ErrOrStderr(), verbose)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Report errors in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")

	rootCmd.AddCommand(NewSplitCommand())
	rootCmd.AddCommand(NewGenerateCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// Every error is classified into a CLIError, logged to stderr, and turned
// into the process exit code. Failures are never retried.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		cliErr := classify(err)
		printError(rootCmd.ErrOrStderr(), cliErr)
		os.Exit(int(cliErr.Code))
	}
}

// printError outputs a classified error in the appropriate format
// (JSON or log line) based on the --json global flag.
func printError(w io.Writer, cliErr *model.CLIError) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"kind":    cliErr.Kind.String(),
				"message": cliErr.Message,
			},
		}
		if cliErr.Err != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = cliErr.Err.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	attrs := []any{"kind", cliErr.Kind.String()}
	if cliErr.Err != nil {
		attrs = append(attrs, "error", cliErr.Err.Error())
	}
	log(w).Error(cliErr.Message, attrs...)
}

// log returns the command logger, falling back to an error-level logger
// on w when the command failed before flags were parsed.
func log(w io.Writer) *slog.Logger {
	if logger != nil {
		return logger
	}
	return logging.New(w, verbose)
}

// loadConfig reads the --config file, or returns the defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		logger.Debug("configuration loaded", "path", configPath, "targets", len(cfg.Targets))
	}
	return cfg, nil
}
