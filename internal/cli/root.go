// Package cli builds the cobra root command shared by the tubekit
// binaries: config loading, color setup, logging, dependency checks, and
// the single-instance lock all happen here so each tool only supplies its
// run function.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kestrelmedia/tubekit/internal/check"
	"github.com/kestrelmedia/tubekit/internal/config"
	"github.com/kestrelmedia/tubekit/internal/display"
	"github.com/kestrelmedia/tubekit/internal/logging"
	"github.com/kestrelmedia/tubekit/internal/runlock"
	"github.com/kestrelmedia/tubekit/internal/term"
)

// App describes one tubekit binary.
type App struct {
	Name    string // binary name, also used for the lock file
	Short   string
	Version string

	// NeedsFfmpeg gates the pre-run ffmpeg/ffprobe validation; the mover
	// works purely on the filesystem and skips it.
	NeedsFfmpeg bool
}

// RunFunc is the tool entry point invoked once setup succeeds.
type RunFunc func(ctx context.Context, cfg *config.Config, log *logging.Logger) error

// NewRoot builds the root command for one binary.
func NewRoot(app App, run RunFunc) *cobra.Command {
	var (
		configFlag string
		checkFlag  bool
		dryRunFlag bool
		verboseFlg bool
	)

	rootCmd := &cobra.Command{
		Use:           app.Name,
		Short:         app.Short,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load validates; DryRun/Verbose are runtime-only fields.
			cfg, path, exists, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			cfg.DryRun = dryRunFlag
			cfg.Verbose = verboseFlg

			term.Configure(cfg.Logging.Color)

			log, err := logging.NewLogger(cfg.Logging.File)
			if err != nil {
				return err
			}
			defer log.Close()

			display.PrintBanner()
			log.Info("=== %s v%s ===", app.Name, app.Version)
			if exists {
				log.Debug(cfg.Verbose, "Config: %s", path)
			} else {
				log.Debug(cfg.Verbose, "No config file found, using defaults")
			}

			if checkFlag {
				check.RunCheck(cfg, log)
				return nil
			}

			if app.NeedsFfmpeg {
				if err := check.CheckDeps(cfg); err != nil {
					return err
				}
			}

			release, err := runlock.Acquire(runlock.DefaultPath(app.Name))
			if err != nil {
				return err
			}
			defer release()

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return run(ctx, cfg, log)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "configuration file path")
	rootCmd.Flags().BoolVar(&checkFlag, "check", false, "run system diagnostics and exit")
	rootCmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "log actions without writing or moving files")
	rootCmd.Flags().BoolVarP(&verboseFlg, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newInitConfigCommand())

	return rootCmd
}

// newInitConfigCommand writes the annotated sample config to the default
// location (or prints it with --stdout).
func newInitConfigCommand() *cobra.Command {
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write an annotated sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			sample := config.SampleConfig()
			if toStdout {
				fmt.Fprint(cmd.OutOrStdout(), sample)
				return nil
			}

			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config already exists at %s", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print the sample config instead of writing it")
	return cmd
}

// Execute runs the command and maps errors to the process exit code.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		if err != context.Canceled {
			fmt.Fprintf(os.Stderr, "%s: %v\n", cmd.Name(), err)
		}
		os.Exit(1)
	}
}
