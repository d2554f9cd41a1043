package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"vitals/internal/bootstrap"
	"vitals/internal/platform/config"
	"vitals/internal/platform/logging"
	"vitals/internal/platform/respond"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var verbose bool

	root := &cobra.Command{
		Use:           "vitals",
		Short:         "Synthetic health metrics and export scanning",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $VITALS_CONFIG)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(newStatusCmd(&configPath, &verbose))
	root.AddCommand(newHRVCmd(&configPath, &verbose))
	root.AddCommand(newSleepCmd(&configPath, &verbose))
	root.AddCommand(newAlertCmd(&configPath, &verbose))
	root.AddCommand(newImportCmd(&configPath, &verbose))
	root.AddCommand(newTUICmd(&configPath, &verbose))
	return root
}

func loadApp(configPath string, verbose bool) (*bootstrap.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.LogLevel, verbose)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, log), nil
}

// emit writes the envelope for one command run. A failed run still writes a
// well-formed envelope to stdout; the returned error drives the exit code.
func emit(w io.Writer, app *bootstrap.App, command string, result any, err error) error {
	if err != nil {
		app.Log.Debugw("command failed", "command", command, "error", err)
		if werr := respond.Failure(command, err).Write(w, app.Config.Pretty); werr != nil {
			return werr
		}
		return err
	}
	return respond.Success(command, result).Write(w, app.Config.Pretty)
}

func newStatusCmd(configPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Today's health snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath, *verbose)
			if err != nil {
				return err
			}
			out, err := app.AnalyticsCLI.Status(context.Background())
			return emit(cmd.OutOrStdout(), app, "status", out, err)
		},
	}
}

func newHRVCmd(configPath *string, verbose *bool) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "hrv",
		Short: "Heart-rate-variability report over a day window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath, *verbose)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("days") {
				days = app.Config.DefaultDays
			}
			app.Log.Debugw("running hrv report", "days", days)
			out, err := app.AnalyticsCLI.HRVReport(context.Background(), days)
			return emit(cmd.OutOrStdout(), app, "hrv", out, err)
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "window size in days (1-90)")
	return cmd
}

func newSleepCmd(configPath *string, verbose *bool) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "sleep",
		Short: "Sleep report over a day window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath, *verbose)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("days") {
				days = app.Config.DefaultDays
			}
			app.Log.Debugw("running sleep report", "days", days)
			out, err := app.AnalyticsCLI.SleepReport(context.Background(), days)
			return emit(cmd.OutOrStdout(), app, "sleep", out, err)
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "window size in days (1-90)")
	return cmd
}

func newAlertCmd(configPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "alert",
		Short: "Check metrics against alert thresholds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath, *verbose)
			if err != nil {
				return err
			}
			out, err := app.AnalyticsCLI.AlertCheck(context.Background())
			return emit(cmd.OutOrStdout(), app, "alert", out, err)
		},
	}
}

func newImportCmd(configPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Scan a health export file and report its structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configPath, *verbose)
			if err != nil {
				return err
			}
			app.Log.Debugw("scanning export", "path", args[0])
			out, err := app.ImporterCLI.Scan(context.Background(), args[0])
			return emit(cmd.OutOrStdout(), app, "import", out, err)
		},
	}
}

func newTUICmd(configPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath, *verbose)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}
