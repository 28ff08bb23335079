package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tempo/internal/bootstrap"
	"tempo/internal/platform/config"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/ui/confirm"
	"tempo/internal/ui/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "tempo",
		Short:         "Track time spent on topics from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default: platform config dir)")

	root.AddCommand(
		newStartCmd(&dataDir),
		newStopCmd(&dataDir),
		newShowCmd(&dataDir),
		newListCmd(&dataDir),
		newAddCmd(&dataDir),
		newEditCmd(&dataDir),
		newDeleteCmd(&dataDir),
		newExportCmd(&dataDir),
		newResetCmd(&dataDir),
		newStatusCmd(&dataDir),
		newPluginCmd(&dataDir),
	)
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newStartCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start [topic]",
		Short: "Start tracking a session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			topic := ""
			if len(args) == 1 {
				topic = args[0]
			}
			out, err := app.TrackerCLI.Start(context.Background(), topic)
			if err != nil {
				if errors.Is(err, apperrors.ErrActiveSessionExists) {
					return fmt.Errorf("a session is already active, stop it first with 'tempo stop'")
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started: %s\n", out.Topic)
			return nil
		},
	}
}

func newStopCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stop [topic]",
		Short: "Stop the active session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			topic := ""
			if len(args) == 1 {
				topic = args[0]
			}
			out, err := app.TrackerCLI.Stop(context.Background(), topic)
			if err != nil {
				if errors.Is(err, apperrors.ErrNoActiveSession) {
					return fmt.Errorf("no active session to stop")
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stopped: %s (%.2fh)\n", out.Topic, out.Hours)
			return nil
		},
	}
}

func newShowCmd(dataDir *string) *cobra.Command {
	var (
		count  int
		period string
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active session and recent or aggregated hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := context.Background()
			stdout := cmd.OutOrStdout()

			active, err := app.TrackerCLI.Active(ctx)
			switch {
			case err == nil:
				fmt.Fprintln(stdout, render.ActiveBanner(active))
				fmt.Fprintln(stdout)
			case !errors.Is(err, apperrors.ErrNoActiveSession):
				return err
			}

			if period == "" {
				sessions, err := app.TrackerCLI.List(ctx, count)
				if err != nil {
					return err
				}
				fmt.Fprint(stdout, render.Sessions(sessions, false))
				return nil
			}
			stats, err := app.ReportCLI.Period(ctx, period, count)
			if err != nil {
				return err
			}
			fmt.Fprint(stdout, render.PeriodStats(stats))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of sessions or periods to show")
	cmd.Flags().StringVarP(&period, "period", "p", "", "aggregate by period: day, week, month or year")
	return cmd
}

func newListCmd(dataDir *string) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent sessions with their IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			sessions, err := app.TrackerCLI.List(context.Background(), count)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Sessions(sessions, true))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of sessions to list")
	return cmd
}

func newAddCmd(dataDir *string) *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "add <topic>",
		Short: "Add a completed session with explicit start and end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			out, err := app.TrackerCLI.Add(context.Background(), args[0], start, end)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added: %s (%.2fh)\n", out.Topic, out.Hours)
			return nil
		},
	}
	cmd.Flags().StringVarP(&start, "start", "s", "", `start time in "DD.MM.YYYY HH:MM"`)
	cmd.Flags().StringVarP(&end, "end", "e", "", `end time in "DD.MM.YYYY HH:MM"`)
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newEditCmd(dataDir *string) *cobra.Command {
	var topic, start, end string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit fields of an existing session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			var topicPtr, startPtr, endPtr *string
			if cmd.Flags().Changed("topic") {
				topicPtr = &topic
			}
			if cmd.Flags().Changed("start") {
				startPtr = &start
			}
			if cmd.Flags().Changed("end") {
				endPtr = &end
			}
			if err := app.TrackerCLI.Edit(context.Background(), id, topicPtr, startPtr, endPtr); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated session %d\n", id)
			return nil
		},
	}
	cmd.Flags().StringVarP(&topic, "topic", "t", "", "new topic")
	cmd.Flags().StringVarP(&start, "start", "s", "", `new start time in "DD.MM.YYYY HH:MM"`)
	cmd.Flags().StringVarP(&end, "end", "e", "", `new end time in "DD.MM.YYYY HH:MM"`)
	return cmd
}

func newDeleteCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.TrackerCLI.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %d\n", id)
			return nil
		},
	}
}

func newExportCmd(dataDir *string) *cobra.Command {
	var pluginName string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all completed sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			out, err := app.ExportCLI.Export(context.Background(), pluginName)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d sessions to: %s\n", out.Count, out.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&pluginName, "plugin", "", "export through the named exporter plugin instead of CSV")
	return cmd
}

func newResetCmd(dataDir *string) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all tracked sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				ok, err := confirm.Ask("This permanently deletes all tracked sessions. Continue?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
					return nil
				}
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.TrackerCLI.Reset(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All sessions deleted")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")
	return cmd
}

func newStatusCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Live dashboard of the active session and today's totals",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			return bootstrap.RunStatus(app)
		},
	}
}

func newPluginCmd(dataDir *string) *cobra.Command {
	plugin := &cobra.Command{
		Use:   "plugin",
		Short: "Inspect exporter plugins",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List configured exporter plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			exporters, err := app.ExportCLI.ListExporters(context.Background())
			if err != nil {
				return err
			}
			stdout := cmd.OutOrStdout()
			if len(exporters) == 0 {
				fmt.Fprintln(stdout, "No exporter plugins configured")
				return nil
			}
			fmt.Fprintf(stdout, "%-15s %-10s %-8s %s\n", "NAME", "VERSION", "ENABLED", "BINARY")
			for _, exporter := range exporters {
				fmt.Fprintf(stdout, "%-15s %-10s %-8t %s\n", exporter.Name, exporter.Version, exporter.Enabled, exporter.Binary)
			}
			return nil
		},
	}

	check := &cobra.Command{
		Use:   "check <name>",
		Short: "Launch an exporter plugin and verify its identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			exporter, err := app.ExportCLI.CheckExporter(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s %s\n", exporter.Name, exporter.Version)
			return nil
		},
	}

	plugin.AddCommand(list, check)
	return plugin
}
