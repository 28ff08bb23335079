// Package bootstrap wires adapters, services and usecases into a ready
// application for the CLI to drive.
package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	exportin "tempo/internal/modules/export/adapter/in"
	exportout "tempo/internal/modules/export/adapter/out"
	exportservice "tempo/internal/modules/export/service"
	exportusecase "tempo/internal/modules/export/usecase"
	reportin "tempo/internal/modules/report/adapter/in"
	reportout "tempo/internal/modules/report/adapter/out"
	reportservice "tempo/internal/modules/report/service"
	reportusecase "tempo/internal/modules/report/usecase"
	trackerin "tempo/internal/modules/tracker/adapter/in"
	trackerout "tempo/internal/modules/tracker/adapter/out"
	trackerservice "tempo/internal/modules/tracker/service"
	trackerusecase "tempo/internal/modules/tracker/usecase"
	"tempo/internal/platform/clock"
	"tempo/internal/platform/config"
	"tempo/internal/platform/logging"
	"tempo/internal/platform/notify"
	"tempo/internal/platform/tx"
	"tempo/internal/ui/status"
)

type App struct {
	Config config.Config
	Log    zerolog.Logger

	TrackerCLI trackerin.CLIHandler
	ReportCLI  reportin.CLIHandler
	ExportCLI  exportin.CLIHandler

	store *trackerout.SQLiteSessionStore
}

func New(cfg config.Config) (*App, error) {
	log := logging.New(cfg.LogLevel)
	clk := clock.SystemClock{}

	store, err := trackerout.NewSQLiteSessionStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	log.Debug().Str("db", cfg.DBPath).Msg("session store ready")

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Notifications {
		notifier = notify.NewDesktop("tempo")
	}

	trackerUC := trackerusecase.NewInteractor(
		trackerservice.NewTrackerService(clk, store),
		store,
		tx.SQLManager{DB: store.DB()},
		notifier,
		cfg.DefaultTopic,
	)
	reportUC := reportusecase.NewInteractor(
		reportservice.NewReportService(clk, reportout.NewSQLiteStatsReader(store.DB())),
	)
	exportUC := exportusecase.NewInteractor(
		exportservice.NewExportService(
			exportout.NewYAMLManifestStore(cfg.PluginDir),
			exportout.NewGRPCHost(),
			exportout.NewCSVWriter(clk, cfg.ExportDir),
			cfg.ExportDir,
		),
		trackerUC,
	)

	return &App{
		Config:     cfg,
		Log:        log,
		TrackerCLI: trackerin.NewCLIHandler(trackerUC),
		ReportCLI:  reportin.NewCLIHandler(reportUC),
		ExportCLI:  exportin.NewCLIHandler(exportUC),
		store:      store,
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

// RunStatus blocks on the live dashboard until the user quits.
func RunStatus(app *App) error {
	program := tea.NewProgram(status.New(app.TrackerCLI, app.ReportCLI), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
