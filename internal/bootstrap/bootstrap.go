package bootstrap

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	analyticsinadapter "vitals/internal/modules/analytics/adapter/in"
	analyticsoutadapter "vitals/internal/modules/analytics/adapter/out"
	analyticsservice "vitals/internal/modules/analytics/service"
	analyticsusecase "vitals/internal/modules/analytics/usecase"
	importerinadapter "vitals/internal/modules/importer/adapter/in"
	importeroutadapter "vitals/internal/modules/importer/adapter/out"
	importerservice "vitals/internal/modules/importer/service"
	importerusecase "vitals/internal/modules/importer/usecase"
	synthservice "vitals/internal/modules/synth/service"
	synthusecase "vitals/internal/modules/synth/usecase"
	"vitals/internal/platform/clock"
	"vitals/internal/platform/config"
	"vitals/internal/platform/randsrc"
	uiapp "vitals/internal/ui/app"
)

type App struct {
	AnalyticsCLI analyticsinadapter.CLIHandler
	ImporterCLI  importerinadapter.CLIHandler
	Config       config.Config
	Log          *zap.SugaredLogger
}

func New(cfg config.Config, log *zap.SugaredLogger) *App {
	clk := clock.SystemClock{}

	generator := synthservice.NewGenerator(clk, randsrc.System{})
	synthUC := synthusecase.NewInteractor(generator)

	engine := analyticsservice.NewEngine(analyticsoutadapter.NewSynthSampleSource(synthUC), clk)
	analyticsUC := analyticsusecase.NewInteractor(engine)

	importerUC := importerusecase.NewInteractor(
		importerservice.NewImportService(importeroutadapter.NewLocalExportReader()),
	)

	return &App{
		AnalyticsCLI: analyticsinadapter.NewCLIHandler(analyticsUC),
		ImporterCLI:  importerinadapter.NewCLIHandler(importerUC),
		Config:       cfg,
		Log:          log,
	}
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.AnalyticsCLI, app.Config.DefaultDays)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
