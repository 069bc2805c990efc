package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	goalinadapter "daytrack/internal/modules/goal/adapter/in"
	goaloutadapter "daytrack/internal/modules/goal/adapter/out"
	goalservice "daytrack/internal/modules/goal/service"
	goalusecase "daytrack/internal/modules/goal/usecase"
	noteinadapter "daytrack/internal/modules/note/adapter/in"
	noteoutadapter "daytrack/internal/modules/note/adapter/out"
	noteservice "daytrack/internal/modules/note/service"
	noteusecase "daytrack/internal/modules/note/usecase"
	notifyinadapter "daytrack/internal/modules/notify/adapter/in"
	notifyoutadapter "daytrack/internal/modules/notify/adapter/out"
	notifyservice "daytrack/internal/modules/notify/service"
	notifyusecase "daytrack/internal/modules/notify/usecase"
	settingsinadapter "daytrack/internal/modules/settings/adapter/in"
	settingsoutadapter "daytrack/internal/modules/settings/adapter/out"
	settingsservice "daytrack/internal/modules/settings/service"
	settingsusecase "daytrack/internal/modules/settings/usecase"
	taskinadapter "daytrack/internal/modules/task/adapter/in"
	taskoutadapter "daytrack/internal/modules/task/adapter/out"
	taskservice "daytrack/internal/modules/task/service"
	taskusecase "daytrack/internal/modules/task/usecase"
	"daytrack/internal/platform/clock"
	"daytrack/internal/platform/config"
	"daytrack/internal/platform/docfile"
	"daytrack/internal/platform/id"
	uiapp "daytrack/internal/ui/app"
)

type App struct {
	TaskCLI     taskinadapter.CLIHandler
	GoalCLI     goalinadapter.CLIHandler
	NoteCLI     noteinadapter.CLIHandler
	SettingsCLI settingsinadapter.CLIHandler
	NotifyCLI   notifyinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}
	doc := docfile.New(cfg.DocumentPath)

	settingsUC := settingsusecase.NewInteractor(settingsservice.NewSettingsService(
		settingsoutadapter.NewDocumentSettingsStore(doc),
	))

	notifyUC := notifyusecase.NewInteractor(notifyservice.NewNotifyService(
		notifyoutadapter.NewFileManifestStore(cfg.PluginsPath),
		notifyoutadapter.NewGRPCHost(),
	), clk)

	taskProjector, err := taskoutadapter.NewSQLiteTaskProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new task projector: %w", err)
	}
	taskSvc := taskservice.NewTaskService(
		clk,
		ids,
		taskoutadapter.NewDocumentTaskStore(doc),
		taskProjector,
		taskoutadapter.NewMarkdownAgendaWriter(cfg.AgendaPath),
	)
	taskUC := taskusecase.NewInteractor(taskSvc, settingsUC)

	goalProjector, err := goaloutadapter.NewSQLiteGoalProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new goal projector: %w", err)
	}
	goalSvc := goalservice.NewGoalService(clk, ids, goaloutadapter.NewDocumentGoalStore(doc), goalProjector)
	goalUC := goalusecase.NewInteractor(goalSvc, notifyUC)

	noteUC := noteusecase.NewInteractor(noteservice.NewNoteService(clk, ids, noteoutadapter.NewDocumentNoteStore(doc)))

	return &App{
		TaskCLI:     taskinadapter.NewCLIHandler(taskUC),
		GoalCLI:     goalinadapter.NewCLIHandler(goalUC),
		NoteCLI:     noteinadapter.NewCLIHandler(noteUC),
		SettingsCLI: settingsinadapter.NewCLIHandler(settingsUC),
		NotifyCLI:   notifyinadapter.NewCLIHandler(notifyUC),
	}, nil
}

func RunTUI(homePath string, app *App) error {
	model := uiapp.NewModel(homePath, app.TaskCLI, app.GoalCLI, app.NoteCLI, app.SettingsCLI, app.NotifyCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
