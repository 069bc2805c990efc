package in

import (
	"context"

	"daytrack/internal/modules/settings/dto"
	settingsin "daytrack/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) (dto.SettingsOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) Toggle(ctx context.Context, name string) (dto.SettingsOutput, error) {
	return h.usecase.Toggle(ctx, name)
}
