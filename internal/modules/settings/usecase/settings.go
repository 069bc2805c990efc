package usecase

import (
	"context"

	"daytrack/internal/modules/settings/domain"
	"daytrack/internal/modules/settings/dto"
	settingsin "daytrack/internal/modules/settings/port/in"
	"daytrack/internal/modules/settings/service"
)

type Interactor struct {
	svc *service.SettingsService
}

func NewInteractor(svc *service.SettingsService) settingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (dto.SettingsOutput, error) {
	settings, err := i.svc.Get(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func (i *Interactor) Toggle(ctx context.Context, name string) (dto.SettingsOutput, error) {
	settings, err := i.svc.Toggle(ctx, name)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func toOutput(settings domain.Settings) dto.SettingsOutput {
	return dto.SettingsOutput{
		DarkMode:   settings.DarkMode,
		CarryOver:  settings.CarryOver,
		Motivation: settings.Motivation,
	}
}
