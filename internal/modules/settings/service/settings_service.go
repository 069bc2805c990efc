package service

import (
	"context"
	"fmt"

	"daytrack/internal/modules/settings/domain"
	settingsout "daytrack/internal/modules/settings/port/out"
	apperrors "daytrack/internal/platform/errors"
)

const (
	ToggleDarkMode   = "dark-mode"
	ToggleCarryOver  = "carry-over"
	ToggleMotivation = "motivation"
)

type SettingsService struct {
	store settingsout.SettingsStore
}

func NewSettingsService(store settingsout.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.store.Load(ctx)
}

func (s *SettingsService) Toggle(ctx context.Context, name string) (domain.Settings, error) {
	settings, err := s.store.Load(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	switch name {
	case ToggleDarkMode:
		settings.DarkMode = !settings.DarkMode
	case ToggleCarryOver:
		settings.CarryOver = !settings.CarryOver
	case ToggleMotivation:
		settings.Motivation = !settings.Motivation
	default:
		return domain.Settings{}, fmt.Errorf("%w: unknown setting %q", apperrors.ErrInvalidInput, name)
	}
	if err := s.store.Save(ctx, settings); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}
