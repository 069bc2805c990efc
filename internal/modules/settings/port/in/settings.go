package in

import (
	"context"

	"daytrack/internal/modules/settings/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.SettingsOutput, error)
	Toggle(ctx context.Context, name string) (dto.SettingsOutput, error)
}
