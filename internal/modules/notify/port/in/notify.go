package in

import (
	"context"

	"daytrack/internal/modules/notify/dto"
)

type Usecase interface {
	// Publish fans an event out to every installed notifier plugin. Missing
	// or unhealthy plugins are reported per delivery, never as a hard error.
	Publish(ctx context.Context, input dto.EventInput) ([]dto.DeliveryOutput, error)
	List(ctx context.Context) ([]dto.PluginOutput, error)
	Doctor(ctx context.Context) ([]dto.DiagnosisOutput, error)
}
