package usecase

import (
	"context"

	"daytrack/internal/modules/notify/domain"
	"daytrack/internal/modules/notify/dto"
	notifyin "daytrack/internal/modules/notify/port/in"
	"daytrack/internal/modules/notify/service"
	"daytrack/internal/platform/clock"
)

type Interactor struct {
	svc   *service.NotifyService
	clock clock.Clock
}

func NewInteractor(svc *service.NotifyService, clock clock.Clock) notifyin.Usecase {
	return &Interactor{svc: svc, clock: clock}
}

func (i *Interactor) Publish(ctx context.Context, input dto.EventInput) ([]dto.DeliveryOutput, error) {
	event := domain.Event{
		Kind:       domain.EventKind(input.Kind),
		Message:    input.Message,
		OccurredAt: i.clock.Now(),
	}
	return i.svc.Publish(ctx, event)
}

func (i *Interactor) List(ctx context.Context) ([]dto.PluginOutput, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DiagnosisOutput, error) {
	return i.svc.Doctor(ctx)
}
