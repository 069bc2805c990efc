package in

import (
	"context"

	"daytrack/internal/modules/notify/dto"
	notifyin "daytrack/internal/modules/notify/port/in"
)

type CLIHandler struct {
	usecase notifyin.Usecase
}

func NewCLIHandler(usecase notifyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Publish(ctx context.Context, kind, message string) ([]dto.DeliveryOutput, error) {
	return h.usecase.Publish(ctx, dto.EventInput{Kind: kind, Message: message})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.PluginOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DiagnosisOutput, error) {
	return h.usecase.Doctor(ctx)
}
