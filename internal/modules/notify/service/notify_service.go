package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"daytrack/internal/modules/notify/domain"
	"daytrack/internal/modules/notify/dto"
	notifyout "daytrack/internal/modules/notify/port/out"
	apperrors "daytrack/internal/platform/errors"
)

type NotifyService struct {
	store notifyout.ManifestStore
	host  notifyout.Host
}

func NewNotifyService(store notifyout.ManifestStore, host notifyout.Host) *NotifyService {
	return &NotifyService{store: store, host: host}
}

func (s *NotifyService) List(ctx context.Context) ([]dto.PluginOutput, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PluginOutput, 0, len(manifests))
	for _, m := range manifests {
		checksum := m.SHA256
		if len(checksum) > 12 {
			checksum = checksum[:12]
		}
		out = append(out, dto.PluginOutput{
			Name:        m.Name,
			Version:     m.Version,
			Description: m.Description,
			Path:        m.Binary,
			Checksum:    checksum,
		})
	}
	return out, nil
}

func (s *NotifyService) Doctor(ctx context.Context) ([]dto.DiagnosisOutput, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DiagnosisOutput, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DiagnosisOutput{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Detail = err.Error()
			results = append(results, result)
			continue
		}
		if !fileExists(m.Binary) {
			result.Detail = fmt.Sprintf("binary does not exist: %s", m.Binary)
			results = append(results, result)
			continue
		}
		if err := checksumMatches(m.Binary, m.SHA256); err != nil {
			result.Detail = "checksum mismatch"
			results = append(results, result)
			continue
		}
		if !m.Enabled {
			result.Detail = "disabled"
			results = append(results, result)
			continue
		}
		if err := s.host.CheckLifecycle(ctx, m); err != nil {
			result.Detail = err.Error()
			results = append(results, result)
			continue
		}
		result.Healthy = true
		results = append(results, result)
	}
	return results, nil
}

// Publish delivers the event to every enabled notifier subscribed to its
// kind. A broken plugin yields a failed delivery entry, never an error for
// the event as a whole.
func (s *NotifyService) Publish(ctx context.Context, event domain.Event) ([]dto.DeliveryOutput, error) {
	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	deliveries := []dto.DeliveryOutput{}
	for _, m := range manifests {
		if !m.Enabled || !m.Subscribes(event.Kind) {
			continue
		}
		delivery := dto.DeliveryOutput{Plugin: m.Name}
		if err := checksumMatches(m.Binary, m.SHA256); err != nil {
			delivery.Detail = err.Error()
			deliveries = append(deliveries, delivery)
			continue
		}
		receipt, err := s.host.Notify(ctx, m, event)
		if err != nil {
			delivery.Detail = err.Error()
			deliveries = append(deliveries, delivery)
			continue
		}
		delivery.Accepted = receipt.Accepted
		delivery.Detail = receipt.Detail
		deliveries = append(deliveries, delivery)
	}
	return deliveries, nil
}

func (s *NotifyService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seenNames := map[string]struct{}{}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenNames[manifest.Name]; ok {
			return nil, fmt.Errorf("duplicate notifier name: %s", manifest.Name)
		}
		seenNames[manifest.Name] = struct{}{}
	}
	return manifests, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read notifier binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	actual := hex.EncodeToString(hash[:])
	if actual != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
