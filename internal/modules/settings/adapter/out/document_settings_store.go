package out

import (
	"context"

	"daytrack/internal/modules/settings/domain"
	settingsout "daytrack/internal/modules/settings/port/out"
	"daytrack/internal/platform/docfile"
)

const section = "settings"

type DocumentSettingsStore struct {
	doc *docfile.File
}

func NewDocumentSettingsStore(doc *docfile.File) settingsout.SettingsStore {
	return &DocumentSettingsStore{doc: doc}
}

// Load merges the persisted section over the defaults, so a payload that
// predates a setting keeps the default for it.
func (s *DocumentSettingsStore) Load(_ context.Context) (domain.Settings, error) {
	settings := domain.Defaults()
	if _, err := s.doc.ReadSection(section, &settings); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

func (s *DocumentSettingsStore) Save(_ context.Context, settings domain.Settings) error {
	return s.doc.WriteSection(section, settings)
}
