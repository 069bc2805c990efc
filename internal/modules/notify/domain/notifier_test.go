package domain_test

import (
	"strings"
	"testing"

	"daytrack/internal/modules/notify/domain"
)

func validManifest() domain.Manifest {
	return domain.Manifest{
		Name:    "desktop",
		Version: "1.0.0",
		Binary:  "/opt/daytrack/notifier-desktop",
		SHA256:  strings.Repeat("ab", 32),
		Enabled: true,
		Kinds:   []domain.EventKind{domain.KindMotivation, domain.KindProgress},
	}
}

func TestManifestValidate(t *testing.T) {
	t.Parallel()
	if err := validManifest().Validate(); err != nil {
		t.Fatalf("valid manifest must pass: %v", err)
	}

	cases := map[string]func(*domain.Manifest){
		"missing name":    func(m *domain.Manifest) { m.Name = "" },
		"missing version": func(m *domain.Manifest) { m.Version = "" },
		"missing binary":  func(m *domain.Manifest) { m.Binary = "" },
		"short sha256":    func(m *domain.Manifest) { m.SHA256 = "abcd" },
		"uppercase sha":   func(m *domain.Manifest) { m.SHA256 = strings.Repeat("AB", 32) },
		"no kinds":        func(m *domain.Manifest) { m.Kinds = nil },
		"unknown kind":    func(m *domain.Manifest) { m.Kinds = []domain.EventKind{"push"} },
		"duplicate kind": func(m *domain.Manifest) {
			m.Kinds = []domain.EventKind{domain.KindProgress, domain.KindProgress}
		},
	}
	for name, mutate := range cases {
		m := validManifest()
		mutate(&m)
		if err := m.Validate(); err == nil {
			t.Errorf("%s must fail validation", name)
		}
	}
}

func TestSubscribes(t *testing.T) {
	t.Parallel()
	m := validManifest()
	m.Kinds = []domain.EventKind{domain.KindProgress}
	if !m.Subscribes(domain.KindProgress) {
		t.Fatalf("expected progress subscription")
	}
	if m.Subscribes(domain.KindMotivation) {
		t.Fatalf("unexpected motivation subscription")
	}
}

func TestEventValidate(t *testing.T) {
	t.Parallel()
	if err := (domain.Event{Kind: domain.KindMotivation, Message: "well done"}).Validate(); err != nil {
		t.Fatalf("valid event must pass: %v", err)
	}
	if err := (domain.Event{Kind: "push", Message: "x"}).Validate(); err == nil {
		t.Fatalf("unknown kind must fail")
	}
	if err := (domain.Event{Kind: domain.KindProgress}).Validate(); err == nil {
		t.Fatalf("empty message must fail")
	}
}
