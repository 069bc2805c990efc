package domain

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// EventKind selects which notifier plugins receive an event.
type EventKind string

const (
	KindMotivation EventKind = "motivation"
	KindProgress   EventKind = "progress"
)

var (
	ErrNotifierDisabled = errors.New("notifier is disabled")
	ErrChecksumMismatch = errors.New("notifier checksum mismatch")
	ErrNotifierTimeout  = errors.New("notifier timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one installed notifier plugin binary and the event
// kinds it subscribes to.
type Manifest struct {
	Name        string      `json:"name"`
	Version     string      `json:"version"`
	Description string      `json:"description"`
	Binary      string      `json:"binary"`
	SHA256      string      `json:"sha256"`
	Enabled     bool        `json:"enabled"`
	Kinds       []EventKind `json:"kinds"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("notifier name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("notifier version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("notifier binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("notifier sha256 must be lowercase 64-char hex")
	}
	if len(m.Kinds) == 0 {
		return fmt.Errorf("notifier event kinds are required")
	}
	seen := map[EventKind]struct{}{}
	for _, kind := range m.Kinds {
		if err := kind.Validate(); err != nil {
			return err
		}
		if _, ok := seen[kind]; ok {
			return fmt.Errorf("duplicate event kind: %s", kind)
		}
		seen[kind] = struct{}{}
	}
	return nil
}

func (k EventKind) Validate() error {
	switch k {
	case KindMotivation, KindProgress:
		return nil
	default:
		return fmt.Errorf("unknown event kind: %s", k)
	}
}

func (m Manifest) Subscribes(kind EventKind) bool {
	for _, k := range m.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Event is one notification handed to subscribing plugins.
type Event struct {
	Kind       EventKind
	Message    string
	OccurredAt time.Time
}

func (e Event) Validate() error {
	if err := e.Kind.Validate(); err != nil {
		return err
	}
	if e.Message == "" {
		return fmt.Errorf("event message is required")
	}
	return nil
}

type Metadata struct {
	Name    string
	Version string
	Kinds   []EventKind
}

// Receipt is a plugin's answer to one delivery attempt.
type Receipt struct {
	Accepted bool
	Detail   string
}
