package manifest

import (
	"fmt"
	"time"

	"github.com/conn-castle/swinst/internal/messages"
)

// Action records why an entry was pushed onto the stack.
type Action string

const (
	// ActionInstall is a fresh install of a new version.
	ActionInstall Action = "install"
	// ActionRollback reinstates an older version.
	ActionRollback Action = "rollback"
	// ActionRollforward reinstates a newer version after a rollback.
	ActionRollforward Action = "rollforward"
)

// ParseAction validates a raw action attribute.
func ParseAction(raw string) (Action, error) {
	switch Action(raw) {
	case ActionInstall, ActionRollback, ActionRollforward:
		return Action(raw), nil
	default:
		return "", fmt.Errorf(messages.ManifestAttrBadActionFmt, raw)
	}
}

// StackEntry is one historical installation record.
type StackEntry struct {
	// Path is the versioned artifact path on disk.
	Path string `json:"path"`
	// Version is the suffix used in the versioned file name.
	Version string `json:"version"`
	// Revision is the optional VCS revision carried by schema 1 versions.
	Revision    string    `json:"revision,omitempty"`
	InstalledAt time.Time `json:"installed_at"`
	User        string    `json:"user,omitempty"`
	Sequence    int64     `json:"sequence"`
	Action      Action    `json:"action"`
	// Hash is the content hash recorded by schema 2.
	Hash    string `json:"hash,omitempty"`
	Removed bool   `json:"removed"`
}

// InstallStack is the version-independent decode result. Entries are in
// chronological install order with strictly increasing Sequence values.
type InstallStack struct {
	ManifestPath string        `json:"manifest_path"`
	Schema       SchemaVersion `json:"schema"`
	Entries      []StackEntry  `json:"entries"`
}

// Len returns the number of entries.
func (s *InstallStack) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Entries)
}

// checkOrdering returns an OrderingViolationError at the first entry whose
// sequence id does not exceed its predecessor's.
func checkOrdering(entries []StackEntry) error {
	for i := 1; i < len(entries); i++ {
		if entries[i].Sequence <= entries[i-1].Sequence {
			return &OrderingViolationError{
				Index:    i,
				Previous: entries[i-1].Sequence,
				Current:  entries[i].Sequence,
			}
		}
	}
	return nil
}
