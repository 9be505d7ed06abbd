// Package picker lets a user choose one entry of an install stack.
package picker

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/conn-castle/swinst/internal/manifest"
	"github.com/conn-castle/swinst/internal/messages"
)

// ErrCancelled reports that the user left the picker without choosing.
var ErrCancelled = errors.New(messages.PickCancelled)

// Options lists stack entries newest first, marking the current and removed ones.
// currentSeq is zero when the stack has no current entry.
func Options(stack *manifest.InstallStack, currentSeq int64) []Option {
	out := make([]Option, 0, stack.Len())
	for i := stack.Len() - 1; i >= 0; i-- {
		e := stack.Entries[i]
		var markers []string
		if e.Sequence == currentSeq {
			markers = append(markers, messages.PickCurrentMarker)
		}
		if e.Removed {
			markers = append(markers, messages.PickRemovedMarker)
		}
		if e.User != "" {
			markers = append(markers, e.User)
		}
		when := e.InstalledAt.Format(messages.PickDateTimeLayout)
		out = append(out, Option{
			Label:    optionLabel(e.Sequence, when, e.Version, strings.Join(markers, " ")),
			Sequence: e.Sequence,
		})
	}
	return out
}

// Pick asks ui to choose an entry. The current entry is preselected.
func Pick(ui UI, stack *manifest.InstallStack) (manifest.StackEntry, error) {
	if stack.Len() == 0 {
		return manifest.StackEntry{}, errors.New(messages.PickEmptyStack)
	}
	var selected int64
	if current, err := manifest.Resolve(stack); err == nil {
		selected = current.Sequence
	} else if !errors.Is(err, manifest.ErrNoCurrentEntry) {
		return manifest.StackEntry{}, err
	}
	title := fmt.Sprintf(messages.PickTitleFmt, filepath.Base(stack.ManifestPath))
	if err := ui.Select(title, Options(stack, selected), &selected); err != nil {
		return manifest.StackEntry{}, err
	}
	for _, e := range stack.Entries {
		if e.Sequence == selected {
			return e, nil
		}
	}
	return manifest.StackEntry{}, fmt.Errorf(messages.PickUnknownSeqFmt, selected)
}
