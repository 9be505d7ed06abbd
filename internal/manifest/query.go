package manifest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/conn-castle/swinst/internal/messages"
)

// Query answers "which artifact is current" for one manifest file. A zero
// Query uses the dynamic backend, no default schema, and resolves as of now.
// Each call builds its own pipeline, so a Query may be shared across goroutines.
type Query struct {
	Dispatcher Dispatcher
	// DefaultSchema applies to manifests whose root has no schema attribute.
	DefaultSchema string
	// At resolves the stack as it stood at that instant. Zero means no cutoff.
	At time.Time
}

// Stack reads, sniffs, and decodes the manifest at path.
func (q Query) Stack(path string) (*InstallStack, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(messages.QueryFileRequired)
	}
	d := q.Dispatcher
	if d == nil {
		d = NewDynamicDispatcher()
	}
	l := currentLogger().With("query_id", uuid.NewString(), "manifest", path)
	root, err := ReadFile(path)
	if err != nil {
		l.Debug("read failed", "kind", KindOf(err), "err", err)
		return nil, err
	}
	stack, err := ParseDocument(d, root, q.DefaultSchema)
	if err != nil {
		l.Debug("decode failed", "kind", KindOf(err), "err", err)
		return nil, err
	}
	l.Debug("decoded", "schema", stack.Schema, "entries", stack.Len())
	return stack, nil
}

// Current returns the current entry of the manifest at path.
func (q Query) Current(path string) (StackEntry, error) {
	stack, err := q.Stack(path)
	if err != nil {
		return StackEntry{}, err
	}
	if q.At.IsZero() {
		return Resolve(stack)
	}
	return ResolveAt(stack, q.At)
}

// CurrentArtifact returns the path of the current artifact recorded in the
// manifest at path, using the default Query.
func CurrentArtifact(path string) (string, error) {
	entry, err := Query{}.Current(path)
	if err != nil {
		return "", err
	}
	return entry.Path, nil
}
