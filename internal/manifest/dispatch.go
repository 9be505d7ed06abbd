package manifest

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/conn-castle/swinst/internal/messages"
)

// Dispatcher routes a sniffed schema version to its decoder. Every
// implementation must return identical stacks and identical error kinds for
// the same input; decode errors are returned as the decoder produced them.
type Dispatcher interface {
	Parse(version SchemaVersion, root *etree.Element) (*InstallStack, error)
}

// Backend names accepted by NewDispatcher.
const (
	BackendDynamic = "dynamic"
	BackendStatic  = "static"
)

// NewDispatcher returns the dispatcher registered under name. An empty name
// selects the dynamic backend.
func NewDispatcher(name string) (Dispatcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendDynamic:
		return NewDynamicDispatcher(), nil
	case BackendStatic:
		return StaticDispatcher{}, nil
	default:
		return nil, fmt.Errorf(messages.ManifestUnknownBackendFmt, name)
	}
}

// ParseDocument sniffs root and dispatches it. Sniff errors are returned unchanged.
func ParseDocument(d Dispatcher, root *etree.Element, defaultSchema string) (*InstallStack, error) {
	version, err := SniffWithDefault(root, defaultSchema)
	if err != nil {
		return nil, err
	}
	return d.Parse(version, root)
}

var (
	_ Dispatcher = (*DynamicDispatcher)(nil)
	_ Dispatcher = StaticDispatcher{}
)
