package manifest

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/conn-castle/swinst/internal/messages"
)

// DynamicDispatcher looks decoders up at run time. Supporting a new schema
// means registering one more Decoder; no dispatch code changes.
type DynamicDispatcher struct {
	decoders map[SchemaVersion]Decoder
}

// NewDynamicDispatcher returns a dispatcher with every built-in decoder registered.
func NewDynamicDispatcher() *DynamicDispatcher {
	d := &DynamicDispatcher{decoders: make(map[SchemaVersion]Decoder)}
	for _, dec := range builtinDecoders() {
		// Built-ins are unique per schema, so Register cannot fail here.
		_ = d.Register(dec)
	}
	return d
}

// builtinDecoders lists the decoders shipped with this package, one per SchemaVersion.
func builtinDecoders() []Decoder {
	return []Decoder{Schema1Decoder(), Schema2Decoder()}
}

// Register adds dec under its schema. A schema can be registered only once.
func (d *DynamicDispatcher) Register(dec Decoder) error {
	if d.decoders == nil {
		d.decoders = make(map[SchemaVersion]Decoder)
	}
	if _, exists := d.decoders[dec.Schema()]; exists {
		return fmt.Errorf(messages.ManifestDuplicateDecoder, dec.Schema())
	}
	d.decoders[dec.Schema()] = dec
	return nil
}

// Decoder returns the decoder registered for version.
func (d *DynamicDispatcher) Decoder(version SchemaVersion) (Decoder, bool) {
	dec, ok := d.decoders[version]
	return dec, ok
}

// Schemas returns the registered versions in ascending order.
func (d *DynamicDispatcher) Schemas() []SchemaVersion {
	var out []SchemaVersion
	for _, v := range AllSchemaVersions() {
		if _, ok := d.decoders[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Parse decodes root with the decoder registered for version.
func (d *DynamicDispatcher) Parse(version SchemaVersion, root *etree.Element) (*InstallStack, error) {
	dec, ok := d.Decoder(version)
	if !ok {
		return nil, &UnknownSchemaVersionError{Value: version.String()}
	}
	currentLogger().Debug("dispatching manifest", "backend", BackendDynamic, "schema", version)
	return dec.Decode(root)
}
