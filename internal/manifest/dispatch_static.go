package manifest

import (
	"github.com/beevik/etree"
)

// variant is the closed set of schema arms. gochecksumtype verifies that every
// type switch over it names each arm, and exhaustive verifies the
// SchemaVersion switch in variantOf.
//
//sumtype:decl
type variant interface {
	isVariant()
}

type schema1Variant struct{}

type schema2Variant struct{}

func (schema1Variant) isVariant() {}
func (schema2Variant) isVariant() {}

// variantOf maps a version to its arm. Versions outside the closed set have no arm.
func variantOf(version SchemaVersion) (variant, bool) {
	switch version {
	case SchemaV1:
		return schema1Variant{}, true
	case SchemaV2:
		return schema2Variant{}, true
	}
	return nil, false
}

// StaticDispatcher selects decoders with a switch compiled against the fixed
// set of schema versions. It holds no state.
type StaticDispatcher struct{}

// Parse decodes root with the arm matching version.
func (StaticDispatcher) Parse(version SchemaVersion, root *etree.Element) (*InstallStack, error) {
	v, ok := variantOf(version)
	if !ok {
		return nil, &UnknownSchemaVersionError{Value: version.String()}
	}
	currentLogger().Debug("dispatching manifest", "backend", BackendStatic, "schema", version)
	switch v.(type) {
	case schema1Variant:
		return decodeSchema1(root)
	case schema2Variant:
		return decodeSchema2(root)
	}
	panic("unreachable: variant switch is exhaustive")
}
