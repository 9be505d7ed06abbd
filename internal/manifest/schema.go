package manifest

import "strconv"

// SchemaVersion identifies one known swinstall_stack layout. The set is closed:
// a new layout ships as a new constant, a new decoder, and a new static arm.
type SchemaVersion int

const (
	// SchemaV1 is the original append-only layout with combined timestamp/revision versions.
	SchemaV1 SchemaVersion = iota + 1
	// SchemaV2 is the newest-first layout with explicit actions, hashes, and removal flags.
	SchemaV2
)

// schemaValues maps attribute values to versions. Lookups are exact; no
// trimming or case folding is applied to the raw attribute.
var schemaValues = map[string]SchemaVersion{
	"1": SchemaV1,
	"2": SchemaV2,
}

// AllSchemaVersions returns every known schema version in ascending order.
func AllSchemaVersions() []SchemaVersion {
	return []SchemaVersion{SchemaV1, SchemaV2}
}

// ParseSchemaVersion classifies a raw schema attribute value.
func ParseSchemaVersion(value string) (SchemaVersion, error) {
	v, ok := schemaValues[value]
	if !ok {
		return 0, &UnknownSchemaVersionError{Value: value}
	}
	return v, nil
}

// String returns the attribute value written for the version.
func (v SchemaVersion) String() string {
	return strconv.Itoa(int(v))
}

// Known reports whether v is one of the closed set of versions.
func (v SchemaVersion) Known() bool {
	_, err := ParseSchemaVersion(v.String())
	return err == nil
}

// MarshalText writes the attribute value, so JSON carries "1" rather than 1.
func (v SchemaVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText accepts the attribute value of a known version.
func (v *SchemaVersion) UnmarshalText(text []byte) error {
	parsed, err := ParseSchemaVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
