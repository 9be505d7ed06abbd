package manifest

import "github.com/beevik/etree"

const (
	rootTag    = "stack_history"
	schemaAttr = "schema"
)

// Sniff reads the schema attribute of the manifest root.
func Sniff(root *etree.Element) (SchemaVersion, error) {
	return SniffWithDefault(root, "")
}

// SniffWithDefault behaves like Sniff, but falls back to defaultSchema when the
// root carries no schema attribute at all. Legacy schema 1 manifests were written
// without the attribute. An empty defaultSchema disables the fallback. Unknown
// values, present or defaulted, are never coerced into a known version.
func SniffWithDefault(root *etree.Element, defaultSchema string) (SchemaVersion, error) {
	if root == nil {
		return 0, ErrMissingVersionAttribute
	}
	attr := root.SelectAttr(schemaAttr)
	if attr == nil {
		if defaultSchema == "" {
			return 0, ErrMissingVersionAttribute
		}
		return ParseSchemaVersion(defaultSchema)
	}
	return ParseSchemaVersion(attr.Value)
}
