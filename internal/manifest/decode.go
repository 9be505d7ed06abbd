package manifest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/conn-castle/swinst/internal/messages"
)

const (
	// DatetimeLayout is the timestamp layout used by both schemas (YYYYMMDD-HHMMSS).
	DatetimeLayout = "20060102-150405"

	eltTag      = "elt"
	pathAttr    = "path"
	idAttr      = "id"
	userAttr    = "user"
	versionAttr = "version"
)

// Decoder turns one schema's element tree into an InstallStack. A decoder only
// ever sees manifests of its own schema.
type Decoder interface {
	Schema() SchemaVersion
	Decode(root *etree.Element) (*InstallStack, error)
}

// entryReader wraps one elt element with the schema and position used in errors.
// When the document carries no ids, position is the entry's install-order
// sequence number.
type entryReader struct {
	schema   SchemaVersion
	index    int
	el       *etree.Element
	explicit bool
	position int64
}

func (r entryReader) malformed(field string, reason string) error {
	return &MalformedEntryError{Schema: r.schema, Index: r.index, Field: field, Reason: reason}
}

// required returns the value of a mandatory attribute. Present-but-empty counts as missing.
func (r entryReader) required(key string) (string, error) {
	attr := r.el.SelectAttr(key)
	if attr == nil || strings.TrimSpace(attr.Value) == "" {
		return "", r.malformed(key, messages.ManifestAttrRequired)
	}
	return attr.Value, nil
}

func (r entryReader) optional(key string) string {
	return r.el.SelectAttrValue(key, "")
}

func (r entryReader) sequence() (int64, error) {
	if !r.explicit {
		return r.position, nil
	}
	raw, err := r.required(idAttr)
	if err != nil {
		return 0, err
	}
	seq, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, r.malformed(idAttr, fmt.Sprintf(messages.ManifestAttrNotIntegerFmt, raw))
	}
	if seq <= 0 {
		return 0, r.malformed(idAttr, fmt.Sprintf(messages.ManifestAttrNotPositiveFmt, seq))
	}
	return seq, nil
}

func (r entryReader) datetime(key string, raw string) (time.Time, error) {
	ts, err := time.Parse(DatetimeLayout, raw)
	if err != nil {
		return time.Time{}, r.malformed(key, fmt.Sprintf(messages.ManifestAttrBadDatetimeFmt, raw))
	}
	return ts, nil
}

// pyBool parses the Python-style booleans the install tool writes.
func (r entryReader) pyBool(key string, fallback bool) (bool, error) {
	attr := r.el.SelectAttr(key)
	if attr == nil {
		return fallback, nil
	}
	switch attr.Value {
	case "True", "true":
		return true, nil
	case "False", "false":
		return false, nil
	default:
		return false, r.malformed(key, fmt.Sprintf(messages.ManifestAttrNotBoolFmt, attr.Value))
	}
}

// artifactPath derives the versioned file from the manifest path.
func (r entryReader) artifactPath(manifestPath string, version string) (string, error) {
	p, err := VersionedFromStack(manifestPath, version)
	if err != nil {
		return "", r.malformed(versionAttr, err.Error())
	}
	return p, nil
}

// decodeRoot validates the root element and returns the recorded manifest path
// together with the elt children in document order.
func decodeRoot(schema SchemaVersion, root *etree.Element) (string, []*etree.Element, error) {
	if root == nil || root.Tag != rootTag {
		tag := ""
		if root != nil {
			tag = root.Tag
		}
		return "", nil, &MalformedEntryError{
			Schema: schema,
			Index:  -1,
			Field:  rootTag,
			Reason: fmt.Sprintf(messages.ManifestRootTagFmt, tag, rootTag),
		}
	}
	manifestPath := strings.TrimSpace(root.SelectAttrValue(pathAttr, ""))
	if manifestPath == "" {
		return "", nil, &MalformedEntryError{
			Schema: schema,
			Index:  -1,
			Field:  pathAttr,
			Reason: messages.ManifestAttrRequired,
		}
	}
	var elts []*etree.Element
	for _, child := range root.ChildElements() {
		if child.Tag == eltTag {
			elts = append(elts, child)
		}
	}
	return manifestPath, elts, nil
}

// explicitIDs reports whether the entries carry id attributes. The install tool
// itself never writes ids; such documents are numbered 1..n in install order.
// Mixing entries with and without ids is malformed.
func explicitIDs(schema SchemaVersion, elts []*etree.Element) (bool, error) {
	if len(elts) == 0 {
		return false, nil
	}
	explicit := elts[0].SelectAttr(idAttr) != nil
	for i := 1; i < len(elts); i++ {
		if (elts[i].SelectAttr(idAttr) != nil) != explicit {
			return false, &MalformedEntryError{
				Schema: schema,
				Index:  i,
				Field:  idAttr,
				Reason: messages.ManifestMixedIDs,
			}
		}
	}
	return explicit, nil
}
