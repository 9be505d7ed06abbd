package manifest

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/conn-castle/swinst/internal/messages"
)

const isCurrentAttr = "is_current"

// schema1Decoder reads the original append-only layout, oldest entry first:
//
//	<stack_history path=".../packages.xml_swinstall_stack" schema="1">
//	  <elt is_current="False" version="20181220-090333"/>
//	  <elt is_current="True" version="20181220-090608_r575055"/>
//	  <elt is_current="False" version="20181220-091955"/>
//	</stack_history>
//
// The version attribute doubles as install timestamp and optional VCS revision.
// Entries are numbered by position unless every elt carries an id.
//
// Schema 1 has no removal flag. A rollback rewrote is_current in place, so
// entries after the last is_current="True" entry were rolled back and decode
// with Removed=true. Without any is_current="True" entry every entry decodes
// with Removed=false. Every entry is an ActionInstall.
type schema1Decoder struct{}

// Schema1Decoder returns the decoder for SchemaV1.
func Schema1Decoder() Decoder { return schema1Decoder{} }

func (schema1Decoder) Schema() SchemaVersion { return SchemaV1 }

func (schema1Decoder) Decode(root *etree.Element) (*InstallStack, error) {
	return decodeSchema1(root)
}

func decodeSchema1(root *etree.Element) (*InstallStack, error) {
	manifestPath, elts, err := decodeRoot(SchemaV1, root)
	if err != nil {
		return nil, err
	}
	explicit, err := explicitIDs(SchemaV1, elts)
	if err != nil {
		return nil, err
	}
	stack := &InstallStack{
		ManifestPath: manifestPath,
		Schema:       SchemaV1,
		Entries:      make([]StackEntry, 0, len(elts)),
	}
	lastCurrent := -1
	for i, el := range elts {
		r := entryReader{schema: SchemaV1, index: i, el: el, explicit: explicit, position: int64(i + 1)}
		entry, isCurrent, err := decodeSchema1Entry(r, manifestPath)
		if err != nil {
			return nil, err
		}
		if isCurrent {
			lastCurrent = i
		}
		stack.Entries = append(stack.Entries, entry)
	}
	if lastCurrent >= 0 {
		for i := lastCurrent + 1; i < len(stack.Entries); i++ {
			stack.Entries[i].Removed = true
		}
	}
	if err := checkOrdering(stack.Entries); err != nil {
		return nil, err
	}
	currentLogger().Debug("decoded swinstall_stack", "schema", SchemaV1, "entries", len(stack.Entries))
	return stack, nil
}

func decodeSchema1Entry(r entryReader, manifestPath string) (StackEntry, bool, error) {
	seq, err := r.sequence()
	if err != nil {
		return StackEntry{}, false, err
	}
	version, err := r.required(versionAttr)
	if err != nil {
		return StackEntry{}, false, err
	}
	stamp, revision, hasRevision := strings.Cut(version, "_")
	if hasRevision && revision == "" {
		return StackEntry{}, false, r.malformed(versionAttr, messages.ManifestEmptyRevision)
	}
	installedAt, err := r.datetime(versionAttr, stamp)
	if err != nil {
		return StackEntry{}, false, err
	}
	isCurrent, err := r.pyBool(isCurrentAttr, false)
	if err != nil {
		return StackEntry{}, false, err
	}
	artifact, err := r.artifactPath(manifestPath, version)
	if err != nil {
		return StackEntry{}, false, err
	}
	return StackEntry{
		Path:        artifact,
		Version:     version,
		Revision:    revision,
		InstalledAt: installedAt,
		User:        r.optional(userAttr),
		Sequence:    seq,
		Action:      ActionInstall,
	}, isCurrent, nil
}
