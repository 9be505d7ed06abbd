package manifest

import (
	"github.com/beevik/etree"
)

const (
	actionAttr   = "action"
	datetimeAttr = "datetime"
	hashAttr     = "hash"
	removedAttr  = "removed"
)

// schema2Decoder reads the redesigned layout. The tool prepends new entries, so
// the document lists the newest entry first; the decoder reverses it into
// chronological order.
//
//	<stack_history path=".../packages.xml_swinstall_stack" schema="2">
//	  <elt id="3" action="rollback" datetime="20181221-102242" hash="294fc865" version="1" removed="False"/>
//	  <elt id="2" action="install" datetime="20180702-144204" hash="194f8355" version="3"/>
//	  <elt id="1" action="install" datetime="20171106-104603" hash="294fc865" version="1"/>
//	</stack_history>
//
// Entries are numbered by install order unless every elt carries an id.
// removed is optional and defaults to False.
type schema2Decoder struct{}

// Schema2Decoder returns the decoder for SchemaV2.
func Schema2Decoder() Decoder { return schema2Decoder{} }

func (schema2Decoder) Schema() SchemaVersion { return SchemaV2 }

func (schema2Decoder) Decode(root *etree.Element) (*InstallStack, error) {
	return decodeSchema2(root)
}

func decodeSchema2(root *etree.Element) (*InstallStack, error) {
	manifestPath, elts, err := decodeRoot(SchemaV2, root)
	if err != nil {
		return nil, err
	}
	explicit, err := explicitIDs(SchemaV2, elts)
	if err != nil {
		return nil, err
	}
	entries := make([]StackEntry, len(elts))
	for i, el := range elts {
		r := entryReader{schema: SchemaV2, index: i, el: el, explicit: explicit, position: int64(len(elts) - i)}
		entry, err := decodeSchema2Entry(r, manifestPath)
		if err != nil {
			return nil, err
		}
		entries[len(elts)-1-i] = entry
	}
	if err := checkOrdering(entries); err != nil {
		return nil, err
	}
	currentLogger().Debug("decoded swinstall_stack", "schema", SchemaV2, "entries", len(entries))
	return &InstallStack{
		ManifestPath: manifestPath,
		Schema:       SchemaV2,
		Entries:      entries,
	}, nil
}

func decodeSchema2Entry(r entryReader, manifestPath string) (StackEntry, error) {
	seq, err := r.sequence()
	if err != nil {
		return StackEntry{}, err
	}
	rawAction, err := r.required(actionAttr)
	if err != nil {
		return StackEntry{}, err
	}
	action, err := ParseAction(rawAction)
	if err != nil {
		return StackEntry{}, r.malformed(actionAttr, err.Error())
	}
	rawDatetime, err := r.required(datetimeAttr)
	if err != nil {
		return StackEntry{}, err
	}
	installedAt, err := r.datetime(datetimeAttr, rawDatetime)
	if err != nil {
		return StackEntry{}, err
	}
	hash, err := r.required(hashAttr)
	if err != nil {
		return StackEntry{}, err
	}
	version, err := r.required(versionAttr)
	if err != nil {
		return StackEntry{}, err
	}
	removed, err := r.pyBool(removedAttr, false)
	if err != nil {
		return StackEntry{}, err
	}
	artifact, err := r.artifactPath(manifestPath, version)
	if err != nil {
		return StackEntry{}, err
	}
	return StackEntry{
		Path:        artifact,
		Version:     version,
		InstalledAt: installedAt,
		User:        r.optional(userAttr),
		Sequence:    seq,
		Action:      action,
		Hash:        hash,
		Removed:     removed,
	}, nil
}
