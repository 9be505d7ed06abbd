package manifest

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/conn-castle/swinst/internal/messages"
)

// Encode writes stack in the layout of stack.Schema. It is the inverse of the
// matching decoder and is used to build fixtures and to check round trips.
func Encode(stack *InstallStack) ([]byte, error) {
	doc, err := EncodeDocument(stack)
	if err != nil {
		return nil, err
	}
	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf(messages.ManifestEncodeFailedFmt, err)
	}
	return data, nil
}

// EncodeDocument builds the element tree for stack without serializing it.
func EncodeDocument(stack *InstallStack) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(rootTag)
	root.CreateAttr(pathAttr, stack.ManifestPath)
	root.CreateAttr(schemaAttr, stack.Schema.String())

	switch stack.Schema {
	case SchemaV1:
		current, err := schema1Current(stack.Entries)
		if err != nil {
			return nil, err
		}
		for i, entry := range stack.Entries {
			if err := encodeSchema1Entry(root, entry, i == current); err != nil {
				return nil, err
			}
		}
	case SchemaV2:
		for i := len(stack.Entries) - 1; i >= 0; i-- {
			encodeSchema2Entry(root, stack.Entries[i])
		}
	default:
		return nil, fmt.Errorf(messages.ManifestEncodeUnsupportedFmt, stack.Schema)
	}
	return doc, nil
}

// schema1Current returns the index to flag is_current="True". Schema 1 records
// removal only as entries following the current one, so removed entries must
// form a suffix behind at least one live entry.
func schema1Current(entries []StackEntry) (int, error) {
	current := -1
	for i, entry := range entries {
		if !entry.Removed {
			current = i
		}
	}
	for i, entry := range entries {
		if entry.Removed && (i < current || current < 0) {
			return -1, fmt.Errorf(messages.ManifestEncodeV1RemovedFmt, entry.Sequence)
		}
	}
	return current, nil
}

func encodeSchema1Entry(root *etree.Element, entry StackEntry, isCurrent bool) error {
	if entry.Action != ActionInstall {
		return fmt.Errorf(messages.ManifestEncodeV1ActionFmt, entry.Action, entry.Sequence)
	}
	el := root.CreateElement(eltTag)
	el.CreateAttr(idAttr, strconv.FormatInt(entry.Sequence, 10))
	el.CreateAttr(isCurrentAttr, pyBoolString(isCurrent))
	el.CreateAttr(versionAttr, entry.Version)
	if entry.User != "" {
		el.CreateAttr(userAttr, entry.User)
	}
	return nil
}

func encodeSchema2Entry(root *etree.Element, entry StackEntry) {
	el := root.CreateElement(eltTag)
	el.CreateAttr(idAttr, strconv.FormatInt(entry.Sequence, 10))
	el.CreateAttr(actionAttr, string(entry.Action))
	el.CreateAttr(datetimeAttr, entry.InstalledAt.UTC().Format(DatetimeLayout))
	el.CreateAttr(hashAttr, entry.Hash)
	el.CreateAttr(versionAttr, entry.Version)
	if entry.User != "" {
		el.CreateAttr(userAttr, entry.User)
	}
	el.CreateAttr(removedAttr, pyBoolString(entry.Removed))
}

func pyBoolString(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
