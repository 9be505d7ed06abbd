package manifest

import (
	"errors"
	"fmt"

	"github.com/conn-castle/swinst/internal/messages"
)

// Sentinel errors, one per failure kind. Typed errors below match their
// sentinel through errors.Is so callers can branch on kind alone.
var (
	// ErrIO reports an unreadable manifest.
	ErrIO = errors.New("manifest unreadable")
	// ErrXMLSyntax reports malformed markup.
	ErrXMLSyntax = errors.New("manifest xml syntax error")
	// ErrMissingVersionAttribute reports a root element without a schema attribute.
	ErrMissingVersionAttribute = errors.New("manifest root has no schema attribute")
	// ErrUnknownSchemaVersion reports a schema attribute with an unrecognized value.
	ErrUnknownSchemaVersion = errors.New("unknown schema version")
	// ErrMalformedEntry reports a missing or badly shaped field.
	ErrMalformedEntry = errors.New("malformed manifest entry")
	// ErrOrderingViolation reports sequence ids that are not strictly increasing.
	ErrOrderingViolation = errors.New("manifest ordering violation")
	// ErrNoCurrentEntry reports a stack with no eligible entry.
	ErrNoCurrentEntry = errors.New("no current entry in swinstall_stack")
)

// UnknownSchemaVersionError carries the raw schema value that failed classification.
type UnknownSchemaVersionError struct {
	Value string
}

func (e *UnknownSchemaVersionError) Error() string {
	return fmt.Sprintf(messages.ManifestUnknownSchemaFmt, e.Value)
}

// Is matches ErrUnknownSchemaVersion.
func (e *UnknownSchemaVersionError) Is(target error) bool {
	return target == ErrUnknownSchemaVersion
}

// MalformedEntryError describes a field a decoder could not accept.
// Index is the zero-based position of the elt in document order, or -1 when
// the problem is on the root element.
type MalformedEntryError struct {
	Schema SchemaVersion
	Index  int
	Field  string
	Reason string
}

func (e *MalformedEntryError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf(messages.ManifestMalformedRootFmt, e.Schema, e.Field, e.Reason)
	}
	return fmt.Sprintf(messages.ManifestMalformedEntryFmt, e.Schema, e.Index, e.Field, e.Reason)
}

// Is matches ErrMalformedEntry.
func (e *MalformedEntryError) Is(target error) bool {
	return target == ErrMalformedEntry
}

// OrderingViolationError reports the first position where sequence ids stop increasing.
type OrderingViolationError struct {
	Index    int
	Previous int64
	Current  int64
}

func (e *OrderingViolationError) Error() string {
	return fmt.Sprintf(messages.ManifestOrderingFmt, e.Current, e.Index, e.Previous)
}

// Is matches ErrOrderingViolation.
func (e *OrderingViolationError) Is(target error) bool {
	return target == ErrOrderingViolation
}

// ErrorKind classifies an error into one of the manifest failure kinds.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindOther
	KindIO
	KindXMLSyntax
	KindMissingVersionAttribute
	KindUnknownSchemaVersion
	KindMalformedEntry
	KindOrderingViolation
	KindNoCurrentEntry
)

var kindNames = map[ErrorKind]string{
	KindNone:                    "none",
	KindOther:                   "other",
	KindIO:                      "io_failure",
	KindXMLSyntax:               "xml_syntax_error",
	KindMissingVersionAttribute: "missing_version_attribute",
	KindUnknownSchemaVersion:    "unknown_schema_version",
	KindMalformedEntry:          "malformed_entry",
	KindOrderingViolation:       "ordering_violation",
	KindNoCurrentEntry:          "no_current_entry",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// KindOf returns the failure kind of err. Unclassified errors are KindOther.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrIO):
		return KindIO
	case errors.Is(err, ErrXMLSyntax):
		return KindXMLSyntax
	case errors.Is(err, ErrMissingVersionAttribute):
		return KindMissingVersionAttribute
	case errors.Is(err, ErrUnknownSchemaVersion):
		return KindUnknownSchemaVersion
	case errors.Is(err, ErrMalformedEntry):
		return KindMalformedEntry
	case errors.Is(err, ErrOrderingViolation):
		return KindOrderingViolation
	case errors.Is(err, ErrNoCurrentEntry):
		return KindNoCurrentEntry
	default:
		return KindOther
	}
}
