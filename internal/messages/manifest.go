package messages

// Manifest messages for reading, decoding, and resolving swinstall_stack files.
const (
	// ManifestReadFailedFmt formats unreadable manifest errors.
	ManifestReadFailedFmt = "%w: %s: %w"
	ManifestNoRootElement = "document has no root element"

	// ManifestUnknownSchemaFmt formats unrecognized schema values.
	ManifestUnknownSchemaFmt   = "unknown swinstall_stack schema %q"
	ManifestMalformedEntryFmt  = "malformed schema %s entry %d: %s: %s"
	ManifestMalformedRootFmt   = "malformed schema %s manifest: %s: %s"
	ManifestOrderingFmt        = "sequence id %d at position %d does not follow %d"
	ManifestRootTagFmt         = "root element is <%s>; expected <%s>"
	ManifestAttrRequired       = "attribute is required"
	ManifestAttrNotIntegerFmt  = "%q is not an integer"
	ManifestAttrNotPositiveFmt = "%d must be positive"
	ManifestAttrNotBoolFmt     = "%q is not True or False"
	ManifestAttrBadDatetimeFmt = "%q does not match YYYYMMDD-HHMMSS"
	ManifestAttrBadActionFmt   = "%q is not one of install, rollback, rollforward"
	ManifestEmptyRevision      = "revision suffix is empty"
	ManifestMixedIDs           = "either every entry or no entry may carry an id"
	ManifestDuplicateDecoder   = "decoder for schema %s is already registered"
	ManifestUnknownBackendFmt  = "unknown dispatch backend %q (supported: dynamic, static)"

	// PathNoFileNameFmt formats paths without a usable file name.
	PathNoFileNameFmt = "path %q has no file name"
	PathNotStackFmt   = "path %q is not a swinstall_stack file"
	PathEmptyVersion  = "version is required to build a versioned path"
	QueryFileRequired = "a file path is required"
	AsOfBadDateFmt    = "invalid date %q: expected YYYY-MM-DD"
	AsOfBadTimeFmt    = "invalid time %q: expected HH:MM:SS"
)

// Manifest encoder messages.
const (
	// ManifestEncodeUnsupportedFmt formats attempts to encode an unknown schema.
	ManifestEncodeUnsupportedFmt = "cannot encode schema %s"
	ManifestEncodeV1RemovedFmt   = "schema 1 can only record removal of entries installed after the current one (entry %d)"
	ManifestEncodeV1ActionFmt    = "schema 1 cannot record %s entry %d"
	ManifestEncodeFailedFmt      = "encode swinstall_stack: %w"
)
