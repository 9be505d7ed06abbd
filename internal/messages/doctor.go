package messages

// Doctor messages for the check command.
const (
	// CheckUse is the check command name.
	CheckUse   = "check [file]"
	CheckShort = "Diagnose a swinstall_stack manifest and report every problem found"

	CheckHeaderFmt = "🏥 Checking swinstall_stack manifest %s...\n"

	DoctorCheckNameConfig    = "Config"
	DoctorCheckNameReadable  = "Readable"
	DoctorCheckNameSyntax    = "Syntax"
	DoctorCheckNameSchema    = "Schema"
	DoctorCheckNameDecodeFmt = "Decode/%s"
	DoctorCheckNameAgreement = "Backends"
	DoctorCheckNameCurrent   = "Current"
	DoctorCheckNameArtifact  = "Artifact"

	DoctorConfigLoadFailedFmt = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend = "Fix the config file or SWINST_* environment variables, then run `swinst check` again."
	DoctorConfigLoadedFmt     = "Configuration loaded from %s"

	DoctorReadFailedFmt      = "Cannot read manifest: %v"
	DoctorReadRecommend      = "Check that the path exists and is readable by the current user."
	DoctorReadOKFmt          = "Manifest readable (%d bytes)"
	DoctorSyntaxFailedFmt    = "Manifest is not well-formed XML: %v"
	DoctorSyntaxRecommend    = "Restore the manifest from backup; swinstall writes it atomically, so a truncated file usually means a failed copy."
	DoctorSyntaxOK           = "Manifest is well-formed XML"
	DoctorSchemaFailedFmt    = "Schema not recognized: %v"
	DoctorSchemaRecommend    = "Supported schema values: 1, 2. Set default_schema only for legacy manifests that predate the schema attribute."
	DoctorSchemaOKFmt        = "schema %s"
	DoctorSchemaDefaultedFmt = "Root has no schema attribute; using default_schema %s"
	DoctorSchemaDefaultedRec = "Rewrite the manifest with an explicit schema attribute."
	DoctorDecodeFailedFmt    = "Decode failed (%s): %v"
	DoctorDecodeRecommend    = "Fix the reported entry; every elt must carry the attributes its schema requires."
	DoctorDecodeOKFmt        = "%d entries decoded"
	DoctorAgreementFailedFmt = "Backends disagree: %s"
	DoctorAgreementRecommend = "This is a bug in swinst; please report it with the manifest attached."
	DoctorAgreementOK        = "Dynamic and static backends agree"
	DoctorAgreementSkipped   = "Skipped; no backend decoded the manifest"
	DoctorCurrentFailedFmt   = "No current entry: %v"
	DoctorCurrentRecommend   = "Every entry is removed; install a new version or roll forward."
	DoctorCurrentOKFmt       = "id %d -> %s"
	DoctorArtifactMissingFmt = "Current artifact %s does not exist"
	DoctorArtifactRecommend  = "The versioned file was deleted from bak/; reinstall the version or roll back."
	DoctorArtifactOKFmt      = "Current artifact exists: %s"

	DoctorDisagreeResultFmt = "%s returned %s, %s returned %s"
	DoctorDisagreeStacks    = "decoded stacks differ"

	DoctorFailureSummary = "❌ Some checks failed or triggered warnings. Please address the items above."
	DoctorFailureError   = "check found problems"
	DoctorSuccessSummary = "✅ Manifest is healthy."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-14s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "         "
)
