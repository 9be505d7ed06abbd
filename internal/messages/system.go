package messages

// System messages for internal operations.
const (
	LoggingUnknownLevelFmt = "unknown log level %q"

	TerminalNotInteractive = "this command requires an interactive terminal"

	PickTitleFmt       = "Select an entry of %s"
	PickEmptyStack     = "swinstall_stack has no entries to pick from"
	PickCancelled      = "selection cancelled"
	PickUnknownSeqFmt  = "selected id %d is not in the stack"
	PickOptionFmt      = "id %-4d %s  %-20s %s"
	PickCurrentMarker  = "(current)"
	PickRemovedMarker  = "(removed)"
	PickDateTimeLayout = "2006-01-02 15:04:05"
	PickHintCancel     = "cancel"

	WatchAddFailedFmt   = "watch %s: %w"
	WatchNilCallback    = "watch callback is required"
	WatchStarted        = "watching manifest"
	WatchNoChangeReason = "manifest rewritten without changing the current artifact"

	McpRunServerFailedFmt = "run mcp server: %w"
	McpRunnerNil          = "mcp server runner is nil"
	McpServerName         = "swinst"
	McpToolCurrentName    = "current_artifact"
	McpToolCurrentDesc    = "Return the current artifact recorded in a swinstall_stack manifest."
	McpToolHistoryName    = "install_history"
	McpToolHistoryDesc    = "Return the decoded install history of a swinstall_stack manifest in chronological order."
	McpManifestRequired   = "manifest path is required"
	McpInvalidDateTimeFmt = "invalid as-of timestamp %q: expected YYYY-MM-DD or YYYY-MM-DD HH:MM:SS"
	McpQueryFailedFmt     = "%s: %w"
	McpNilQueryFactory    = "query factory is required"
	DriftReadFailedFmt    = "read %s: %w"
	DriftTruncatedFmt     = "... (truncated to %d lines; rerun with --lines <n> to see more)"
)
