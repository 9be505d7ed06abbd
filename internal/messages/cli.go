package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse   = "swinst [file]"
	RootShort = "Report the current artifact recorded in a swinstall_stack"
	RootLong  = "swinst reads the swinstall_stack journal kept next to an installed file and reports which versioned artifact is current.\n\n" +
		"Run with a file to print its current artifact (same as `swinst current <file>`)."
	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagConfig        = "Path to the config file (default $SWINST_CONFIG or ~/.config/swinst/config.toml)"
	FlagVerbose       = "Log debug output to stderr"
	FlagBackend       = "Dispatcher backend: dynamic or static"
	FlagDefaultSchema = "Schema to assume when the manifest root has no schema attribute"
	FlagJSON          = "Print machine-readable JSON"
	FlagManifest      = "Treat the argument as the swinstall_stack itself rather than the installed file"
	FlagDate          = "Resolve as of this date (YYYY-MM-DD)"
	FlagTime          = "Resolve as of this time of day (HH:MM:SS)"
	FlagDiffLines     = "Maximum diff lines to print"

	CurrentUse   = "current <file>"
	CurrentShort = "Print the path of the current artifact"

	HistoryUse       = "history <file>"
	HistoryShort     = "List every install recorded in the swinstall_stack, oldest first"
	HistoryHeaderFmt = "%s (schema %s, %d entries)\n"
	HistoryLineFmt   = "%s %4d  %s  %-11s %-24s %s"
	HistoryRemoved   = "removed"
	HistoryCurrent   = "*"
	HistoryEmpty     = "  (no entries)"
	HistoryNoCurrent = "No current entry: every install has been removed."

	DiffUse       = "diff <file>"
	DiffShort     = "Show how the installed file differs from its current artifact"
	DiffIdentical = "%s matches current artifact %s\n"

	PickUse   = "pick <file>"
	PickShort = "Interactively choose an entry and print its artifact path"

	WatchUse      = "watch <file>"
	WatchShort    = "Print the current artifact each time the swinstall_stack changes"
	WatchErrorFmt = "error: %v\n"

	McpUse   = "mcp"
	McpShort = "Serve current_artifact and install_history as MCP tools over stdio"

	UsageArgsFmt     = "%w\nRun '%s --help' for usage."
	ConfigLoadFailed = "load config: %w"
	OutputEncodeFmt  = "encode output: %w"
	ResolveInputFmt  = "resolve %s: %w"
)
