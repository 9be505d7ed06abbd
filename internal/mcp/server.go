// Package mcp serves swinstall_stack queries as MCP tools over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/conn-castle/swinst/internal/manifest"
	"github.com/conn-castle/swinst/internal/messages"
)

type serverRunner func(ctx context.Context, server *mcp.Server) error

// QueryInput names a manifest and an optional as-of instant.
type QueryInput struct {
	Manifest    string `json:"manifest" jsonschema:"path to the swinstall_stack file, or to the installed file when versionless is true"`
	Versionless bool   `json:"versionless,omitempty" jsonschema:"treat manifest as the installed (versionless) file and locate its swinstall_stack"`
	AsOf        string `json:"as_of,omitempty" jsonschema:"resolve as of YYYY-MM-DD or YYYY-MM-DD HH:MM:SS; empty means now"`
}

// EntryView is the wire form of a stack entry.
type EntryView struct {
	Sequence    int64  `json:"sequence"`
	Path        string `json:"path"`
	Version     string `json:"version"`
	Revision    string `json:"revision,omitempty"`
	InstalledAt string `json:"installed_at"`
	User        string `json:"user,omitempty"`
	Action      string `json:"action"`
	Hash        string `json:"hash,omitempty"`
	Removed     bool   `json:"removed"`
}

// CurrentOutput is the result of current_artifact.
type CurrentOutput struct {
	Artifact string    `json:"artifact"`
	Entry    EntryView `json:"entry"`
}

// HistoryOutput is the result of install_history.
type HistoryOutput struct {
	ManifestPath string      `json:"manifest_path"`
	Schema       string      `json:"schema"`
	Current      int64       `json:"current,omitempty"`
	Entries      []EntryView `json:"entries"`
}

// RunServer starts the MCP tool server over stdio. newQuery builds a fresh
// Query for every call.
func RunServer(ctx context.Context, version string, newQuery func() manifest.Query) error {
	return runServer(ctx, version, newQuery, defaultServerRunner)
}

func runServer(ctx context.Context, version string, newQuery func() manifest.Query, runner serverRunner) error {
	if runner == nil {
		return fmt.Errorf(messages.McpRunServerFailedFmt, errors.New(messages.McpRunnerNil))
	}
	server, err := newServer(version, newQuery)
	if err != nil {
		return err
	}
	if err := runner(ctx, server); err != nil {
		return fmt.Errorf(messages.McpRunServerFailedFmt, err)
	}
	return nil
}

func newServer(version string, newQuery func() manifest.Query) (*mcp.Server, error) {
	if newQuery == nil {
		return nil, errors.New(messages.McpNilQueryFactory)
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    messages.McpServerName,
		Version: version,
	}, nil)
	h := handlers{newQuery: newQuery, now: time.Now}
	mcp.AddTool(server, &mcp.Tool{
		Name:        messages.McpToolCurrentName,
		Description: messages.McpToolCurrentDesc,
	}, h.current)
	mcp.AddTool(server, &mcp.Tool{
		Name:        messages.McpToolHistoryName,
		Description: messages.McpToolHistoryDesc,
	}, h.history)
	return server, nil
}

// defaultServerRunner runs the MCP server over stdio.
func defaultServerRunner(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

type handlers struct {
	newQuery func() manifest.Query
	now      func() time.Time
}

// prepare resolves the stack path and cutoff for one call.
func (h handlers) prepare(in QueryInput) (manifest.Query, string, error) {
	path := strings.TrimSpace(in.Manifest)
	if path == "" {
		return manifest.Query{}, "", errors.New(messages.McpManifestRequired)
	}
	if in.Versionless {
		stackPath, err := manifest.StackPathFromVersionless(path)
		if err != nil {
			return manifest.Query{}, "", err
		}
		path = stackPath
	}
	q := h.newQuery()
	if raw := strings.TrimSpace(in.AsOf); raw != "" {
		date, clock, _ := strings.Cut(raw, " ")
		if clock == "" {
			clock = "23:59:59"
		}
		at, err := manifest.AsOf(date, clock, h.now())
		if err != nil {
			return manifest.Query{}, "", fmt.Errorf(messages.McpInvalidDateTimeFmt, raw)
		}
		q.At = at
	}
	return q, path, nil
}

func (h handlers) current(_ context.Context, _ *mcp.CallToolRequest, in QueryInput) (*mcp.CallToolResult, CurrentOutput, error) {
	q, path, err := h.prepare(in)
	if err != nil {
		return nil, CurrentOutput{}, err
	}
	entry, err := q.Current(path)
	if err != nil {
		return nil, CurrentOutput{}, fmt.Errorf(messages.McpQueryFailedFmt, manifest.KindOf(err), err)
	}
	return nil, CurrentOutput{Artifact: entry.Path, Entry: viewOf(entry)}, nil
}

func (h handlers) history(_ context.Context, _ *mcp.CallToolRequest, in QueryInput) (*mcp.CallToolResult, HistoryOutput, error) {
	q, path, err := h.prepare(in)
	if err != nil {
		return nil, HistoryOutput{}, err
	}
	stack, err := q.Stack(path)
	if err != nil {
		return nil, HistoryOutput{}, fmt.Errorf(messages.McpQueryFailedFmt, manifest.KindOf(err), err)
	}
	out := HistoryOutput{
		ManifestPath: stack.ManifestPath,
		Schema:       stack.Schema.String(),
		Entries:      make([]EntryView, 0, stack.Len()),
	}
	for _, e := range stack.Entries {
		if !q.At.IsZero() && e.InstalledAt.After(q.At) {
			continue
		}
		out.Entries = append(out.Entries, viewOf(e))
	}
	var current manifest.StackEntry
	if q.At.IsZero() {
		current, err = manifest.Resolve(stack)
	} else {
		current, err = manifest.ResolveAt(stack, q.At)
	}
	if err == nil {
		out.Current = current.Sequence
	}
	return nil, out, nil
}

func viewOf(e manifest.StackEntry) EntryView {
	return EntryView{
		Sequence:    e.Sequence,
		Path:        e.Path,
		Version:     e.Version,
		Revision:    e.Revision,
		InstalledAt: e.InstalledAt.Format(time.RFC3339),
		User:        e.User,
		Action:      string(e.Action),
		Hash:        e.Hash,
		Removed:     e.Removed,
	}
}
