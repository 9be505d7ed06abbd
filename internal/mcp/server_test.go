package mcp

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/swinst/internal/manifest"
	"github.com/conn-castle/swinst/internal/testutil"
)

const (
	eltNewest = `<elt id="3" action="install" datetime="20181221-142313" hash="c618" version="5" removed="True"/>`
	eltMiddle = `<elt id="2" action="install" datetime="20181221-142248" hash="5c8f" version="4" user="ops"/>`
	eltOldest = `<elt id="1" action="install" datetime="20171106-104603" hash="294f" version="1"/>`
)

func testHandlers() handlers {
	return handlers{
		newQuery: func() manifest.Query { return manifest.Query{} },
		now:      func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func stackFixture(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	return dir, testutil.StackFixture(t, dir, "packages.xml", "2", eltNewest, eltMiddle, eltOldest)
}

func TestCurrentTool(t *testing.T) {
	_, stack := stackFixture(t)
	_, out, err := testHandlers().current(context.Background(), nil, QueryInput{Manifest: stack})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(stack), "packages.xml_4"), out.Artifact)
	assert.Equal(t, int64(2), out.Entry.Sequence)
	assert.Equal(t, "ops", out.Entry.User)
	assert.Equal(t, "2018-12-21T14:22:48Z", out.Entry.InstalledAt)
}

func TestCurrentToolVersionless(t *testing.T) {
	dir, _ := stackFixture(t)
	_, out, err := testHandlers().current(context.Background(), nil, QueryInput{
		Manifest:    filepath.Join(dir, "packages.xml"),
		Versionless: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "4", out.Entry.Version)
}

func TestCurrentToolAsOf(t *testing.T) {
	_, stack := stackFixture(t)
	h := testHandlers()

	_, out, err := h.current(context.Background(), nil, QueryInput{Manifest: stack, AsOf: "2018-01-01"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Entry.Sequence)

	_, out, err = h.current(context.Background(), nil, QueryInput{Manifest: stack, AsOf: "2018-12-21 14:22:48"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Entry.Sequence)

	_, _, err = h.current(context.Background(), nil, QueryInput{Manifest: stack, AsOf: "yesterday"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yesterday")
}

func TestCurrentToolErrors(t *testing.T) {
	h := testHandlers()
	_, _, err := h.current(context.Background(), nil, QueryInput{})
	require.Error(t, err)

	_, _, err = h.current(context.Background(), nil, QueryInput{Manifest: filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "io_failure")
	assert.True(t, errors.Is(err, manifest.ErrIO))
}

func TestHistoryTool(t *testing.T) {
	_, stack := stackFixture(t)
	_, out, err := testHandlers().history(context.Background(), nil, QueryInput{Manifest: stack})
	require.NoError(t, err)
	assert.Equal(t, "2", out.Schema)
	assert.Equal(t, int64(2), out.Current)
	require.Len(t, out.Entries, 3)
	assert.Equal(t, int64(1), out.Entries[0].Sequence)
	assert.True(t, out.Entries[2].Removed)
}

func TestHistoryToolAsOfHidesLaterEntries(t *testing.T) {
	_, stack := stackFixture(t)
	_, out, err := testHandlers().history(context.Background(), nil, QueryInput{Manifest: stack, AsOf: "2018-06-01"})
	require.NoError(t, err)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, int64(1), out.Current)
}

func TestServerOverInMemoryTransport(t *testing.T) {
	_, stack := stackFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := newServer("test", func() manifest.Query { return manifest.Query{} })
	require.NoError(t, err)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer func() { _ = serverSession.Close() }()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"current_artifact", "install_history"}, names)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "current_artifact",
		Arguments: map[string]any{"manifest": stack},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	structured, ok := res.StructuredContent.(map[string]any)
	require.True(t, ok, "structured content %T", res.StructuredContent)
	assert.Equal(t, filepath.Join(filepath.Dir(stack), "packages.xml_4"), structured["artifact"])

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "current_artifact",
		Arguments: map[string]any{"manifest": filepath.Join(t.TempDir(), "missing")},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestRunServerRunnerErrors(t *testing.T) {
	newQuery := func() manifest.Query { return manifest.Query{} }

	err := runServer(context.Background(), "v1", newQuery, nil)
	require.Error(t, err)

	err = runServer(context.Background(), "v1", nil, func(context.Context, *mcp.Server) error { return nil })
	require.Error(t, err)

	err = runServer(context.Background(), "v1", newQuery, func(context.Context, *mcp.Server) error {
		return errors.New("stdin closed")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin closed")

	called := false
	err = runServer(context.Background(), "v1", newQuery, func(_ context.Context, s *mcp.Server) error {
		called = s != nil
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}
