package doctor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/swinst/internal/config"
	"github.com/conn-castle/swinst/internal/manifest"
	"github.com/conn-castle/swinst/internal/messages"
	"github.com/conn-castle/swinst/internal/testutil"
)

const (
	eltV2First  = `<elt id="2" action="install" datetime="20181221-142248" hash="5c8f" version="4"/>`
	eltV2Second = `<elt id="1" action="install" datetime="20171106-104603" hash="294f" version="1"/>`
)

func healthyStack(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := testutil.StackFixture(t, dir, "tool.cfg", "2", eltV2First, eltV2Second)
	testutil.WriteFile(t, filepath.Join(filepath.Dir(path), "tool.cfg_4"), "v4")
	return path
}

func TestCheckManifestHealthy(t *testing.T) {
	path := healthyStack(t)
	results := CheckManifest(path, "")

	for _, r := range results {
		assert.Equal(t, StatusOK, r.Status, "%s: %s", r.CheckName, r.Message)
	}
	assert.False(t, HasFailure(results))
	schema := requireResultByCheckName(t, results, messages.DoctorCheckNameSchema)
	assert.Equal(t, "schema 2", schema.Message)
	current := requireResultByCheckName(t, results, messages.DoctorCheckNameCurrent)
	assert.Contains(t, current.Message, "tool.cfg_4")
	requireResultByCheckName(t, results, "Decode/dynamic")
	requireResultByCheckName(t, results, "Decode/static")
}

func TestCheckManifestUnreadable(t *testing.T) {
	results := CheckManifest(filepath.Join(t.TempDir(), "missing"), "")
	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
	assert.Equal(t, messages.DoctorCheckNameReadable, results[0].CheckName)
}

func TestCheckManifestSyntaxErrorStopsEarly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack")
	testutil.WriteFile(t, path, "<stack_history")
	results := CheckManifest(path, "")

	syntax := requireResultByCheckName(t, results, messages.DoctorCheckNameSyntax)
	assert.Equal(t, StatusFail, syntax.Status)
	requireNoResult(t, results, messages.DoctorCheckNameSchema)
}

func TestCheckManifestUnknownSchema(t *testing.T) {
	path := testutil.StackFixture(t, t.TempDir(), "tool.cfg", "3")
	results := CheckManifest(path, "")

	schema := requireResultByCheckName(t, results, messages.DoctorCheckNameSchema)
	assert.Equal(t, StatusFail, schema.Status)
	assert.Contains(t, schema.Message, `"3"`)
	requireNoResult(t, results, messages.DoctorCheckNameAgreement)
}

func TestCheckManifestDefaultedSchemaWarns(t *testing.T) {
	path := testutil.StackFixture(t, t.TempDir(), "tool.cfg", "", `<elt id="1" version="20181220-090333"/>`)
	results := CheckManifest(path, "1")

	schema := requireResultByCheckName(t, results, messages.DoctorCheckNameSchema)
	assert.Equal(t, StatusWarn, schema.Status)
	assert.True(t, HasFailure(results))
}

func TestCheckManifestMalformedEntryAgreesOnKind(t *testing.T) {
	path := testutil.StackFixture(t, t.TempDir(), "tool.cfg", "2", `<elt id="1" action="install" version="1"/>`)
	results := CheckManifest(path, "")

	for _, name := range []string{"Decode/dynamic", "Decode/static"} {
		r := requireResultByCheckName(t, results, name)
		assert.Equal(t, StatusFail, r.Status)
		assert.Contains(t, r.Message, "malformed_entry")
	}
	agreement := requireResultByCheckName(t, results, messages.DoctorCheckNameAgreement)
	assert.Equal(t, StatusWarn, agreement.Status)
	requireNoResult(t, results, messages.DoctorCheckNameCurrent)
}

func TestCheckManifestAllRemovedWarns(t *testing.T) {
	path := testutil.StackFixture(t, t.TempDir(), "tool.cfg", "2",
		`<elt id="1" action="install" datetime="20171106-104603" hash="294f" version="1" removed="True"/>`)
	results := CheckManifest(path, "")

	current := requireResultByCheckName(t, results, messages.DoctorCheckNameCurrent)
	assert.Equal(t, StatusWarn, current.Status)
	requireNoResult(t, results, messages.DoctorCheckNameArtifact)
}

func TestCheckManifestMissingArtifactWarns(t *testing.T) {
	path := testutil.StackFixture(t, t.TempDir(), "tool.cfg", "2", eltV2First, eltV2Second)
	results := CheckManifest(path, "")

	artifact := requireResultByCheckName(t, results, messages.DoctorCheckNameArtifact)
	assert.Equal(t, StatusWarn, artifact.Status)
	assert.Contains(t, artifact.Message, "tool.cfg_4")
}

type fixedDispatcher struct {
	stack *manifest.InstallStack
	err   error
}

func (f fixedDispatcher) Parse(manifest.SchemaVersion, *etree.Element) (*manifest.InstallStack, error) {
	return f.stack, f.err
}

func TestCheckManifestReportsBackendDisagreement(t *testing.T) {
	origFactory := newDispatcherFunc
	t.Cleanup(func() { newDispatcherFunc = origFactory })
	newDispatcherFunc = func(name string) (manifest.Dispatcher, error) {
		if name == manifest.BackendStatic {
			return fixedDispatcher{err: manifest.ErrOrderingViolation}, nil
		}
		return origFactory(name)
	}

	results := CheckManifest(healthyStack(t), "")
	agreement := requireResultByCheckName(t, results, messages.DoctorCheckNameAgreement)
	assert.Equal(t, StatusFail, agreement.Status)
	assert.Contains(t, agreement.Message, "ordering_violation")
	// The dynamic stack still resolves.
	current := requireResultByCheckName(t, results, messages.DoctorCheckNameCurrent)
	assert.Equal(t, StatusOK, current.Status)
}

func TestCheckManifestReportsDifferentStacks(t *testing.T) {
	origFactory := newDispatcherFunc
	t.Cleanup(func() { newDispatcherFunc = origFactory })
	newDispatcherFunc = func(name string) (manifest.Dispatcher, error) {
		if name == manifest.BackendStatic {
			return fixedDispatcher{stack: &manifest.InstallStack{Schema: manifest.SchemaV2}}, nil
		}
		return origFactory(name)
	}

	results := CheckManifest(healthyStack(t), "")
	agreement := requireResultByCheckName(t, results, messages.DoctorCheckNameAgreement)
	assert.Equal(t, StatusFail, agreement.Status)
	assert.Equal(t, "Backends disagree: decoded stacks differ", agreement.Message)
}

func TestCheckConfig(t *testing.T) {
	t.Setenv(config.EnvBackend, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvDefaultSchema, "")

	results, cfg := CheckConfig(filepath.Join(t.TempDir(), "config.toml"), true)
	require.NotNil(t, cfg)
	assert.Equal(t, StatusOK, results[0].Status)

	bad := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`backend = "nope"`), 0o644))
	results, cfg = CheckConfig(bad, false)
	assert.Nil(t, cfg)
	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
	assert.True(t, strings.Contains(results[0].Message, "nope"))
}

func TestCheckConfigUsesLoader(t *testing.T) {
	orig := loadConfigFunc
	t.Cleanup(func() { loadConfigFunc = orig })
	loadConfigFunc = func(string, bool) (*config.Config, error) { return nil, errors.New("boom") }

	results, cfg := CheckConfig("/etc/swinst.toml", false)
	assert.Nil(t, cfg)
	assert.Contains(t, results[0].Message, "boom")
}
