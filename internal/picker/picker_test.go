package picker

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/swinst/internal/manifest"
)

type fakeUI struct {
	gotTitle   string
	gotOptions []Option
	preset     int64
	choose     int64
	err        error
}

func (f *fakeUI) Select(title string, options []Option, value *int64) error {
	f.gotTitle = title
	f.gotOptions = options
	f.preset = *value
	if f.err != nil {
		return f.err
	}
	if f.choose != 0 {
		*value = f.choose
	}
	return nil
}

func testStack() *manifest.InstallStack {
	at := func(day int) time.Time { return time.Date(2018, 12, day, 9, 0, 0, 0, time.UTC) }
	return &manifest.InstallStack{
		ManifestPath: "/dd/etc/bak/packages.xml/packages.xml_swinstall_stack",
		Schema:       manifest.SchemaV2,
		Entries: []manifest.StackEntry{
			{Sequence: 1, Version: "1", Path: "/dd/etc/bak/packages.xml/packages.xml_1", InstalledAt: at(1), Action: manifest.ActionInstall},
			{Sequence: 2, Version: "2", Path: "/dd/etc/bak/packages.xml/packages.xml_2", InstalledAt: at(2), Action: manifest.ActionInstall, User: "jdoe"},
			{Sequence: 3, Version: "3", Path: "/dd/etc/bak/packages.xml/packages.xml_3", InstalledAt: at(3), Action: manifest.ActionInstall, Removed: true},
		},
	}
}

func TestOptionsNewestFirstWithMarkers(t *testing.T) {
	opts := Options(testStack(), 2)
	require.Len(t, opts, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{opts[0].Sequence, opts[1].Sequence, opts[2].Sequence})
	assert.Contains(t, opts[0].Label, "(removed)")
	assert.Contains(t, opts[1].Label, "(current)")
	assert.Contains(t, opts[1].Label, "jdoe")
	assert.Contains(t, opts[2].Label, "2018-12-01 09:00:00")
	assert.False(t, strings.Contains(opts[2].Label, "(current)"))
}

func TestPickPreselectsCurrent(t *testing.T) {
	ui := &fakeUI{}
	entry, err := Pick(ui, testStack())
	require.NoError(t, err)
	assert.Equal(t, int64(2), ui.preset)
	assert.Equal(t, int64(2), entry.Sequence)
	assert.Contains(t, ui.gotTitle, "packages.xml_swinstall_stack")
}

func TestPickReturnsChosenEntry(t *testing.T) {
	entry, err := Pick(&fakeUI{choose: 1}, testStack())
	require.NoError(t, err)
	assert.Equal(t, "/dd/etc/bak/packages.xml/packages.xml_1", entry.Path)
}

func TestPickAllRemovedStillOffersEntries(t *testing.T) {
	stack := testStack()
	for i := range stack.Entries {
		stack.Entries[i].Removed = true
	}
	ui := &fakeUI{choose: 3}
	entry, err := Pick(ui, stack)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ui.preset)
	assert.Equal(t, int64(3), entry.Sequence)
}

func TestPickErrors(t *testing.T) {
	_, err := Pick(&fakeUI{}, &manifest.InstallStack{})
	assert.Error(t, err)

	_, err = Pick(&fakeUI{err: ErrCancelled}, testStack())
	assert.ErrorIs(t, err, ErrCancelled)

	_, err = Pick(&fakeUI{choose: 42}, testStack())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "42")

	stack := testStack()
	stack.Entries[1].Sequence = 1
	_, err = Pick(&fakeUI{}, stack)
	assert.ErrorIs(t, err, manifest.ErrOrderingViolation)
}

func TestHuhUIRequiresTerminal(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}
	var v int64
	err := ui.Select("Title", []Option{{Label: "a", Sequence: 1}}, &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestHuhUIRunForm(t *testing.T) {
	origRunForm := runFormFunc
	t.Cleanup(func() { runFormFunc = origRunForm })
	ui := &HuhUI{isTerminal: func() bool { return true }}
	var v int64

	runFormFunc = func(form *huh.Form) error {
		assert.NotNil(t, form)
		return nil
	}
	assert.NoError(t, ui.Select("Title", []Option{{Label: "a", Sequence: 1}}, &v))

	runFormFunc = func(*huh.Form) error { return huh.ErrUserAborted }
	assert.ErrorIs(t, ui.Select("Title", nil, &v), ErrCancelled)

	boom := errors.New("boom")
	runFormFunc = func(*huh.Form) error { return boom }
	assert.ErrorIs(t, ui.Select("Title", nil, &v), boom)
}

func TestNewHuhUI(t *testing.T) {
	assert.NotNil(t, NewHuhUI().isTerminal)
}
