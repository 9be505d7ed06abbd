package picker

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/swinst/internal/messages"
	"github.com/conn-castle/swinst/internal/terminal"
)

// Option is one selectable stack entry.
type Option struct {
	Label    string
	Sequence int64
}

// UI selects one option by sequence id.
type UI interface {
	Select(title string, options []Option, value *int64) error
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI that requires an interactive terminal.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return errors.New(messages.TerminalNotInteractive)
}

// pickerKeyMap makes Esc and Ctrl+C abort the form. Prev is repurposed as a
// display-only "esc cancel" hint.
func pickerKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))
	km.Select.Prev = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", messages.PickHintCancel))
	return km
}

// hintField keeps the Prev hint visible. huh disables Prev on the first
// field of a group through WithPosition, and a picker form has only one field.
type hintField struct {
	huh.Field
	km *huh.KeyMap
}

func (f *hintField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := f.Field.Update(msg)
	if field, ok := model.(huh.Field); ok {
		f.Field = field
	}
	return f, cmd
}

func (f *hintField) WithPosition(p huh.FieldPosition) huh.Field {
	f.Field.WithPosition(p)
	f.WithKeyMap(f.km)
	return f
}

// interruptToQuit turns InterruptMsg into QuitMsg so bubbletea clears the
// form before returning.
func interruptToQuit(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	form.WithKeyMap(pickerKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(interruptToQuit),
	)
	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}

// Select renders a single-choice list of stack entries.
func (ui *HuhUI) Select(title string, options []Option, value *int64) error {
	opts := make([]huh.Option[int64], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Label, o.Sequence)
	}
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			&hintField{
				Field: huh.NewSelect[int64]().
					Title(title).
					Options(opts...).
					Value(value),
				km: pickerKeyMap(),
			},
		),
	))
}

var _ UI = (*HuhUI)(nil)

func optionLabel(seq int64, when string, version string, marker string) string {
	return fmt.Sprintf(messages.PickOptionFmt, seq, when, version, marker)
}
