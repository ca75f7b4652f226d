package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// inputForm is a column of labelled text inputs with one focused field, a
// submitting flag and an inline error.
type inputForm struct {
	labels     []string
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newInput(placeholder string, limit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func newInputForm(labels []string, inputs []textinput.Model) inputForm {
	f := inputForm{labels: labels, inputs: inputs}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *inputForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *inputForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update forwards msg to the focused input. Typing is ignored while a
// submission is in flight.
func (f *inputForm) update(msg tea.Msg) tea.Cmd {
	if f.submitting {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f inputForm) value(i int) string {
	return f.inputs[i].Value()
}

// setValues overwrites the inputs in order and moves focus to the first one.
func (f *inputForm) setValues(values ...string) {
	for i := range f.inputs {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		f.inputs[i].SetValue(v)
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f inputForm) view(submitLabel string) string {
	width := 0
	for _, l := range f.labels {
		width = max(width, lipgloss.Width(l))
	}
	labelStyle := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	for i, in := range f.inputs {
		label := labelStyle.Render(f.labels[i])
		if i == f.focus {
			label = selectedStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if f.submitting {
		b.WriteString("\n[" + submitLabel + "...]\n")
	} else {
		b.WriteString("\n[" + submitLabel + "]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderErrorBox(f.errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
