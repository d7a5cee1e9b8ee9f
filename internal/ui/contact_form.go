package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/folio/internal/contact"
	"github.com/yildizm/folio/internal/emoji"
	"github.com/yildizm/folio/internal/ui/components"
)

var fieldPlaceholders = map[contact.Field]string{
	contact.FieldName:    "Your name",
	contact.FieldEmail:   "you@example.com",
	contact.FieldSubject: "What is this about?",
	contact.FieldMessage: "Your message",
}

// contactForm is the contact section: one input per field, a send button and
// the alert area.
type contactForm struct {
	inputs  []textinput.Model
	focus   int
	editing bool
	sending bool
	spinner *components.Spinner

	errors  []string
	success string
	seq     int // bumps on every success so older clear ticks are ignored
}

func newContactForm() *contactForm {
	f := &contactForm{spinner: components.NewSpinner("Sending...")}
	for _, field := range contact.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = fieldPlaceholders[field]
		ti.CharLimit = 120
		if field == contact.FieldMessage {
			ti.CharLimit = 1000
		}
		f.inputs = append(f.inputs, ti)
	}
	return f
}

// Form returns the current field values.
func (f *contactForm) Form() contact.Form {
	var form contact.Form
	for i, field := range contact.Fields {
		form.Set(field, f.inputs[i].Value())
	}
	return form
}

// Focus starts editing field i.
func (f *contactForm) Focus(i int) tea.Cmd {
	if i < 0 {
		i = 0
	}
	if i >= len(f.inputs) {
		i = len(f.inputs) - 1
	}
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = i
	f.editing = true
	return f.inputs[i].Focus()
}

// Blur stops editing.
func (f *contactForm) Blur() {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.editing = false
}

// Next moves focus forward, reporting false when already on the last field.
func (f *contactForm) Next() (tea.Cmd, bool) {
	if f.focus >= len(f.inputs)-1 {
		return nil, false
	}
	return f.Focus(f.focus + 1), true
}

func (f *contactForm) Prev() tea.Cmd {
	return f.Focus(f.focus - 1)
}

func (f *contactForm) OnLastField() bool {
	return f.focus == len(f.inputs)-1
}

// Reset clears every input.
func (f *contactForm) Reset() {
	for j := range f.inputs {
		f.inputs[j].Reset()
	}
}

// Update forwards msg to the focused input.
func (f *contactForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// SetWidth sizes the inputs to fit the section.
func (f *contactForm) SetWidth(width int) {
	for j := range f.inputs {
		f.inputs[j].Width = max(10, width-6)
	}
}

func (f *contactForm) View(st *Styles, width int) string {
	rows := make([]string, 0, len(f.inputs)*2+4)
	for i, field := range contact.Fields {
		label := st.Body.Render(strings.ToUpper(field.String()[:1]) + field.String()[1:])
		box := st.Input
		if f.editing && i == f.focus {
			box = st.InputFocused
		}
		rows = append(rows, label, box.Width(max(10, width-2)).Render(f.inputs[i].View()))
	}

	if f.sending {
		rows = append(rows, "", st.ButtonBusy.Render(f.spinner.Render()))
	} else {
		rows = append(rows, "", st.Button.Render(emoji.GetEmoji("contact")+" Send Message"))
	}

	for _, e := range f.errors {
		rows = append(rows, st.Error.Render(emoji.GetEmoji("error")+" "+e))
	}
	if f.success != "" {
		rows = append(rows, st.Success.Render(emoji.GetEmoji("success")+" "+f.success))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
