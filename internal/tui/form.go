package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"catalog-cli/internal/model"
)

// itemForm is the two-field inline form shared by add and edit. Which
// of the two it is comes from the session's form mode, not from the
// form itself.
type itemForm struct {
	name  textinput.Model
	desc  textinput.Model
	focus int // 0 = name, 1 = desc
	err   string
}

func newItemForm() itemForm {
	name := textinput.New()
	name.Prompt = "> "
	name.Placeholder = "Item name..."
	name.CharLimit = 120

	desc := textinput.New()
	desc.Prompt = "> "
	desc.Placeholder = "Item description..."
	desc.CharLimit = 400

	return itemForm{name: name, desc: desc}
}

func (f *itemForm) prefill(it model.Item) {
	f.name.SetValue(it.Name)
	f.desc.SetValue(it.Description)
	f.name.CursorEnd()
	f.desc.CursorEnd()
}

func (f *itemForm) clear() {
	f.name.SetValue("")
	f.desc.SetValue("")
	f.err = ""
	f.setFocus(0)
}

func (f *itemForm) setFocus(i int) {
	f.focus = i
	if i == 0 {
		f.name.Focus()
		f.desc.Blur()
	} else {
		f.name.Blur()
		f.desc.Focus()
	}
}

func (f *itemForm) cycleFocus() {
	f.setFocus((f.focus + 1) % 2)
}

func (f *itemForm) values() (name, desc string) {
	return strings.TrimSpace(f.name.Value()), strings.TrimSpace(f.desc.Value())
}

func (f *itemForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.desc, cmd = f.desc.Update(msg)
	}
	return cmd
}

func (f *itemForm) view(title string) string {
	if f.err != "" {
		title += " — " + errorStyle.Render(f.err)
	}
	nameLabel := "Name        "
	descLabel := "Description "
	if f.focus == 0 {
		nameLabel = selectedStyle.Render(nameLabel)
	} else {
		descLabel = selectedStyle.Render(descLabel)
	}
	body := title + "\n" +
		nameLabel + f.name.View() + "\n" +
		descLabel + f.desc.View() + "\n" +
		helpStyle.Render("tab: next field   enter: save   esc: cancel")
	bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	return bar.Render(body)
}
