package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"catalog-cli/internal/catalog"
	"catalog-cli/internal/model"
	"catalog-cli/internal/store"
	"catalog-cli/internal/ui"
)

// listItem adapts a catalog item to bubbles/list.Item
type listItem struct {
	item model.Item
}

func (i listItem) Title() string       { return i.item.Name }
func (i listItem) Description() string { return i.item.Description }
func (i listItem) FilterValue() string { return i.item.Name }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	id := mutedStyle.Render(fmt.Sprintf("%3d", it.item.ID))
	name := ui.Sanitize(it.item.Name)
	desc := mutedStyle.Render("— " + firstLine(ui.Sanitize(it.item.Description)))

	line := fmt.Sprintf("%s  %s %s", id, name, desc)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "…"
	}
	return s
}

type appModel struct {
	list    list.Model
	session *catalog.Session
	diag    string // persistent seed-load diagnostic, empty when clean

	width  int
	height int

	// Inline add/edit form. Whether it is an add or an edit comes from
	// the session's form mode.
	formOpen bool
	form     itemForm

	// Detail view
	viewing bool
	viewID  int

	// Delete confirmation modal
	confirm *confirmState
	gate    *modalGate

	status string // transient message under the list (errors, results)
}

// modalGate is the TUI's Confirmer. It opens for exactly one delete,
// and only when the modal's Delete button was chosen.
type modalGate struct {
	granted bool
}

func (g *modalGate) Confirm(string) bool {
	ok := g.granted
	g.granted = false
	return ok
}

// Run starts the interactive page over an already seeded store.
// diag carries the seed-load failure message, if any.
func Run(st *store.Store, diag string) error {
	gate := &modalGate{}
	m := newAppModel(catalog.NewSession(st, gate), gate, diag)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newAppModel(session *catalog.Session, gate *modalGate, diag string) appModel {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = listTitle(session.Store().Len())
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	// Extend help with our bindings
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	viewBind := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view"))
	extra := func() []key.Binding { return []key.Binding{addBind, editBind, delBind, viewBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	m := appModel{
		list:    l,
		session: session,
		gate:    gate,
		diag:    diag,
		form:    newItemForm(),
		width:   80,
		height:  24,
	}
	m.refreshList()
	return m
}

func listTitle(n int) string {
	return fmt.Sprintf("%s  %s %d",
		titleStyle.Render("Catalog"),
		accentStyle.Render("items"), n,
	)
}

// refreshList re-projects the store into the visible list. Called after
// every mutation; the list never holds stale items.
func (m *appModel) refreshList() {
	items := m.session.Store().Items()
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{item: it})
	}
	m.list.SetItems(li)
	m.list.Title = listTitle(len(items))
}

func (m appModel) selectedID() (int, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return 0, false
	}
	return it.item.ID, true
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	// modal first: it swallows everything
	if m.confirm != nil {
		return m.updateConfirm(msg)
	}
	if m.formOpen {
		return m.updateForm(msg)
	}
	if m.viewing {
		return m.updateDetail(msg)
	}
	return m.updateBrowse(msg)
}

func (m appModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch k.String() {
		case "q", "esc":
			return m, tea.Quit
		case "a":
			m.session.Cancel()
			m.form.clear()
			m.formOpen = true
			m.status = ""
			return m, nil
		case "e":
			id, ok := m.selectedID()
			if !ok {
				return m, nil
			}
			it, err := m.session.BeginEdit(id)
			if err != nil {
				m.status = errorStyle.Render(err.Error())
				return m, nil
			}
			m.form.clear()
			m.form.prefill(it)
			m.formOpen = true
			m.status = ""
			return m, nil
		case "d":
			id, ok := m.selectedID()
			if !ok {
				return m, nil
			}
			it, err := m.session.Get(id)
			if err != nil {
				m.status = errorStyle.Render(err.Error())
				m.refreshList()
				return m, nil
			}
			m.confirm = &confirmState{
				id:     id,
				prompt: fmt.Sprintf("Delete %q?", it.Name),
			}
			return m, nil
		case "enter":
			id, ok := m.selectedID()
			if !ok {
				return m, nil
			}
			if _, err := m.session.Get(id); err != nil {
				m.status = errorStyle.Render(err.Error())
				return m, nil
			}
			m.viewing = true
			m.viewID = id
			m.status = ""
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab", "shift+tab":
			m.form.cycleFocus()
			return m, nil
		case "enter":
			if m.form.focus == 0 {
				m.form.cycleFocus()
				return m, nil
			}
			return m.submitForm()
		case "esc":
			m.session.Cancel()
			m.formOpen = false
			m.form.clear()
			return m, nil
		}
	}
	cmd := m.form.update(msg)
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	name, desc := m.form.values()

	var err error
	var saved model.Item
	if id, editing := m.session.Editing(); editing {
		saved, err = m.session.Update(id, name, desc)
	} else {
		saved, err = m.session.Add(name, desc)
	}
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyName):
			m.form.err = "Name cannot be empty"
			m.form.setFocus(0)
		case errors.Is(err, model.ErrEmptyDescription):
			m.form.err = "Description cannot be empty"
			m.form.setFocus(1)
		default:
			// NotFound: the item vanished mid-edit. Close the form.
			m.formOpen = false
			m.form.clear()
			m.session.Cancel()
			m.status = errorStyle.Render(err.Error())
			m.refreshList()
		}
		return m, nil
	}

	m.formOpen = false
	m.form.clear()
	m.refreshList()
	m.status = mutedStyle.Render(fmt.Sprintf("saved %q (id %d)", saved.Name, saved.ID))
	return m, nil
}

func (m appModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "tab", "left", "right":
		if m.confirm.focus == confirmFocusCancel {
			m.confirm.focus = confirmFocusDelete
		} else {
			m.confirm.focus = confirmFocusCancel
		}
		return m, nil
	case "esc":
		m.confirm = nil
		return m, nil
	case "enter":
		c := *m.confirm
		m.confirm = nil
		if c.focus != confirmFocusDelete {
			return m, nil
		}
		m.gate.granted = true
		if err := m.session.Delete(c.id); err != nil {
			m.status = errorStyle.Render(err.Error())
		} else {
			m.status = mutedStyle.Render("deleted")
			if m.viewing && m.viewID == c.id {
				m.viewing = false
			}
		}
		m.refreshList()
		return m, nil
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "enter", "q":
			m.viewing = false
			return m, nil
		case "e":
			it, err := m.session.BeginEdit(m.viewID)
			if err != nil {
				m.viewing = false
				m.status = errorStyle.Render(err.Error())
				m.refreshList()
				return m, nil
			}
			m.viewing = false
			m.form.clear()
			m.form.prefill(it)
			m.formOpen = true
			return m, nil
		case "d":
			it, err := m.session.Get(m.viewID)
			if err != nil {
				m.viewing = false
				m.status = errorStyle.Render(err.Error())
				m.refreshList()
				return m, nil
			}
			m.confirm = &confirmState{
				id:     m.viewID,
				prompt: fmt.Sprintf("Delete %q?", it.Name),
			}
			return m, nil
		}
	}
	return m, nil
}

func (m appModel) View() string {
	listHeight := m.height - 4
	if m.formOpen {
		listHeight = m.height - 8
	}
	m.list.SetSize(m.width-2, listHeight)

	content := m.list.View()

	if m.diag != "" {
		content = warnStyle.Render("! "+m.diag) + "\n" + content
	}
	if m.status != "" {
		content += "\n" + m.status
	}
	if m.formOpen {
		title := "Add item"
		if _, editing := m.session.Editing(); editing {
			title = "Edit item"
		}
		content += "\n" + m.form.view(title)
	}
	if m.viewing {
		content += "\n" + m.detailView()
	}
	if m.confirm != nil {
		content += "\n" + m.confirm.view()
	}
	return panelStyle().Render(content)
}

func (m appModel) detailView() string {
	it, err := m.session.Get(m.viewID)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	w := m.width - 8
	body := titleStyle.Render(ui.Sanitize(it.Name)) + "  " +
		mutedStyle.Render(fmt.Sprintf("id %d", it.ID)) + "\n" +
		renderMarkdown(ui.Sanitize(it.Description), w) + "\n" +
		helpStyle.Render("e: edit   d: delete   esc: close")
	return panelStyle().Render(body)
}
