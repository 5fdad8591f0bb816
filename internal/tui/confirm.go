package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type confirmFocus int

const (
	confirmFocusCancel confirmFocus = iota
	confirmFocusDelete
)

// confirmState tracks the pending delete while the modal is up. The
// session's confirmation gate stays closed until the Delete button is
// actually chosen, so no mutation can sneak past the modal.
type confirmState struct {
	id     int
	prompt string
	focus  confirmFocus
}

func (c confirmState) view() string {
	// No borders inside the modal; nested borders leave background
	// artifacts on some terminals.
	del := plainBtnStyle.Render("Delete")
	cancel := plainBtnStyle.Render("Cancel")
	if c.focus == confirmFocusDelete {
		del = activeBtnStyle.Render("Delete")
	} else {
		cancel = activeBtnStyle.Render("Cancel")
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, cancel, " ", del)

	body := strings.Join([]string{
		c.prompt,
		"",
		controls,
		"",
		helpStyle.Render("tab: focus   enter: select   esc: cancel"),
	}, "\n")
	return panelStyle().Render(titleStyle.Render("Confirm delete") + "\n" + body)
}
