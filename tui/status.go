package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing the
// current place, the clock, and the vitals that matter between commands.
func (m Model) renderStatusBar() string {
	s := m.cli.Session
	p := s.State.Player

	place := "nowhere"
	if node, ok := s.Here(); ok {
		place = node.Name
		if place == "" {
			place = node.ID
		}
	}

	phase := "☾"
	if s.Clock.IsDaytime() {
		phase = "☀"
	}

	left := fmt.Sprintf(" %s | %s %s", place, s.Clock.Formatted(), phase)
	right := fmt.Sprintf("HP %d/%d | %dg | Lv %d | Slot %d ",
		p.HP, p.MaxHP, p.Gold, p.Level, m.cli.Slot)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
