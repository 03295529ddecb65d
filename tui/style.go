package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHeading = lipgloss.NewStyle().
			Bold(true)

	styleDialogue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleCombat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleLevelUp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	styleQuest = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindHeading
	kindDialogue
	kindSystem
	kindCombat
	kindLevelUp
	kindQuest
)

// classifyLine determines what kind of output line this is, keyed off the
// fixed phrases the command handlers emit.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "***"):
		return kindLevelUp
	case strings.HasPrefix(line, "Quest accepted:"),
		strings.HasPrefix(line, "Quest completed:"):
		return kindQuest
	case strings.HasPrefix(line, "You defeat"),
		strings.HasPrefix(line, "A wild"),
		strings.Contains(line, "defeats you"):
		return kindCombat
	case strings.HasPrefix(line, "People here:"),
		strings.HasPrefix(line, "Nearby:"):
		return kindHeading
	case strings.Contains(line, ": \""):
		return kindDialogue
	default:
		return kindNarrative
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindHeading:
		return styleHeading.Render(line)
	case kindDialogue:
		return styleDialogue.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindCombat:
		return styleCombat.Render(line)
	case kindLevelUp:
		return styleLevelUp.Render(line)
	case kindQuest:
		return styleQuest.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render(text)
}
