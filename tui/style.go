package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the display classes of engine output.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleObject = lipgloss.NewStyle().
			Bold(true)

	styleExits = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleCombat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind is the display class of one output line.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindObject
	kindExits
	kindCombat
	kindSystem
	kindError
	kindTrace
)

// classifyLine maps a line to its display class. The engine's CommandOutput
// kind settles most lines; a few structural lines the engine embeds in
// descriptions (exit lists, items on the floor, trace output) are
// recognized by shape.
func classifyLine(outputKind, line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "Exits:"):
		return kindExits
	case strings.HasPrefix(line, "There is a "):
		return kindObject
	}
	switch outputKind {
	case "error":
		return kindError
	case "combat":
		return kindCombat
	case "system", "help":
		return kindSystem
	}
	return kindNarrative
}

// styledFloorItem renders "There is a brass lantern here." with the item
// name set off from the frame text.
func styledFloorItem(line string) string {
	const prefix = "There is a "
	const suffix = " here."
	if !strings.HasPrefix(line, prefix) || !strings.HasSuffix(line, suffix) {
		return styleObject.Render(line)
	}
	name := line[len(prefix) : len(line)-len(suffix)]
	return styleNarrative.Render(prefix) + styleObject.Render(name) + styleNarrative.Render(suffix)
}

// styledPlayerInput renders the echoed player input in green with "> ".
func styledPlayerInput(input string) string {
	return stylePlayerInput.Render("> " + input)
}

// styledSystemMsg renders a meta-command response in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
