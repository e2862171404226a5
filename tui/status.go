package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing
// current room, exits, inventory, score, and move count.
func (m Model) renderStatusBar() string {
	w := m.engine.World

	roomName := w.Player.Location
	var dirs []string
	if room, ok := w.Rooms[w.Player.Location]; ok {
		if room.Name != "" {
			roomName = room.Name
		}
		for dir := range room.Exits {
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	exitStr := strings.Join(dirs, ",")

	left := fmt.Sprintf(" %s | Exits: %s", roomName, exitStr)
	right := fmt.Sprintf("S:%d M:%d ", w.Player.Score, w.Player.Moves)

	// Show inventory items if they fit, otherwise just count.
	if invCount := len(w.Player.Inventory); invCount > 0 {
		var names []string
		for _, id := range w.Player.Inventory {
			names = append(names, w.DisplayName(id))
		}
		candidate := fmt.Sprintf("Inv: %s | S:%d M:%d ",
			strings.Join(names, ", "), w.Player.Score, w.Player.Moves)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | S:%d M:%d ", invCount, w.Player.Score, w.Player.Moves)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
