package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/halvard/dungeon/engine"
	"github.com/halvard/dungeon/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool // true for echoed player input
	isSystem bool // true for system messages
}

// outputLine pairs a display line with the engine output kind it came from.
type outputLine struct {
	text string
	kind string // engine CommandOutput kind; empty for banner/meta text
}

// asLines tags plain strings with one engine output kind.
func asLines(kind string, texts []string) []outputLine {
	lines := make([]outputLine, 0, len(texts))
	for _, t := range texts {
		lines = append(lines, outputLine{text: t, kind: kind})
	}
	return lines
}

// Model is the Bubble Tea model for the dungeon TUI.
type Model struct {
	engine *engine.Engine

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated narrative lines (unstyled, for re-wrapping)

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
	saveDir  string
}

// gameOutputMsg carries output from the engine into the Update loop.
type gameOutputMsg struct {
	input    string       // echoed player input (empty for intro)
	lines    []outputLine // output lines with their engine kinds
	isSystem bool         // true for meta-command output
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	home, _ := os.UserHomeDir()
	return Model{
		engine:  eng,
		input:   ti,
		history: NewHistory(100),
		saveDir: filepath.Join(home, ".dungeon", "saves"),
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine) error {
	m := New(eng)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that produces intro text and first look.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		var lines []outputLine

		game := m.engine.World.Game
		banner := game.Title
		if game.Version != "" {
			banner += " v" + game.Version
		}
		if game.Author != "" {
			banner += " by " + game.Author
		}
		lines = append(lines, outputLine{text: banner}, outputLine{})

		if game.Intro != "" {
			lines = append(lines, outputLine{text: game.Intro}, outputLine{})
		}

		out := m.engine.Execute("look")
		lines = append(lines, asLines(out.Kind, out.Lines)...)

		return gameOutputMsg{lines: lines}
	}
}

// Update handles messages (key presses, window resize, game output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if older, ok := m.history.Older(); ok {
				m.input.SetValue(older)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if newer, ok := m.history.Newer(); ok {
				m.input.SetValue(newer)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.Reset()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	// "again" / "g" repeats the last game command; meta-commands are
	// recorded for arrow recall but are never repeated this way.
	lower := strings.ToLower(input)
	if lower == "again" || lower == "g" {
		last, ok := m.history.LastGame()
		if !ok {
			m = m.appendOutput(gameOutputMsg{
				input: input, lines: asLines("", []string{"Nothing to repeat."}), isSystem: true,
			})
			return m, nil
		}
		input = last
	}

	m.history.Push(input)
	m.history.Reset()

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(gameOutputMsg{input: input, lines: asLines("", output), isSystem: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// Game command.
	report := m.engine.Step(input)
	output := reportLines(report)
	if m.trace {
		output = append(output, asLines("", formatTrace(report))...)
	}
	m = m.appendOutput(gameOutputMsg{input: input, lines: output})
	return m, nil
}

// reportLines flattens a batch report into display lines, each carrying
// the kind of the command output it came from.
func reportLines(report types.ExecutionReport) []outputLine {
	var lines []outputLine
	for _, r := range report.Results {
		if r.Skipped {
			lines = append(lines, outputLine{
				text: fmt.Sprintf("(%s skipped)", r.Command), kind: "system",
			})
			continue
		}
		lines = append(lines, asLines(r.Output.Kind, r.Output.Lines)...)
	}
	return lines
}

// formatTrace summarizes per-command execution for the /trace toggle.
func formatTrace(report types.ExecutionReport) []string {
	lines := []string{fmt.Sprintf("[trace] %s: %d executed, %d failed, %d skipped",
		report.Policy, report.Executed, report.Failed, report.Skipped)}
	for _, r := range report.Results {
		if r.Skipped {
			continue
		}
		lines = append(lines, fmt.Sprintf("[trace]   %q ok=%v in %s",
			r.Command, r.Success, r.Ended.Sub(r.Started)))
	}
	return lines
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{
			text: "> " + msg.input, isInput: true,
		})
	}

	for _, line := range msg.lines {
		rl := rawLine{text: line.text, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line.kind, line.text)
		}
		m.rawLines = append(m.rawLines, rl)
	}

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width
// and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, styledPlayerInput(strings.TrimPrefix(wrapped, "> ")))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindObject:
		return styledFloorItem(line)
	case kindExits:
		return styleExits.Render(line)
	case kindCombat:
		return styleCombat.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries. Preserves existing newlines within the text.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/save":
		return m.cmdSave(arg), false

	case "/load":
		return m.cmdLoad(arg), false

	case "/seed":
		return []string{fmt.Sprintf("Seed: %d (position %d)",
			m.engine.RNG.Seed(), m.engine.RNG.Position())}, false

	case "/help":
		return m.cmdHelp(), false

	case "/state":
		return m.cmdState(), false

	case "/trace":
		m.trace = !m.trace
		if m.trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func (m *Model) cmdSave(name string) []string {
	if name == "" {
		name = "quicksave"
	}

	data, err := m.engine.Save()
	if err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}

	if err := os.MkdirAll(m.saveDir, 0o755); err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}

	path := filepath.Join(m.saveDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}

	return []string{fmt.Sprintf("Game saved to %s.", name)}
}

func (m *Model) cmdLoad(name string) []string {
	if name == "" {
		name = "quicksave"
	}

	path := filepath.Join(m.saveDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Load failed: %v", err)}
	}

	if err := m.engine.Restore(data); err != nil {
		return []string{fmt.Sprintf("Load failed: %v", err)}
	}

	output := []string{fmt.Sprintf("Game loaded from %s (move %d).",
		name, m.engine.World.Player.Moves)}
	out := m.engine.Execute("look")
	output = append(output, out.Lines...)
	return output
}

func (m *Model) cmdHelp() []string {
	return []string{
		"System:",
		"  /save [name]  — Save game (default: quicksave)",
		"  /load [name]  — Load game (default: quicksave)",
		"  /seed         — Show the RNG seed and position",
		"  /quit         — Exit game",
		"  /help         — Show this help",
		"  /state        — Debug: dump current state",
		"  /trace        — Toggle execution trace output",
		"",
		"Game commands:",
		"  look (l)              — Describe the room",
		"  examine <thing> (x)   — Look closely at something",
		"  go/walk <dir>         — Move (or just type n/s/e/w/u/d)",
		"  take/get <item>       — Pick something up",
		"  drop <item>           — Put something down",
		"  put <item> in <thing> — Stow an item in a container",
		"  open / close          — Open or close something",
		"  turn on/off <thing>   — Work a light source",
		"  attack <foe>          — Pick a fight",
		"  throw <item> at <foe> — Fight from a distance",
		"  give <item> to <foe>  — Bribe someone",
		"  inventory (i)         — Check what you're carrying",
		"  score                 — Show score and moves",
		"  wait (z)              — Let time pass",
		"  again (g)             — Repeat your last command",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
	}
}

func (m *Model) cmdState() []string {
	w := m.engine.World
	output := []string{
		fmt.Sprintf("Moves: %d", w.Player.Moves),
		fmt.Sprintf("Score: %d", w.Player.Score),
		fmt.Sprintf("Location: %s", w.Player.Location),
		fmt.Sprintf("Inventory: %v", w.Player.Inventory),
	}
	if len(w.Flags) > 0 {
		output = append(output, fmt.Sprintf("Flags: %v", w.Flags))
	}
	return output
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
