package main

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/corvidlabs/slither/slither"
	"gopkg.in/urfave/cli.v1"
)

var replCommand = cli.Command{
	Name:   "repl",
	Usage:  "start an interactive slither session",
	Action: replAction,
}

func replAction(ctx *cli.Context) error {
	p := tea.NewProgram(newREPLModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

// replModel is a bubbletea model for an interactive slither session. It
// keeps one Interpreter and one Scope alive for the whole session, so a
// binding made on one line is visible to every line after it, the same
// flat, non-nested Scope the evaluator itself uses, just kept around
// across calls instead of discarded when a Run completes.
//
// A line ending in ':' opens a block: slither's grammar has no way to
// terminate an if/class/def body except a Dedent, so the REPL collects
// further lines (the user supplies the indentation) until a blank line,
// then compiles and evaluates the whole block as a single statement.
type replModel struct {
	textInput   textinput.Model
	interp      *slither.Interpreter
	scope       *slither.Scope
	output      *bytes.Buffer
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	blockLines  []string
	inBlock     bool
	width       int
	height      int
	showHelp    bool
	showVars    bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	CtrlC   key.Binding
	CtrlD   key.Binding
	CtrlL   key.Binding
	Tab     key.Binding
	CtrlV   key.Binding
	CtrlH   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous command"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next command"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "execute"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "autocomplete"),
	),
	CtrlV: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "toggle vars"),
	),
	CtrlH: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "type a statement..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "slither> "

	var output bytes.Buffer
	interp := slither.NewInterpreter(slither.Config{Output: &output})

	return replModel{
		textInput:  ti,
		interp:     interp,
		scope:      slither.NewScope(),
		output:     &output,
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlV):
			m.showVars = !m.showVars
			return m, nil

		case key.Matches(msg, keys.CtrlH):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Tab):
			m = m.handleAutocomplete()
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := m.textInput.Value()

			if !m.inBlock && strings.HasPrefix(strings.TrimSpace(input), ":") {
				var cmd tea.Cmd
				m, cmd = m.handleCommand(strings.TrimSpace(input))
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, cmd
			}

			m = m.handleLine(input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// handleLine feeds one line of raw input into the block-continuation
// state machine described on replModel, evaluating a completed
// statement (single line or accumulated block) against the session's
// persistent scope.
func (m replModel) handleLine(input string) replModel {
	if m.inBlock {
		if strings.TrimSpace(input) == "" {
			source := strings.Join(m.blockLines, "\n") + "\n"
			m.blockLines = nil
			m.inBlock = false
			return m.evaluateAndRecord(source, strings.Join(strings.Split(source, "\n"), " "))
		}
		m.blockLines = append(m.blockLines, input)
		return m
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return m
	}
	if strings.HasSuffix(trimmed, ":") {
		m.blockLines = []string{input}
		m.inBlock = true
		return m
	}
	return m.evaluateAndRecord(input+"\n", input)
}

func (m replModel) evaluateAndRecord(source, label string) replModel {
	output, isErr := m.evaluate(source)
	m.history = append(m.history, historyEntry{input: label, output: output, isErr: isErr})
	m.cmdHistory = append(m.cmdHistory, label)
	return m
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	parts := strings.Fields(input)
	switch parts[0] {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":vars", ":v":
		m.showVars = !m.showVars
	case ":reset", ":r":
		m.scope = slither.NewScope()
		m.history = append(m.history, historyEntry{input: input, output: "scope reset"})
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{input: input, output: fmt.Sprintf("unknown command: %s", parts[0]), isErr: true})
	}
	return m, nil
}

func (m replModel) handleAutocomplete() replModel {
	input := m.textInput.Value()
	if input == "" {
		return m
	}
	words := strings.Fields(input)
	if len(words) == 0 {
		return m
	}
	lastWord := words[len(words)-1]

	var completions []string
	keywords := []string{"class", "def", "return", "if", "else", "and", "or", "not", "None", "True", "False", "print", "str"}
	for _, k := range keywords {
		if strings.HasPrefix(k, lastWord) {
			completions = append(completions, k)
		}
	}
	for _, name := range m.scope.Names() {
		if strings.HasPrefix(name, lastWord) {
			completions = append(completions, name)
		}
	}
	sort.Strings(completions)

	switch len(completions) {
	case 0:
		// nothing to complete
	case 1:
		prefix := strings.TrimSuffix(input, lastWord)
		m.textInput.SetValue(prefix + completions[0])
		m.textInput.CursorEnd()
	default:
		m.history = append(m.history, historyEntry{output: "completions: " + strings.Join(completions, ", ")})
	}
	return m
}

// evaluate runs source against the session scope, draining whatever
// print output it produced into the same history line as its result
// value so the transcript reads like a single REPL turn. A statement
// that only prints (the common case: print, assignment-free
// expressions used for effect) shows just that output; None is only
// shown on its own when nothing was printed either, mirroring how a
// Python-style REPL distinguishes "no output" from "explicit None".
func (m replModel) evaluate(source string) (string, bool) {
	m.output.Reset()
	result, err := m.interp.EvalStatement(source, m.scope)
	printed := strings.TrimSuffix(m.output.String(), "\n")
	if err != nil {
		if printed != "" {
			return printed + "\n" + err.Error(), true
		}
		return err.Error(), true
	}
	if result.IsNone() {
		if printed != "" {
			return printed, false
		}
		return "None", false
	}
	rendered, err := m.interp.Display(result)
	if err != nil {
		return err.Error(), true
	}
	if printed != "" {
		return printed + "\n" + rendered, false
	}
	return rendered, false
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}
	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("slither REPL")
	ver := mutedStyle.Render("v" + version)
	b.WriteString(header + " " + ver + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", minInt(m.width-2, 60))) + "\n\n")

	reservedLines := 8
	if m.showHelp {
		reservedLines += 10
	}
	if m.showVars {
		reservedLines += len(m.scope.Names()) + 3
	}
	availableHeight := m.height - reservedLines

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		if entry.input != "" {
			b.WriteString(mutedStyle.Render("  › ") + entry.input + "\n")
		}
		if entry.isErr {
			b.WriteString("  " + errorStyle.Render("✗ "+entry.output) + "\n")
		} else {
			b.WriteString("  " + resultStyle.Render("→ "+entry.output) + "\n")
		}
		b.WriteString("\n")
	}

	if m.showVars {
		b.WriteString(renderVarsPanel(m.scope, m.width))
		b.WriteString("\n")
	}
	if m.showHelp {
		b.WriteString(renderHelpPanel())
		b.WriteString("\n")
	}

	prompt := "slither> "
	if m.inBlock {
		prompt = "...      "
	}
	m.textInput.Prompt = prompt
	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+v") + helpDescStyle.Render(" vars  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func renderVarsPanel(scope *slither.Scope, width int) string {
	names := scope.Names()
	if len(names) == 0 {
		return borderStyle.Render(mutedStyle.Render("No variables defined"))
	}
	sort.Strings(names)

	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Variables")}
	varNameStyle := lipgloss.NewStyle().Foreground(highlightColor)
	for _, name := range names {
		v, _ := scope.Get(name)
		lines = append(lines, fmt.Sprintf("  %s = %s", varNameStyle.Render(name), v.Kind()))
	}
	return borderStyle.Render(strings.Join(lines, "\n"))
}

func renderHelpPanel() string {
	help := []struct{ key, desc string }{
		{"↑/↓", "Navigate command history"},
		{"Tab", "Autocomplete"},
		{"Enter", "Execute / continue a block"},
		{":help", "Toggle this help"},
		{":vars", "Toggle variables panel"},
		{":clear", "Clear history"},
		{":reset", "Reset scope"},
		{":quit", "Exit REPL"},
	}
	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help")}
	for _, h := range help {
		lines = append(lines, fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-8s", h.key)),
			helpDescStyle.Render(h.desc)))
	}
	return borderStyle.Render(strings.Join(lines, "\n"))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
