package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/forward"
	"github.com/wippyai/g2-bridge/handle"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectFunc modelState = iota
	stateInputArgs
	stateShowResult
)

// binder is implemented by backends that bind only some entry points.
type binder interface {
	Has(abi.Symbol) bool
}

type interactiveModel struct {
	err      error
	fw       *forward.Forwarder
	name     string
	result   string
	all      []abi.Spec
	funcs    []abi.Spec
	inputs   []textinput.Model
	filter   textinput.Model
	open     *openHandle
	selected int
	focusIdx int
	height   int
	state    modelState
	rows     int
}

// openHandle is a handle opened from the TUI and not yet closed.
type openHandle struct {
	token  handle.Token
	opener abi.Symbol
	life   lifecycle
}

type callResultMsg struct {
	err    error
	out    forward.Outcome
	sym    abi.Symbol
	result string
}

func newInteractiveModel(sess *session) *interactiveModel {
	specs := abi.Specs()
	if b, ok := sess.lib.(binder); ok {
		var bound []abi.Spec
		for _, s := range specs {
			if b.Has(s.Symbol) {
				bound = append(bound, s)
			}
		}
		specs = bound
	}

	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter"
	filter.Width = 40

	return &interactiveModel{
		fw:     sess.forwarder,
		name:   sess.name,
		all:    specs,
		funcs:  specs,
		filter: filter,
		height: 24,
		state:  stateSelectFunc,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.filter.Focused() {
			return m.updateFilter(msg)
		}
		if m.state == stateInputArgs {
			switch msg.String() {
			case "ctrl+c", "enter", "tab", "esc":
			default:
				return m.updateInputs(msg)
			}
		}
		switch msg.String() {
		case "ctrl+c", "q":
			if m.open != nil && m.open.life.closeSym != "" {
				return m, tea.Sequence(m.closeHandle, tea.Quit)
			}
			return m, tea.Quit

		case "/":
			if m.state == stateSelectFunc {
				m.filter.Focus()
				return m, textinput.Blink
			}

		case "up", "k":
			if m.state == stateSelectFunc && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectFunc && m.selected < len(m.funcs)-1 {
				m.selected++
			}

		case "f":
			if m.state == stateShowResult && m.open != nil && m.open.life.fetchSym != "" {
				return m, m.fetchRow
			}

		case "c":
			if m.state == stateShowResult && m.open != nil && m.open.life.closeSym != "" {
				return m, m.closeHandle
			}

		case "enter":
			switch m.state {
			case stateSelectFunc:
				if len(m.funcs) == 0 {
					return m, nil
				}
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callFunction
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callFunction

			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectFunc
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}
		}

	case callResultMsg:
		m.applyResult(msg)
		return m, nil
	}

	if m.state == stateInputArgs {
		return m.updateInputs(msg)
	}

	return m, nil
}

func (m *interactiveModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *interactiveModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		m.filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *interactiveModel) applyFilter() {
	q := strings.ToLower(m.filter.Value())
	m.funcs = m.funcs[:0:0]
	for _, s := range m.all {
		if q == "" || strings.Contains(strings.ToLower(string(s.Symbol)), q) {
			m.funcs = append(m.funcs, s)
		}
	}
	if m.selected >= len(m.funcs) {
		m.selected = max(len(m.funcs)-1, 0)
	}
}

func (m *interactiveModel) applyResult(msg callResultMsg) {
	m.err = msg.err
	m.result = msg.result
	m.state = stateShowResult
	if msg.err != nil {
		return
	}

	switch msg.out.Template {
	case abi.TemplateOpen, abi.TemplateOpenUnchecked:
		if life, ok := lifecycles[msg.sym]; ok && !msg.out.Handle.IsZero() {
			m.open = &openHandle{token: msg.out.Handle, opener: msg.sym, life: life}
			m.rows = 0
		}
	case abi.TemplateFetch:
		if msg.out.Text != "" {
			m.rows++
		}
	case abi.TemplateClose:
		if m.open != nil && msg.sym == m.open.life.closeSym {
			m.open = nil
		}
	}
}

func (m *interactiveModel) prepareInputs() {
	spec := m.funcs[m.selected]
	m.inputs = make([]textinput.Model, len(spec.Params))
	for i, p := range spec.Params {
		ti := textinput.New()
		ti.Placeholder = p.String()
		ti.Prompt = paramLabel(spec, i) + ": "
		ti.Width = 40
		if p == abi.ParamHandle && m.open != nil {
			ti.SetValue(m.open.token.String())
		}
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) callFunction() tea.Msg {
	spec := m.funcs[m.selected]
	raw := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		raw[i] = input.Value()
	}
	args, err := forward.ParseArgs(spec, raw)
	if err != nil {
		return callResultMsg{err: err, sym: spec.Symbol}
	}
	return m.dispatch(spec.Symbol, args...)
}

func (m *interactiveModel) fetchRow() tea.Msg {
	return m.dispatch(m.open.life.fetchSym, m.open.token)
}

func (m *interactiveModel) closeHandle() tea.Msg {
	return m.dispatch(m.open.life.closeSym, m.open.token)
}

func (m *interactiveModel) dispatch(sym abi.Symbol, args ...any) callResultMsg {
	out, err := m.fw.Dispatch(context.Background(), sym, args...)
	if err != nil {
		return callResultMsg{err: err, sym: sym}
	}
	return callResultMsg{out: out, sym: sym, result: formatOutcome(out)}
}

// visible returns the window of the function list that fits the terminal.
func (m *interactiveModel) visible() (from, to int) {
	rows := max(m.height-8, 5)
	from = max(m.selected-rows/2, 0)
	to = min(from+rows, len(m.funcs))
	from = max(to-rows, 0)
	return from, to
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("G2 Bridge"))
	b.WriteString(" ")
	b.WriteString(m.name)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectFunc:
		if m.filter.Focused() || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		b.WriteString(fmt.Sprintf("Select an entry point (%d):\n\n", len(m.funcs)))
		from, to := m.visible()
		for i := from; i < to; i++ {
			line := m.formatFunc(m.funcs[i])
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.open != nil {
			b.WriteString(typeStyle.Render(fmt.Sprintf("open handle %s from %s", m.open.token, m.open.opener)))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("↑/↓ select • / filter • enter call • q quit"))

	case stateInputArgs:
		spec := m.funcs[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s\n\n", funcStyle.Render(string(spec.Symbol))))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(spec.Params[i].String()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter call • esc back"))

	case stateShowResult:
		b.WriteString("Result:\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		help := "enter continue • q quit"
		if m.open != nil {
			b.WriteString(typeStyle.Render(fmt.Sprintf("handle %s: %d rows fetched", m.open.token, m.rows)))
			b.WriteString("\n")
			if m.open.life.fetchSym != "" {
				help = "f fetch next • " + help
			}
			help = "c close • " + help
		}
		b.WriteString(helpStyle.Render(help))
	}

	return b.String()
}

func (m *interactiveModel) formatFunc(s abi.Spec) string {
	var params []string
	for i, p := range s.Params {
		params = append(params, paramLabel(s, i)+": "+typeStyle.Render(p.String()))
	}
	return funcStyle.Render(string(s.Symbol)) + "(" + strings.Join(params, ", ") + ") " + typeStyle.Render(s.Template.String())
}

func paramLabel(s abi.Spec, i int) string {
	if i < len(s.Names) {
		return s.Names[i]
	}
	return fmt.Sprintf("arg%d", i)
}

func runInteractive(sess *session) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	p := tea.NewProgram(newInteractiveModel(sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
