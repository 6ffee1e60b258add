package ui

import (
	"errors"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/midbel/trigint/config"
	"github.com/midbel/trigint/integral"
)

const (
	title       = "Indefinite Integral Calculator"
	setPrefix   = ":set "
	placeholder = "9sin(x) - cos(x) + 2sec^2(x)"
)

// Model is the interactive calculator: an input field, the integration rules
// applied to the last expression and its result.
type Model struct {
	input textinput.Model
	help  help.Model
	keys  keyMap
	cfg   config.Config

	result  string
	explain string
	status  string
	err     error
}

func New(cfg config.Config) Model {
	in := textinput.New()
	in.Prompt = "∫ "
	in.Placeholder = placeholder
	in.Focus()

	return Model{
		input: in,
		help:  help.New(),
		keys:  defaultKeyMap(),
		cfg:   cfg,
	}
}

func Run(cfg config.Config) error {
	_, err := tea.NewProgram(New(cfg)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.SetWidth(msg.Width)
		m.input.SetWidth(max(msg.Width-4, 10))
		return m, nil
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Integrate):
			return m.submit(), nil
		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			return m.clear(), nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m Model) Config() config.Config {
	return m.cfg
}

func (m Model) Result() string {
	return m.result
}

func (m Model) Explanation() string {
	return m.explain
}

func (m Model) Err() error {
	return m.err
}

func (m Model) submit() Model {
	str := strings.TrimSpace(m.input.Value())
	m = m.clear()
	if directive, ok := strings.CutPrefix(str, setPrefix); ok {
		if err := m.cfg.Set(directive); err != nil {
			m.err = err
			return m
		}
		m.status = strings.TrimSpace(directive)
		m.input.Reset()
		return m
	}
	res, err := integral.Calculate(str)
	if err != nil {
		m.err = err
		return m
	}
	m.result = res.Format(m.cfg.Style)
	m.explain = res.Explain(m.cfg.Style)
	return m
}

func (m Model) clear() Model {
	m.result = ""
	m.explain = ""
	m.status = ""
	m.err = nil
	return m
}

func (m Model) render() string {
	var (
		explain = m.explain
		result  string
	)
	if explain == "" {
		explain = placeholderStyle.Render("the integration rule will appear here")
	}
	switch {
	case m.err != nil:
		result = errorStyle.Render(errorMessage(m.err))
	case m.status != "":
		result = labelStyle.Render("set " + m.status)
	case m.result != "":
		result = resultStyle.Render("Result:  " + m.result)
	default:
		result = labelStyle.Render("Result will appear here")
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(title),
		"",
		m.input.View(),
		"",
		labelStyle.Render("Integration rule"),
		ruleStyle.Render(explain),
		"",
		result,
		"",
		m.help.View(m.keys),
	)
}

func errorMessage(err error) string {
	if errors.Is(err, integral.ErrEmpty) {
		return "Please enter an expression such as " + placeholder
	}
	return "Invalid expression: " + err.Error()
}
