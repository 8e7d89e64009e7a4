package console

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// maxHistory bounds the number of results kept on screen.
const maxHistory = 200

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9B9B9B"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(1, 0)
)

type entry struct {
	line   string
	result Result
}

// Model is the bubbletea model of the console.
type Model struct {
	input   textinput.Model
	history []entry
	color   bool
	logger  *zap.Logger
	quit    bool
}

// NewModel creates a console model.
func NewModel(prompt string, color bool, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "node (x:Person {a: int})"
	ti.Focus()

	return Model{input: ti, color: color, logger: logger}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true

			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	res := Eval(line)
	m.logger.Debug("console line",
		zap.String("command", res.Command),
		zap.String("input", res.Input),
		zap.Bool("ok", res.OK()),
	)

	if res.Skip {
		return m, nil
	}

	if res.Quit {
		m.quit = true

		return m, tea.Quit
	}

	m.history = append(m.history, entry{line: line, result: res})
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}

	return m, nil
}

// History returns the results shown so far, oldest first.
func (m Model) History() []Result {
	out := make([]Result, len(m.history))
	for i, e := range m.history {
		out[i] = e.result
	}

	return out
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.style(titleStyle, "FPPC Parser Console"))
	b.WriteString("\n\n")

	for _, e := range m.history {
		b.WriteString(m.style(inputStyle, m.input.Prompt+e.line))
		b.WriteString("\n")

		if e.result.Err != nil {
			b.WriteString(m.style(errorStyle, e.result.Text()))
		} else {
			b.WriteString(m.style(successStyle, e.result.Text()))
		}

		b.WriteString("\n")
	}

	if !m.quit {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.style(helpStyle, "commands: "+strings.Join(CommandNames(), ", ")+" · quit · esc"))
	}

	return b.String()
}

func (m Model) style(s lipgloss.Style, text string) string {
	if !m.color {
		return text
	}

	return s.Render(text)
}

// RunTUI runs the console as a full-screen terminal program.
func RunTUI(ctx context.Context, in io.Reader, out io.Writer, prompt string, color bool, logger *zap.Logger) error {
	p := tea.NewProgram(
		NewModel(prompt, color, logger),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	_, err := p.Run()

	return err
}
