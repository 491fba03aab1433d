// Package tui provides a Bubble Tea inspector for animation group
// resolution.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rtomasi/animbind/internal/config"
	"github.com/rtomasi/animbind/internal/dom"
	"github.com/rtomasi/animbind/internal/http"
	"github.com/rtomasi/animbind/internal/loader"
	"github.com/rtomasi/animbind/internal/model"
	"github.com/rtomasi/animbind/internal/resolve"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	resolvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	unresolvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	groupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFE66D"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateLoading
	StateInspect
	StateError
)

// Options configures the inspector.
type Options struct {
	// DocumentPath is the local HTML file timelines resolve against.
	DocumentPath string
}

// Model is the Bubble Tea model for the inspector.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	opts      Options

	groups *model.Groups
	cursor int
	err    error

	width  int
	height int
}

// NewModel creates a new inspector model.
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "animations.yaml or https://example.com/animations.json"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		opts:      opts,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// BuildDoneMsg is sent when the configuration has been loaded and
// resolved against the document.
type BuildDoneMsg struct {
	Groups *model.Groups
	Err    error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateLoading
				return m, tea.Batch(m.buildGroups(), m.spinner.Tick)
			}

		case "up", "k":
			if m.state == StateInspect && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.state == StateInspect && m.groups != nil && m.cursor < m.groups.Len()-1 {
				m.cursor++
			}

		case "q":
			if m.state == StateInspect || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateInspect || m.state == StateError {
				m.state = StateInput
				m.groups = nil
				m.cursor = 0
				m.err = nil
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case BuildDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.groups = msg.Groups
			m.cursor = 0
			m.state = StateInspect
		}
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// buildGroups loads the configuration named in the input and resolves
// it against the document.
func (m *Model) buildGroups() tea.Cmd {
	source := m.textInput.Value()
	docPath := m.opts.DocumentPath

	return func() tea.Msg {
		page, err := os.ReadFile(docPath)
		if err != nil {
			return BuildDoneMsg{Err: fmt.Errorf("read document: %w", err)}
		}
		doc, err := dom.ParseString(string(page))
		if err != nil {
			return BuildDoneMsg{Err: fmt.Errorf("parse document: %w", err)}
		}

		builder := resolve.NewBuilder(doc)

		if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
			l := loader.New(http.NewClient(), builder)
			groups, err := l.Load(context.Background(), source, nil)
			return BuildDoneMsg{Groups: groups, Err: err}
		}

		specs, err := config.DecodeFile(source)
		if err != nil {
			return BuildDoneMsg{Err: err}
		}
		groups, err := builder.Build(specs, nil)
		return BuildDoneMsg{Groups: groups, Err: err}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("animbind inspector"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("document: %s", m.opts.DocumentPath)))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateInspect:
		b.WriteString(m.viewInspect())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter configuration file or URL:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewLoading() string {
	return m.spinner.View() + " " + subtitleStyle.Render("Resolving configuration...")
}

func (m Model) viewInspect() string {
	var b strings.Builder

	if m.groups == nil || m.groups.Len() == 0 {
		b.WriteString(dimStyle.Render("No groups in configuration."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d group(s):", m.groups.Len())))
	b.WriteString("\n\n")

	for i, g := range m.groups.All() {
		line := fmt.Sprintf("%s  ×%g  %d/%d bound",
			g.Name, g.TimeScale, len(g.Resolved()), g.Len())
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(groupStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if g := m.groups.At(m.cursor); g != nil {
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(m.renderGroup(g)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderGroup(g *model.Group) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("root: <%s>", rootTag(g)))
	b.WriteString("\n")

	for _, tl := range g.Timelines() {
		if tl.Resolved() {
			b.WriteString(resolvedStyle.Render(
				fmt.Sprintf("✓ %s -> <%s>", tl.DisplayName(), tl.Node.Data)))
		} else {
			reason := "not found"
			switch {
			case tl.Ambiguous():
				reason = "both id and path"
			case tl.ID == "" && tl.Path == "":
				reason = "no reference"
			}
			b.WriteString(unresolvedStyle.Render(
				fmt.Sprintf("✗ %s (%s)", tl.DisplayName(), reason)))
		}
		b.WriteString("\n")
	}

	if g.Len() == 0 {
		b.WriteString(dimStyle.Render("(no timelines)"))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func rootTag(g *model.Group) string {
	if g.Root == nil {
		return "none"
	}
	return g.Root.Data
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(unresolvedStyle.Render("Error:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateInput:
		return "enter: resolve • esc: quit"
	case StateLoading:
		return ""
	case StateInspect:
		return "↑/↓: select group • r: new configuration • q: quit"
	case StateError:
		return "r: retry • q: quit"
	}
	return ""
}

// Run starts the inspector.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
