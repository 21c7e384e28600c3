package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/stubgen/binding"
	"github.com/wippyai/stubgen/config"
	"github.com/wippyai/stubgen/emit"
	"github.com/wippyai/stubgen/shape"
	"github.com/wippyai/stubgen/stub"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse generated stubs interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("browse needs a terminal; use generate for scripted output")
			}
			m, err := config.Load(manifestPath)
			if err != nil {
				return err
			}
			return runBrowse(m)
		},
	}
}

type browseState int

const (
	stateList browseState = iota
	stateView
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	surfaceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

type browseModel struct {
	manifest *config.Manifest
	builder  *stub.Builder
	resolver *binding.Resolver

	state    browseState
	cursor   int
	selected string
	viewport viewport.Model
	ready    bool
	err      error
}

func initialBrowseModel(m *config.Manifest) browseModel {
	return browseModel{
		manifest: m,
		builder:  stub.NewBuilder(),
		resolver: binding.NewResolver(),
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateView {
				m.state = stateList
				m.err = nil
				return m, nil
			}
			return m, tea.Quit

		case "esc":
			m.state = stateList
			m.err = nil
			return m, nil

		case "up", "k":
			if m.state == stateList && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.state == stateList && m.cursor < len(m.manifest.Functions)-1 {
				m.cursor++
			}

		case "enter":
			if m.state != stateList || len(m.manifest.Functions) == 0 {
				break
			}
			fn := m.manifest.Functions[m.cursor]
			body, err := m.renderFunction(fn)
			m.selected = fn.Name
			m.err = err
			if m.ready {
				m.viewport.SetContent(body)
				m.viewport.GotoTop()
			}
			m.state = stateView
			return m, nil
		}
	}

	if m.state == stateView && m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// renderFunction produces the listing shown for one manifest entry:
// the staged stub for the stub surface, the composed marshaler
// expressions for the binding surface.
func (m browseModel) renderFunction(fn config.Function) (string, error) {
	if fn.Surface == config.SurfaceBinding {
		var b strings.Builder
		b.WriteString("binding ")
		b.WriteString(fn.Name)
		b.WriteByte('\n')
		for _, p := range fn.Params {
			s, err := shape.Parse(p.Type)
			if err != nil {
				return "", err
			}
			expr, err := m.resolver.Bind(s)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "  %s = %s\n", p.Name, expr)
		}
		if fn.Return != "" {
			s, err := shape.Parse(fn.Return)
			if err != nil {
				return "", err
			}
			expr, err := m.resolver.Bind(s)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "  return = %s\n", expr)
		}
		return b.String(), nil
	}

	converted, err := fn.ToStub()
	if err != nil {
		return "", err
	}
	program, err := m.builder.Build(converted)
	if err != nil {
		return "", err
	}
	return emit.Render(program), nil
}

func (m browseModel) View() string {
	switch m.state {
	case stateView:
		var b strings.Builder
		b.WriteString(titleStyle.Render("Stub: " + m.selected))
		b.WriteByte('\n')
		if m.err != nil {
			b.WriteString(errorStyle.Render(m.err.Error()))
			b.WriteByte('\n')
		} else if m.ready {
			b.WriteString(m.viewport.View())
			b.WriteByte('\n')
		}
		b.WriteString(helpStyle.Render("↑/↓: scroll • esc: back • q: back"))
		return b.String()

	default:
		var b strings.Builder
		b.WriteString(titleStyle.Render("Interop Manifest"))
		b.WriteByte('\n')

		if len(m.manifest.Functions) == 0 {
			b.WriteString("No functions declared.\n")
		}
		for i, fn := range m.manifest.Functions {
			cursor := "  "
			style := funcStyle
			if i == m.cursor {
				cursor = "> "
				style = selectedStyle
			}
			surface := fn.Surface
			if surface == "" {
				surface = config.SurfaceStub
			}
			b.WriteString(cursor)
			b.WriteString(style.Render(fn.Name))
			b.WriteString(surfaceStyle.Render("  [" + surface + "]"))
			b.WriteByte('\n')
		}

		b.WriteString(helpStyle.Render("↑/↓: navigate • enter: show stub • q: quit"))
		return b.String()
	}
}

func runBrowse(m *config.Manifest) error {
	p := tea.NewProgram(initialBrowseModel(m), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
