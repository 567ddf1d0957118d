package bench

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/r2unit/catena/pkg/instances"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			MarginBottom(1)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#585858")).
			Padding(1, 2).
			MarginTop(1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8A8A8"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D75F"}).
			Bold(true)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#585858"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}).
			Bold(true)
)

type resultMsg Result

type doneMsg struct{}

// model drives the interactive benchmark view: one instance bundle runs
// at a time, its result delivered back as a bubbletea message as each Hash
// call finishes.
type model struct {
	pwd, salt, ad []byte
	m             int
	names         []string
	next          int
	results       []Result
	finished      bool
}

// NewModel builds a bench program over the given Hash inputs.
func NewModel(pwd, salt, ad []byte, m int) *model {
	return &model{
		pwd: pwd, salt: salt, ad: ad, m: m,
		names: instances.Names(),
	}
}

func (m *model) Init() tea.Cmd {
	return m.runNext()
}

func (m *model) runNext() tea.Cmd {
	if m.next >= len(m.names) {
		return func() tea.Msg { return doneMsg{} }
	}
	name := m.names[m.next]
	m.next++

	return func() tea.Msg {
		inst, ok := instances.Named(name)
		if !ok {
			return resultMsg{Name: name, Err: fmt.Errorf("bench: %s has no resolved bundle", name)}
		}
		start := time.Now()
		_, err := inst.Hash(m.pwd, m.salt, m.ad, m.m)
		return resultMsg{Name: name, Duration: time.Since(start), Err: err}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case resultMsg:
		m.results = append(m.results, Result(msg))
		return m, m.runNext()
	case doneMsg:
		m.finished = true
		return m, nil
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Catena instance benchmark"))
	b.WriteString("\n")

	done := make(map[string]Result, len(m.results))
	for _, r := range m.results {
		done[r.Name] = r
	}

	for _, name := range m.names {
		if r, ok := done[name]; ok {
			if r.Err != nil {
				b.WriteString(fmt.Sprintf("%s  %s\n", nameStyle.Render(name), errorStyle.Render(r.Err.Error())))
			} else {
				b.WriteString(fmt.Sprintf("%s  %s\n", nameStyle.Render(name), doneStyle.Render(r.Duration.String())))
			}
			continue
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", nameStyle.Render(name), pendingStyle.Render("...")))
	}

	if m.finished {
		b.WriteString("\n" + doneStyle.Render("done — press q to exit"))
	}

	return boxStyle.Render(b.String())
}

// RunInteractive starts the bubbletea progress program and blocks until
// the user quits.
func RunInteractive(pwd, salt, ad []byte, m int) error {
	p := tea.NewProgram(NewModel(pwd, salt, ad, m))
	_, err := p.Run()
	return err
}
