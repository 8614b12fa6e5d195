package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emberlang/ember-runtime/heap"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#D95F18")).
			Padding(0, 1)

	handleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// inspectorModel drives a live view of the process-wide tracker with a
// small command line for exercising it.
type inspectorModel struct {
	tracker *heap.Tracker
	input   textinput.Model
	status  string
	failed  bool
}

func newInspectorModel() *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "alloc N | dup TEXT | release H | sweep"
	ti.Prompt = "> "
	ti.Width = 48
	ti.Focus()

	return &inspectorModel{
		tracker: heap.Default(),
		input:   ti,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			m.runCommand(strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectorModel) runCommand(line string) {
	m.failed = false
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "alloc":
		if len(fields) != 2 {
			m.fail("usage: alloc N")
			return
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			m.fail("alloc: %v", err)
			return
		}
		h, _ := m.tracker.Alloc(n)
		if h == 0 {
			m.fail("alloc of %d bytes refused", n)
			return
		}
		m.status = fmt.Sprintf("allocated %d bytes as handle %d", n, h)

	case "dup":
		text := strings.TrimPrefix(line, "dup ")
		if text == line {
			m.fail("usage: dup TEXT")
			return
		}
		h, _ := m.tracker.Duplicate(text)
		m.status = fmt.Sprintf("duplicated %d bytes as handle %d", len(text), h)

	case "release":
		if len(fields) != 2 {
			m.fail("usage: release H")
			return
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			m.fail("release: %v", err)
			return
		}
		if m.tracker.Release(heap.Handle(n)) {
			m.status = fmt.Sprintf("released handle %d", n)
		} else {
			m.fail("handle %d is not tracked (ignored)", n)
		}

	case "sweep":
		m.status = fmt.Sprintf("sweep freed %d block(s)", m.tracker.Sweep())

	default:
		m.fail("unknown command %q", fields[0])
	}
}

func (m *inspectorModel) fail(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.failed = true
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Ember Allocation Inspector"))
	b.WriteString(fmt.Sprintf("  %d live\n\n", m.tracker.Len()))

	rows := 0
	m.tracker.Each(func(h heap.Handle, data []byte) bool {
		preview := string(data)
		if len(preview) > 24 {
			preview = preview[:24] + "…"
		}
		preview = strings.Map(func(r rune) rune {
			if r < ' ' {
				return '.'
			}
			return r
		}, preview)
		b.WriteString(fmt.Sprintf("  %s  %s  %q\n",
			handleStyle.Render(fmt.Sprintf("#%-4d", h)),
			sizeStyle.Render(fmt.Sprintf("%5dB", len(data))),
			preview))
		rows++
		return rows < 20
	})
	if rows == 0 {
		b.WriteString(helpStyle.Render("  (no live allocations)") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.status != "" {
		if m.failed {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(resultStyle.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter run • esc quit"))

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInspectorModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
