package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"sortery/internal/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseSorting Phase = iota
	PhaseDone
	PhaseError
)

// Messages for the TUI
type (
	ProgressMsg struct {
		Current int
		Total   int
		File    string
	}
	DoneMsg struct {
		Report domain.SortReport
	}
	ErrorMsg struct {
		Err error
	}
	tickMsg time.Time
)

// Config for the TUI
type Config struct {
	SourceDir string
	TargetDir string
	DryRun    bool
	Verbose   bool
}

// Model is the main TUI model. The sorter runs outside the model and feeds
// it ProgressMsg/DoneMsg/ErrorMsg through the program.
type Model struct {
	config   Config
	Phase    Phase
	Report   domain.SortReport
	spinner  spinner.Model
	progress progress.Model
	current  int
	total    int
	file     string
	Err      error
	Quitting bool
	width    int
	height   int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		Phase:    PhaseSorting,
		spinner:  s,
		progress: p,
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case ProgressMsg:
		m.current = msg.Current
		m.total = msg.Total
		m.file = msg.File
		return m, nil

	case DoneMsg:
		m.Phase = PhaseDone
		m.Report = msg.Report
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseSorting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tickMsg:
		if m.Phase == PhaseSorting {
			var cmds []tea.Cmd
			if m.total > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.current)/float64(m.total)))
			}
			cmds = append(cmds, tickCmd(), m.spinner.Tick)
			return m, tea.Batch(cmds...)
		}
	}

	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseSorting:
		b.WriteString(m.renderSorting())
	case PhaseDone:
		b.WriteString(m.renderReport())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("🗂  Sortery")
	subtitle := subtitleStyle.Render("Sort files into date-based folders")

	dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dimStyle.Render(fmt.Sprintf("%s Source: %s", iconFolder, shortenPath(m.config.SourceDir))),
		dimStyle.Render(fmt.Sprintf("%s Target: %s", iconFolder, shortenPath(m.config.TargetDir))),
	)
}

func (m Model) renderSorting() string {
	verb := "Sorting"
	if m.config.DryRun {
		verb = "Planning"
	}

	if m.total > 0 {
		percent := float64(m.current) / float64(m.total)
		progressBar := m.progress.ViewAs(percent)

		countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
		percentStyle := lipgloss.NewStyle().Foreground(dimTextColor)

		var b strings.Builder
		b.WriteString(fmt.Sprintf("%s %s files...\n\n  %s\n  %s %s",
			m.spinner.View(),
			verb,
			progressBar,
			countStyle.Render(fmt.Sprintf("%d/%d", m.current, m.total)),
			percentStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
		))
		if m.file != "" {
			b.WriteString(fmt.Sprintf("\n\n  %s %s", iconArrow, fileNameStyle.Render(m.file)))
		}
		return b.String()
	}
	return fmt.Sprintf("%s %s files...", m.spinner.View(), verb)
}

func (m Model) renderReport() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Summary"))
	b.WriteString("\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	sorted := m.Report.Moved
	label := "Sorted:"
	if m.config.DryRun {
		sorted = m.Report.Planned
		label = "Would sort:"
	}

	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render(label), statValueStyle.Render(fmt.Sprintf("%d files", sorted))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Eligible:"), statValueStyle.Render(fmt.Sprintf("%d", m.Report.Eligible))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Skipped:"), dimStyle.Render(fmt.Sprintf("%s %d", iconSkipped, m.Report.Skipped))))

	if m.Report.Failed > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Failed:"), errorStyle.Render(fmt.Sprintf("%s %d", iconError, m.Report.Failed))))
		b.WriteString("\n")
		for i, failure := range m.Report.Failures {
			if i >= 4 {
				b.WriteString(fmt.Sprintf("  ... and %d more\n", len(m.Report.Failures)-4))
				break
			}
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				errorStyle.Render(iconError),
				fileNameStyle.Render(shortenPath(failure.Path)),
				dimStyle.Render(string(failure.Kind)),
			))
		}
	}

	if m.config.Verbose && len(m.Report.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("Warnings:"))
		b.WriteString("\n")
		for _, w := range m.Report.Warnings {
			b.WriteString(fmt.Sprintf("  %s %s\n", iconWarning, w))
		}
	}

	if m.config.DryRun {
		b.WriteString("\n")
		b.WriteString(highlightBoxStyle.Render("🔍 Dry Run - No files were moved"))
	}

	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))

	return highlightBoxStyle.Copy().
		BorderForeground(errorColor).
		Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseSorting:
		help = "Press q to quit"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
