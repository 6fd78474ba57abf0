// Interactive results viewer built on bubbletea.
package report

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"deconflict/internal/detect"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
	clearStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	unsafeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Faint(true)

	severityColors = map[detect.Severity]lipgloss.Color{
		detect.SeverityLow:      lipgloss.Color("220"),
		detect.SeverityMedium:   lipgloss.Color("208"),
		detect.SeverityHigh:     lipgloss.Color("196"),
		detect.SeverityCritical: lipgloss.Color("124"),
	}
)

type tuiModel struct {
	result  detect.Result
	tbl     table.Model
	view    viewport.Model
	width   int
	height  int
	focused int // 0 = table, 1 = report
}

func newTUIModel(res detect.Result, width, height int) tuiModel {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Primary", Width: 14},
		{Title: "Conflicting", Width: 14},
		{Title: "Time (s)", Width: 9},
		{Title: "Dist (m)", Width: 9},
		{Title: "Buffer (m)", Width: 10},
		{Title: "Severity", Width: 9},
	}
	rows := make([]table.Row, 0, len(res.Conflicts))
	for i, c := range res.Conflicts {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			c.PrimaryID,
			c.ConflictingID,
			fmt.Sprintf("%.2f", c.Time),
			fmt.Sprintf("%.2f", c.MinDistance),
			fmt.Sprintf("%.2f", c.SafetyBuffer),
			string(detect.Classify(c)),
		})
	}

	tableHeight := len(rows) + 1
	if max := height / 2; tableHeight > max {
		tableHeight = max
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(tableHeight),
		table.WithFocused(true),
	)

	vp := viewport.New(width, height-tableHeight-4)
	vp.SetContent(wordwrap.String(detect.FormatReport(res), width-2))

	return tuiModel{result: res, tbl: tbl, view: vp, width: width, height: height}
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = msg.Width
		m.view.Height = msg.Height - m.tbl.Height() - 4
		m.view.SetContent(wordwrap.String(detect.FormatReport(m.result), msg.Width-2))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.focused = (m.focused + 1) % 2
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.tbl, cmd = m.tbl.Update(msg)
	} else {
		m.view, cmd = m.view.Update(msg)
	}
	return m, cmd
}

func (m tuiModel) View() string {
	verdict := clearStyle.Render("CLEAR")
	if !m.result.Clear {
		verdict = unsafeStyle.Render(fmt.Sprintf("UNSAFE (%d conflicts)", len(m.result.Conflicts)))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("Mission Deconfliction"), " ", verdict)

	sevLegend := ""
	for _, s := range []detect.Severity{detect.SeverityLow, detect.SeverityMedium, detect.SeverityHigh, detect.SeverityCritical} {
		sevLegend += lipgloss.NewStyle().Foreground(severityColors[s]).Render(string(s)) + " "
	}

	help := helpStyle.Render("tab: switch pane · up/down: scroll · q: quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		header, m.tbl.View(), sevLegend, m.view.View(), help)
}

// RunTUI shows a check result in an interactive terminal viewer. It refuses
// to start when stdout is not a terminal.
func RunTUI(res detect.Result) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdout is not a terminal; drop --tui or redirect elsewhere")
	}
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width, height = 80, 24
	}

	p := tea.NewProgram(newTUIModel(res, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
