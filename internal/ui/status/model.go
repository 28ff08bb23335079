// Package status is the live dashboard behind `tempo status`: the active
// session with ticking elapsed time plus today's per-topic totals.
package status

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	reportdto "tempo/internal/modules/report/dto"
	trackerdto "tempo/internal/modules/tracker/dto"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/ui/theme"
)

type TrackerPort interface {
	Active(ctx context.Context) (trackerdto.ActiveOutput, error)
}

type ReportPort interface {
	Period(ctx context.Context, granularity string, count int) ([]reportdto.PeriodStatsOutput, error)
}

type keyMap struct {
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

type tickMsg time.Time

type refreshMsg struct {
	active *trackerdto.ActiveOutput
	today  *reportdto.PeriodStatsOutput
	err    error
}

type Model struct {
	tracker TrackerPort
	report  ReportPort
	keys    keyMap
	help    help.Model
	active  *trackerdto.ActiveOutput
	today   *reportdto.PeriodStatsOutput
	err     error
}

func New(tracker TrackerPort, report ReportPort) Model {
	return Model{
		tracker: tracker,
		report:  report,
		keys:    keyMap{Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))},
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refresh, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) refresh() tea.Msg {
	ctx := context.Background()
	var msg refreshMsg
	active, err := m.tracker.Active(ctx)
	switch {
	case err == nil:
		msg.active = &active
	case !errors.Is(err, apperrors.ErrNoActiveSession):
		msg.err = err
		return msg
	}
	stats, err := m.report.Period(ctx, "day", 1)
	if err != nil {
		msg.err = err
		return msg
	}
	if len(stats) > 0 {
		msg.today = &stats[0]
	}
	return msg
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case tickMsg:
		return m, tea.Batch(m.refresh, tick())
	case refreshMsg:
		m.active, m.today, m.err = msg.active, msg.today, msg.err
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("tempo") + "\n\n")
	if m.err != nil {
		b.WriteString(theme.Hot.Render("error: "+m.err.Error()) + "\n")
		return theme.Pane.Render(b.String())
	}
	if m.active != nil {
		b.WriteString(theme.Hot.Render(fmt.Sprintf("Active: %s (%.2fh)", m.active.Topic, m.active.Hours)) + "\n")
		b.WriteString(theme.Muted.Render("since "+m.active.StartedAt.Format("02.01.2006 15:04")) + "\n\n")
	} else {
		b.WriteString(theme.Muted.Render("No active session") + "\n\n")
	}
	if m.today != nil {
		b.WriteString(theme.Header.Render(m.today.Label) + "\n")
		for _, topic := range m.today.Topics {
			b.WriteString(fmt.Sprintf("  %-20s %8.2fh\n", topic.Topic, topic.Hours))
		}
		b.WriteString(fmt.Sprintf("  %-20s %8.2fh\n", "Total", m.today.Total))
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return theme.Pane.Render(b.String())
}
