// Package render turns tracker and report outputs into aligned text tables.
package render

import (
	"fmt"
	"sort"
	"strings"

	reportdto "tempo/internal/modules/report/dto"
	trackerdto "tempo/internal/modules/tracker/dto"
	"tempo/internal/ui/theme"
)

const displayLayout = "02.01.2006 15:04"

func ActiveBanner(active trackerdto.ActiveOutput) string {
	return theme.Hot.Render(fmt.Sprintf("Active: %s (%.2fh)", active.Topic, active.Hours))
}

// Sessions renders a session table, newest first. Active sessions show an
// ACTIVE marker; without the ID column they are omitted entirely since the
// active banner already covers them.
func Sessions(sessions []trackerdto.SessionOutput, showID bool) string {
	var b strings.Builder
	if showID {
		b.WriteString(theme.Header.Render(fmt.Sprintf("%-5s %-20s %-20s %-20s %10s", "ID", "Topic", "Start", "End", "Hours")))
		b.WriteString("\n" + strings.Repeat("─", 80) + "\n")
	} else {
		b.WriteString(theme.Header.Render(fmt.Sprintf("%-20s %-20s %-20s %10s", "Topic", "Start", "End", "Hours")))
		b.WriteString("\n" + strings.Repeat("─", 75) + "\n")
	}

	for _, sess := range sessions {
		switch {
		case sess.End != nil && showID:
			b.WriteString(fmt.Sprintf("%-5d %-20s %-20s %-20s %9.2fh\n",
				sess.ID, sess.Topic, sess.Start.Format(displayLayout), sess.End.Format(displayLayout), sess.Hours))
		case sess.End != nil:
			b.WriteString(fmt.Sprintf("%-20s %-20s %-20s %9.2fh\n",
				sess.Topic, sess.Start.Format(displayLayout), sess.End.Format(displayLayout), sess.Hours))
		case showID:
			b.WriteString(fmt.Sprintf("%-5d %-20s %-20s %-20s %10s\n",
				sess.ID, sess.Topic, sess.Start.Format(displayLayout), "ACTIVE", "-"))
		}
	}
	return b.String()
}

// PeriodStats renders one block per bucket plus a grand total across
// buckets when more than one was requested.
func PeriodStats(stats []reportdto.PeriodStatsOutput) string {
	var b strings.Builder
	for i, period := range stats {
		b.WriteString(theme.Title.Render(period.Label) + "\n")
		for _, topic := range period.Topics {
			b.WriteString(fmt.Sprintf("  %-20s %8.2fh\n", topic.Topic, topic.Hours))
		}
		b.WriteString("  " + strings.Repeat("─", 30) + "\n")
		b.WriteString(fmt.Sprintf("  %-20s %8.2fh\n", "Total", period.Total))
		if i < len(stats)-1 {
			b.WriteString("\n")
		}
	}
	if len(stats) > 1 {
		b.WriteString("\n" + strings.Repeat("═", 33) + "\n")
		b.WriteString(theme.Title.Render("Grand Total:") + "\n")
		for _, topic := range grandTotal(stats) {
			b.WriteString(fmt.Sprintf("  %-20s %8.2fh\n", topic.Topic, topic.Hours))
		}
		var sum float64
		for _, period := range stats {
			sum += period.Total
		}
		b.WriteString("  " + strings.Repeat("─", 30) + "\n")
		b.WriteString(fmt.Sprintf("  %-20s %8.2fh\n", "Total", sum))
	}
	return b.String()
}

func grandTotal(stats []reportdto.PeriodStatsOutput) []reportdto.TopicHoursOutput {
	byTopic := map[string]float64{}
	for _, period := range stats {
		for _, topic := range period.Topics {
			byTopic[topic.Topic] += topic.Hours
		}
	}
	out := make([]reportdto.TopicHoursOutput, 0, len(byTopic))
	for topic, hours := range byTopic {
		out = append(out, reportdto.TopicHoursOutput{Topic: topic, Hours: hours})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hours != out[j].Hours {
			return out[i].Hours > out[j].Hours
		}
		return out[i].Topic < out[j].Topic
	})
	return out
}
