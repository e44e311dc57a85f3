package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"tunesort/internal/organizer"
)

// Summary renders an end-of-batch table of every outcome plus a totals row.
func Summary(outcomes []organizer.Outcome) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Artist", "Album", "Target", "Status"})

	copied := 0
	for _, outcome := range outcomes {
		status := "failed"
		if outcome.OK() {
			status = "copied"
			copied++
			if outcome.RemovalWarning != nil {
				status = "copied (removal warning)"
			}
		}
		tw.AppendRow(table.Row{
			DisplayName(outcome.Source),
			outcome.Tags.Artist,
			outcome.Tags.Album,
			outcome.Target,
			status,
		})
	}
	tw.AppendFooter(table.Row{
		strconv.Itoa(len(outcomes)) + " files", "", "",
		strconv.Itoa(copied) + " copied",
		strconv.Itoa(len(outcomes)-copied) + " failed",
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
