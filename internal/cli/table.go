package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"dubalign/internal/domain/srt"
	"dubalign/internal/usecase"
)

const summaryTextWidth = 40

func renderSegmentTable(segments []usecase.SegmentReport) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Window", "Fitted", "State", "Text"})

	for _, s := range segments {
		state := "dubbed"
		if s.Skipped {
			state = "skipped"
		}
		fitted := "-"
		if !s.Skipped {
			fitted = fmt.Sprintf("%d ms", s.FittedMS)
		}
		window := srt.Timestamp(s.StartMS) + " -> " + srt.Timestamp(s.EndMS)
		tw.AppendRow(table.Row{s.Index, window, fitted, state, truncateText(s.Text, summaryTextWidth)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	return tw.Render()
}

func truncateText(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
