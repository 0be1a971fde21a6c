package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/heyjunin/yt/pkg/errors"
	"github.com/heyjunin/yt/pkg/executor"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderSummary prints one row per job of a finished batch.
func renderSummary(w io.Writer, result executor.BatchResult) {
	if result.TotalJobs == 0 {
		fmt.Fprintln(w, "No source files found.")
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"#", "Source", "Output", "State", "Error"})

	for _, o := range result.Outcomes {
		reason := ""
		if o.Err != nil {
			reason = o.Err.Error()
			if se, ok := errors.As(o.Err); ok && se.Details != "" {
				reason = se.Details
			}
		}
		tw.AppendRow(table.Row{strconv.Itoa(o.Job.Index), o.Job.InputName(), o.Job.OutputName(), o.State.String(), reason})
	}

	tw.AppendFooter(table.Row{"", "", "",
		fmt.Sprintf("%d/%d ok", result.JobsAttempted-len(result.JobsFailed), result.TotalJobs), ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, WidthMax: 60},
	})

	fmt.Fprintln(w, tw.Render())
}
