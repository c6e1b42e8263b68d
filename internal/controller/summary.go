// Package controller renders run results for humans. Everything here
// writes to the writer it is handed, normally the diagnostic stream, so
// extraction output on stdout stays machine-consumable.
package controller

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	m "github.com/carve-tools/carve/internal/model"
)

// RenderSummary prints a per-file accounting table: units emitted for
// processed inputs, the error text for skipped ones.
func RenderSummary(w io.Writer, reports []m.FileReport) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Units", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	totalUnits := 0

	for _, report := range reports {
		status := "ok"
		if report.Skipped() {
			status = report.Err.Error()
		}

		table.Append([]string{report.File, fmt.Sprintf("%d", report.Units), status})

		totalUnits += report.Units
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		fmt.Sprintf("%d", totalUnits),
		"",
	})

	table.Render()
	fmt.Fprintf(w, "\n%s", tableBuffer.String())
}

// RenderRanges prints a parsed selection as its half-open ranges, one row
// per range in list order, with the unit count each range covers.
func RenderRanges(w io.Writer, selection m.SelectionList) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Range", "Start", "End", "Units"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalUnits := 0

	for i, r := range selection {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Start),
			fmt.Sprintf("%d", r.End),
			fmt.Sprintf("%d", r.End-r.Start),
		})

		totalUnits += r.End - r.Start
	}

	table.SetFooter([]string{"", "", "Total", fmt.Sprintf("%d", totalUnits)})

	table.Render()
	fmt.Fprintf(w, "\n%s", tableBuffer.String())
}
