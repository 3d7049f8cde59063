// Package render formats query results as grid tables for the
// terminal.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"survey-analyzer/internal/models"
)

const maxQuestionWidth = 80

// Structure prints the survey structure listing.
func Structure(w io.Writer, questions []models.QuestionInfo) {
	table := newTable(w, []string{"Question", "Type", "Unique Values", "Responses"})
	for _, q := range questions {
		table.Append([]string{
			truncate(q.Name, maxQuestionWidth),
			q.Type,
			strconv.Itoa(q.UniqueValues),
			strconv.Itoa(q.Responses),
		})
	}
	table.Render()
}

// Distribution prints a distribution result, including the aggregate
// "Others" row when top-N truncated the option list.
func Distribution(w io.Writer, res *models.DistributionResult) {
	if len(res.Entries) == 0 {
		fmt.Fprintln(w, "No responses.")
		return
	}
	table := newTable(w, []string{"Option", "Count", "Percentage"})
	for _, e := range res.Entries {
		table.Append([]string{
			truncate(e.Option, maxQuestionWidth),
			strconv.Itoa(e.Count),
			fmt.Sprintf("%.2f", e.Percentage),
		})
	}
	if res.OthersPercentage > 0 {
		table.Append([]string{"Others", "", fmt.Sprintf("%.2f", res.OthersPercentage)})
	}
	table.Render()
}

// Options prints a numbered option list (search-options output).
func Options(w io.Writer, options []string) {
	if len(options) == 0 {
		fmt.Fprintln(w, "  No matching options found.")
		return
	}
	for i, opt := range options {
		fmt.Fprintf(w, "  %d. %s\n", i+1, opt)
	}
}

func newTable(w io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	return table
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
