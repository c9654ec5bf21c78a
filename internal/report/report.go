// Package report renders the collected recording set: a summary (total
// count, total size in GB, per-user megabyte totals) and a detail table
// with a fixed display column order.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/danikagupta/zoomsize/internal/collector"
)

// DetailColumns is the display order of the detail table.
var DetailColumns = []string{"user_name", "user_email", "topic", "start_time", "duration", "MB"}

// UserTotal is one user's aggregate recording size.
type UserTotal struct {
	UserName string
	MB       float64
}

// Summary aggregates a collection for the summary view.
type Summary struct {
	TotalRecordings int
	TotalGB         float64
	PerUser         []UserTotal
}

// Summarize computes the summary view of a collection. Per-user totals are
// sorted by user name.
func Summarize(col collector.Collection) Summary {
	s := Summary{TotalRecordings: len(col)}

	perUser := make(map[string]float64)
	for _, rec := range col {
		mb := megabytes(rec["MB"])
		s.TotalGB += mb / 1024
		name, _ := rec["user_name"].(string)
		perUser[name] += mb
	}

	for name, mb := range perUser {
		s.PerUser = append(s.PerUser, UserTotal{UserName: name, MB: mb})
	}
	sort.Slice(s.PerUser, func(i, j int) bool {
		return s.PerUser[i].UserName < s.PerUser[j].UserName
	})

	return s
}

// DetailRows renders a collection into display-column string rows.
func DetailRows(col collector.Collection) [][]string {
	rows := make([][]string, 0, len(col))
	for _, rec := range col {
		row := make([]string, len(DetailColumns))
		for i, k := range DetailColumns {
			row[i] = cellString(rec[k])
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteText renders the summary and detail views as plain text.
func WriteText(w io.Writer, col collector.Collection) error {
	s := Summarize(col)

	fmt.Fprintln(w, "Summary")
	fmt.Fprintf(w, "Total recordings: %d, total size: %.1f GB\n", s.TotalRecordings, s.TotalGB)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, ut := range s.PerUser {
		fmt.Fprintf(tw, "%s\t%.0f MB\n", ut.UserName, ut.MB)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Details")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, k := range DetailColumns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, k)
	}
	fmt.Fprintln(tw)
	for _, row := range DetailRows(col) {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// megabytes reads the MB field regardless of whether it came straight from
// normalization (int) or back from the CSV cache.
func megabytes(v any) float64 {
	switch val := v.(type) {
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case float64:
		return val
	default:
		return 0
	}
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
