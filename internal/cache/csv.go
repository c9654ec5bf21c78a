package cache

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/danikagupta/zoomsize/internal/collector"
)

// preferredColumns lead the CSV header, in display order. Any other field
// present in the collection follows, sorted by name.
var preferredColumns = []string{"user_name", "user_email", "topic", "start_time", "duration", "MB"}

// columns returns the CSV header for a collection.
func columns(col collector.Collection) []string {
	seen := make(map[string]bool)
	for _, rec := range col {
		for k := range rec {
			seen[k] = true
		}
	}

	var header []string
	for _, k := range preferredColumns {
		if seen[k] || len(col) == 0 {
			header = append(header, k)
			delete(seen, k)
		}
	}

	var extras []string
	for k := range seen {
		extras = append(extras, k)
	}
	sort.Strings(extras)

	return append(header, extras...)
}

// WriteCSV encodes a collection as one row per recording.
func WriteCSV(w io.Writer, col collector.Collection) error {
	header := columns(col)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	row := make([]string, len(header))
	for _, rec := range col {
		for i, k := range header {
			row[i] = formatCell(rec[k])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV decodes a collection previously written by WriteCSV.
func ReadCSV(r io.Reader) (collector.Collection, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	var col collector.Collection
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}

		rec := make(collector.Recording, len(header))
		for i, k := range header {
			if i < len(row) {
				rec[k] = parseCell(row[i])
			}
		}
		col = append(col, rec)
	}

	return col, nil
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// parseCell restores numeric and boolean cells to typed values, matching the
// way formatCell wrote them. Everything else stays a string.
func parseCell(s string) any {
	if s == "" {
		return ""
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
