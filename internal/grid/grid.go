// Package grid reconciles the two column sources — server-defined and
// locally-persisted dynamic columns — into one renderable model, and owns
// the creation wizards' validation rules.
package grid

import (
	"fmt"
	"strconv"
	"time"

	"sheetdash/internal/models"
)

// Header is one rendered column header. Local marks a dynamic column.
type Header struct {
	Name  string
	Type  models.ColumnType
	Local bool
}

// Grid is the derived, renderable table model. Headers and each row's
// cells are ordered: server columns first (server order), then dynamic
// columns (insertion order). Dynamic cells are always "" — dynamic columns
// carry no row data and render as input affordances, not values.
type Grid struct {
	Title   string
	Headers []Header
	Rows    [][]string
}

// Width is the total column count, used for the empty-state span.
func (g Grid) Width() int {
	return len(g.Headers)
}

// Build merges a server snapshot with the table's dynamic columns.
func Build(data models.TableData, dynamic []models.Column) Grid {
	headers := make([]Header, 0, len(data.Columns)+len(dynamic))
	for _, c := range data.Columns {
		headers = append(headers, Header{Name: c.Name, Type: c.Type})
	}
	for _, c := range dynamic {
		headers = append(headers, Header{Name: c.Name, Type: c.Type, Local: true})
	}

	rows := make([][]string, 0, len(data.Rows))
	for _, row := range data.Rows {
		cells := make([]string, 0, len(headers))
		for _, c := range data.Columns {
			cells = append(cells, RenderCell(row, c))
		}
		for range dynamic {
			cells = append(cells, "")
		}
		rows = append(rows, cells)
	}

	return Grid{Title: data.TableName, Headers: headers, Rows: rows}
}

// RenderCell produces the display string for one server-column cell.
// Date columns parse the raw value and format it as a short date; values
// that do not parse render raw — a bad value must never take the row down.
// Text columns render the raw value, or "" when absent.
func RenderCell(row models.Row, col models.Column) string {
	raw := stringify(row[col.Name])
	if col.Type == models.ColumnTypeDate && raw != "" {
		if formatted, ok := formatDate(raw); ok {
			return formatted
		}
	}
	return raw
}

// dateLayouts are tried in order when parsing a date cell.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
}

func formatDate(raw string) (string, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006"), true
		}
	}
	return "", false
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		// JSON numbers arrive as float64; keep integers clean.
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
