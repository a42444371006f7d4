// Package render projects entities into rows for display. A column resolves
// its cell either through a custom render function or a dotted path into the
// entity's JSON shape, with a placeholder for anything missing. Values are
// formatted at render time; nothing pre-formatted is ever stored.
package render

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"io"
)

// Placeholder fills cells whose path resolves to nothing.
const Placeholder = "n/a"

// Column describes one table column. Render, when set, wins over Key.
type Column[T any] struct {
	Key    string
	Label  string
	Render func(T) string
}

// Table maps a page of entities to rows under a fixed column set.
type Table[T any] struct {
	columns []Column[T]
}

func NewTable[T any](columns []Column[T]) *Table[T] {
	return &Table[T]{columns: columns}
}

// Header returns the column labels.
func (t *Table[T]) Header() []string {
	labels := make([]string, len(t.columns))
	for i, col := range t.columns {
		labels[i] = col.Label
	}
	return labels
}

// Rows resolves every entity into one row of display strings.
func (t *Table[T]) Rows(items []T) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, len(t.columns))
		for i, col := range t.columns {
			if col.Render != nil {
				row[i] = col.Render(item)
				continue
			}
			row[i] = Cell(item, col.Key)
		}
		rows = append(rows, row)
	}
	return rows
}

// Write prints the table with aligned columns.
func (t *Table[T]) Write(w io.Writer, items []T) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Header(), "\t"))
	for _, row := range t.Rows(items) {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// Cell resolves a dotted path ("profile.display_name") into the entity and
// formats the value, falling back to the placeholder.
func Cell(item interface{}, path string) string {
	value, ok := lookup(item, path)
	if !ok {
		return Placeholder
	}
	return FormatValue(value)
}

// lookup walks the entity's JSON representation segment by segment. Going
// through JSON keeps path names identical to what the API returns.
func lookup(item interface{}, path string) (interface{}, bool) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, false
	}
	var node interface{}
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, false
	}

	for _, segment := range strings.Split(path, ".") {
		obj, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		node, ok = obj[segment]
		if !ok {
			return nil, false
		}
	}
	if node == nil {
		return nil, false
	}
	return node, true
}

// FormatValue renders a single value for display. Deterministic: the same
// input always yields the same string.
func FormatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return FormatDate(t)
		}
		if strings.TrimSpace(v) == "" {
			return Placeholder
		}
		return v
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case float64:
		return FormatNumber(v)
	case nil:
		return Placeholder
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatDate renders a timestamp the way list screens show it.
func FormatDate(t time.Time) string {
	return t.Local().Format("Jan 2, 2006 15:04")
}

// FormatNumber renders integers without a fraction and keeps two decimals
// otherwise.
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
