package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ColumnType is the closed set of column value types the dashboard knows
// how to render. Unknown values are rejected at the JSON boundary instead
// of silently falling back to text.
type ColumnType string

const (
	ColumnTypeText ColumnType = "text"
	ColumnTypeDate ColumnType = "date"
)

// ParseColumnType normalizes s (case-insensitive, trimmed) into a
// ColumnType. Returns an error for anything outside the known set.
func ParseColumnType(s string) (ColumnType, error) {
	switch ColumnType(strings.ToLower(strings.TrimSpace(s))) {
	case ColumnTypeText:
		return ColumnTypeText, nil
	case ColumnTypeDate:
		return ColumnTypeDate, nil
	default:
		return "", fmt.Errorf("unknown column type %q", s)
	}
}

func (t ColumnType) String() string {
	return string(t)
}

// UnmarshalJSON enforces the closed variant when column definitions arrive
// from the server or the local store.
func (t *ColumnType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseColumnType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Column is a single table column definition. Server-defined and
// locally-defined (dynamic) columns share this shape; only where they are
// stored differs.
type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}
