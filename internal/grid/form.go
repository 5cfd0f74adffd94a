package grid

import (
	"context"
	"strings"

	"sheetdash/internal/models"
)

// ColumnStore is the slice of the local store the add-column form needs.
type ColumnStore interface {
	GetDynamicColumns(ctx context.Context, tableID string) ([]models.Column, error)
	SetDynamicColumns(ctx context.Context, tableID string, columns []models.Column) error
}

// AddColumnForm appends one dynamic column to a table's locally-persisted
// list. Append semantics live here; the store itself only overwrites
// wholesale.
type AddColumnForm struct {
	store   ColumnStore
	tableID string

	name  string
	ctype models.ColumnType
}

func NewAddColumnForm(store ColumnStore, tableID string) *AddColumnForm {
	return &AddColumnForm{store: store, tableID: tableID, ctype: models.ColumnTypeText}
}

func (f *AddColumnForm) Name() string {
	return f.name
}

func (f *AddColumnForm) SetName(name string) {
	f.name = name
}

func (f *AddColumnForm) Type() models.ColumnType {
	return f.ctype
}

func (f *AddColumnForm) SetType(t models.ColumnType) {
	f.ctype = t
}

// ToggleType flips the draft between text and date.
func (f *AddColumnForm) ToggleType() {
	if f.ctype == models.ColumnTypeText {
		f.ctype = models.ColumnTypeDate
	} else {
		f.ctype = models.ColumnTypeText
	}
}

// Submit validates the draft, appends it to the table's dynamic columns,
// persists the whole updated list, and resets the draft. Returns the
// updated list.
func (f *AddColumnForm) Submit(ctx context.Context) ([]models.Column, error) {
	name := strings.TrimSpace(f.name)
	if name == "" {
		return nil, validationErrorf("column name is required")
	}

	columns, err := f.store.GetDynamicColumns(ctx, f.tableID)
	if err != nil {
		return nil, err
	}

	columns = append(columns, models.Column{Name: name, Type: f.ctype})
	if err := f.store.SetDynamicColumns(ctx, f.tableID, columns); err != nil {
		return nil, err
	}

	f.name = ""
	f.ctype = models.ColumnTypeText
	return columns, nil
}
