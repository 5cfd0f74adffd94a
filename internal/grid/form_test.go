package grid

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetdash/internal/models"
)

type mapColumnStore struct {
	columns map[string][]models.Column
	getErr  error
	setErr  error
}

func newMapColumnStore() *mapColumnStore {
	return &mapColumnStore{columns: map[string][]models.Column{}}
}

func (m *mapColumnStore) GetDynamicColumns(ctx context.Context, tableID string) ([]models.Column, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	cols, ok := m.columns[tableID]
	if !ok {
		return []models.Column{}, nil
	}
	return cols, nil
}

func (m *mapColumnStore) SetDynamicColumns(ctx context.Context, tableID string, columns []models.Column) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.columns[tableID] = columns
	return nil
}

func TestAddColumnForm_AppendsToEmptyList(t *testing.T) {
	st := newMapColumnStore()
	f := NewAddColumnForm(st, "t1")

	f.SetName("Notes")
	got, err := f.Submit(context.Background())
	require.NoError(t, err)

	want := []models.Column{{Name: "Notes", Type: models.ColumnTypeText}}
	assert.Equal(t, want, got)
	assert.Equal(t, want, st.columns["t1"])
}

func TestAddColumnForm_AppendsAfterExisting(t *testing.T) {
	st := newMapColumnStore()
	st.columns["t1"] = []models.Column{{Name: "Notes", Type: models.ColumnTypeText}}
	f := NewAddColumnForm(st, "t1")

	f.SetName("Due")
	f.SetType(models.ColumnTypeDate)
	got, err := f.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, models.Column{Name: "Due", Type: models.ColumnTypeDate}, got[1])
}

func TestAddColumnForm_TrimsAndValidatesName(t *testing.T) {
	st := newMapColumnStore()
	f := NewAddColumnForm(st, "t1")

	f.SetName("   ")
	_, err := f.Submit(context.Background())
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, st.columns)

	f.SetName("  Notes  ")
	got, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Notes", got[0].Name)
}

func TestAddColumnForm_ResetsDraftOnSuccess(t *testing.T) {
	f := NewAddColumnForm(newMapColumnStore(), "t1")

	f.SetName("Due")
	f.SetType(models.ColumnTypeDate)
	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Empty(t, f.Name())
	assert.Equal(t, models.ColumnTypeText, f.Type())
}

func TestAddColumnForm_KeepsDraftOnStoreError(t *testing.T) {
	st := newMapColumnStore()
	st.setErr = errors.New("disk full")
	f := NewAddColumnForm(st, "t1")

	f.SetName("Notes")
	_, err := f.Submit(context.Background())
	require.Error(t, err)

	assert.Equal(t, "Notes", f.Name())
}

func TestAddColumnForm_ToggleType(t *testing.T) {
	f := NewAddColumnForm(newMapColumnStore(), "t1")

	assert.Equal(t, models.ColumnTypeText, f.Type())
	f.ToggleType()
	assert.Equal(t, models.ColumnTypeDate, f.Type())
	f.ToggleType()
	assert.Equal(t, models.ColumnTypeText, f.Type())
}
