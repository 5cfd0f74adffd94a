package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetdash/internal/grid"
	"sheetdash/internal/models"
)

func testSnapshot(name string, seq uint64) snapshotMsg {
	return snapshotMsg(models.Snapshot{
		Data: models.TableData{
			TableName: name,
			Columns:   []models.Column{{Name: "Amount", Type: models.ColumnTypeText}},
			Rows:      []models.Row{{"Amount": "10"}},
		},
		Seq: seq,
	})
}

func newTestModel(dynamic []models.Column) tableModel {
	form := grid.NewAddColumnForm(newMapColumnStoreCLI(), "t1")
	return newTableModel(models.Table{ID: "t1", Name: "Orders"}, dynamic, form)
}

// mapColumnStoreCLI is a minimal in-memory ColumnStore for view tests.
type mapColumnStoreCLI struct {
	columns map[string][]models.Column
}

func newMapColumnStoreCLI() *mapColumnStoreCLI {
	return &mapColumnStoreCLI{columns: map[string][]models.Column{}}
}

func (m *mapColumnStoreCLI) GetDynamicColumns(ctx context.Context, tableID string) ([]models.Column, error) {
	cols, ok := m.columns[tableID]
	if !ok {
		return []models.Column{}, nil
	}
	return cols, nil
}

func (m *mapColumnStoreCLI) SetDynamicColumns(ctx context.Context, tableID string, columns []models.Column) error {
	m.columns[tableID] = columns
	return nil
}

func TestTableModel_StartsLoading(t *testing.T) {
	m := newTestModel(nil)
	assert.True(t, m.loading)
	assert.Contains(t, m.View(), "Loading data...")
}

func TestTableModel_SnapshotClearsLoading(t *testing.T) {
	m := newTestModel(nil)

	updated, _ := m.Update(testSnapshot("Orders", 1))
	tm := updated.(tableModel)

	assert.False(t, tm.loading)
	view := tm.View()
	assert.Contains(t, view, "Amount")
	assert.Contains(t, view, "10")
}

func TestTableModel_StaleSnapshotIgnored(t *testing.T) {
	m := newTestModel(nil)

	updated, _ := m.Update(testSnapshot("v5", 5))
	updated, _ = updated.(tableModel).Update(testSnapshot("v3", 3))
	tm := updated.(tableModel)

	assert.Contains(t, tm.View(), "v5")
	assert.NotContains(t, tm.View(), "v3")
}

func TestTableModel_FetchFailureOnlyWhenNoData(t *testing.T) {
	m := newTestModel(nil)

	updated, _ := m.Update(fetchFailedMsg{err: errors.New("boom")})
	tm := updated.(tableModel)
	assert.Contains(t, tm.View(), fetchFailureMessage)

	// With data already on screen a late failure changes nothing.
	updated, _ = tm.Update(testSnapshot("Orders", 1))
	updated, _ = updated.(tableModel).Update(fetchFailedMsg{err: errors.New("boom")})
	tm = updated.(tableModel)
	assert.NotContains(t, tm.View(), fetchFailureMessage)
}

func TestTableModel_DynamicColumnsRenderPlaceholders(t *testing.T) {
	m := newTestModel([]models.Column{{Name: "Notes", Type: models.ColumnTypeText}})

	updated, _ := m.Update(testSnapshot("Orders", 1))
	view := updated.(tableModel).View()

	assert.Contains(t, view, "Notes (Local)")
	assert.Contains(t, view, "Enter Notes")
}

func TestTableModel_EmptyRowsState(t *testing.T) {
	m := newTestModel(nil)

	updated, _ := m.Update(snapshotMsg(models.Snapshot{
		Data: models.TableData{
			TableName: "Orders",
			Columns:   []models.Column{{Name: "Amount", Type: models.ColumnTypeText}},
		},
	}))

	assert.Contains(t, updated.(tableModel).View(), "No data available")
}

func TestTableModel_KeyAOpensForm(t *testing.T) {
	m := newTestModel(nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	tm := updated.(tableModel)

	assert.True(t, tm.adding)
	assert.NotNil(t, cmd)
	assert.Contains(t, tm.View(), "Add New Column")
}

func TestTableModel_EscClosesForm(t *testing.T) {
	m := newTestModel(nil)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	updated, _ = updated.(tableModel).Update(tea.KeyMsg{Type: tea.KeyEsc})
	tm := updated.(tableModel)

	assert.False(t, tm.adding)
}

func TestTableModel_QuitKeys(t *testing.T) {
	m := newTestModel(nil)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, "key %s should quit", key)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestTableModel_ColumnsAddedUpdatesGrid(t *testing.T) {
	m := newTestModel(nil)

	updated, _ := m.Update(testSnapshot("Orders", 1))
	updated, _ = updated.(tableModel).Update(columnsAddedMsg([]models.Column{
		{Name: "Notes", Type: models.ColumnTypeText},
	}))
	tm := updated.(tableModel)

	assert.False(t, tm.adding)
	assert.Contains(t, tm.View(), "Notes (Local)")
}

func TestTableModel_AddColumnFailureShownInline(t *testing.T) {
	m := newTestModel(nil)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	updated, _ = updated.(tableModel).Update(addColumnFailedMsg{err: errors.New("column name is required")})
	tm := updated.(tableModel)

	assert.True(t, tm.adding)
	assert.Contains(t, tm.View(), "column name is required")
}

func TestColumnWidths_CappedAndHeaderAware(t *testing.T) {
	g := grid.Grid{
		Headers: []grid.Header{
			{Name: "A"},
			{Name: "Notes", Local: true},
		},
		Rows: [][]string{
			{strings.Repeat("x", 40), ""},
		},
	}

	widths := columnWidths(g)
	assert.Equal(t, maxCellWidth, widths[0])
	assert.Equal(t, len("Notes (Local)"), widths[1])
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", pad("ab", 5))
	assert.Equal(t, "abcd…", pad("abcdefgh", 5))
	assert.Equal(t, "a", pad("abc", 1))
}
