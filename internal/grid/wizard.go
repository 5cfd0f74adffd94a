package grid

import (
	"context"
	"errors"
	"strings"

	"sheetdash/internal/api"
	"sheetdash/internal/models"
)

// Step identifies the wizard's current screen.
type Step int

const (
	StepName Step = iota + 1
	StepColumns
)

const (
	minColumns = 1
	maxColumns = 10
)

// TableCreator is the single API operation the wizard needs.
type TableCreator interface {
	CreateTable(ctx context.Context, name string, columns []models.Column) (*models.Table, error)
}

// CreateTableWizard is the two-step table creation state machine.
//
// StepName collects the table name and column count; StepColumns collects
// per-column drafts. Moving Back never discards drafts, and resizing the
// draft list preserves the retained entries. Submit is busy-guarded so a
// slow server cannot be hit twice with the same form.
type CreateTableWizard struct {
	creator TableCreator

	step   Step
	name   string
	drafts []models.Column
	busy   bool
}

func NewCreateTableWizard(creator TableCreator) *CreateTableWizard {
	return &CreateTableWizard{
		creator: creator,
		step:    StepName,
		drafts: []models.Column{
			{Type: models.ColumnTypeText},
			{Type: models.ColumnTypeText},
		},
	}
}

func (w *CreateTableWizard) Step() Step {
	return w.step
}

func (w *CreateTableWizard) Name() string {
	return w.name
}

func (w *CreateTableWizard) SetName(name string) {
	w.name = name
}

// Next advances from StepName to StepColumns. The table name must be
// non-empty after trimming.
func (w *CreateTableWizard) Next() error {
	if strings.TrimSpace(w.name) == "" {
		return validationErrorf("table name is required")
	}
	w.step = StepColumns
	return nil
}

// Back returns to StepName, keeping the column drafts.
func (w *CreateTableWizard) Back() {
	w.step = StepName
}

// SetColumnCount resizes the draft list to n (1..10). Growing appends
// blank text drafts; shrinking truncates from the tail. Every retained
// draft keeps its name and type.
func (w *CreateTableWizard) SetColumnCount(n int) error {
	if n < minColumns || n > maxColumns {
		return validationErrorf("column count must be between %d and %d", minColumns, maxColumns)
	}
	for len(w.drafts) < n {
		w.drafts = append(w.drafts, models.Column{Type: models.ColumnTypeText})
	}
	if len(w.drafts) > n {
		w.drafts = w.drafts[:n]
	}
	return nil
}

func (w *CreateTableWizard) ColumnCount() int {
	return len(w.drafts)
}

// Drafts returns a copy of the current column drafts.
func (w *CreateTableWizard) Drafts() []models.Column {
	out := make([]models.Column, len(w.drafts))
	copy(out, w.drafts)
	return out
}

func (w *CreateTableWizard) SetDraftName(i int, name string) error {
	if i < 0 || i >= len(w.drafts) {
		return validationErrorf("no column %d", i+1)
	}
	w.drafts[i].Name = name
	return nil
}

func (w *CreateTableWizard) SetDraftType(i int, t models.ColumnType) error {
	if i < 0 || i >= len(w.drafts) {
		return validationErrorf("no column %d", i+1)
	}
	w.drafts[i].Type = t
	return nil
}

// Submit validates the drafts and creates the table. On failure the
// wizard stays on StepColumns with all state intact and the returned
// error carries a human-readable message. The caller closes the wizard on
// success.
func (w *CreateTableWizard) Submit(ctx context.Context) (*models.Table, error) {
	if w.busy {
		return nil, validationErrorf("table creation already in progress")
	}

	if strings.TrimSpace(w.name) == "" {
		return nil, validationErrorf("table name is required")
	}
	for i, d := range w.drafts {
		if strings.TrimSpace(d.Name) == "" {
			return nil, validationErrorf("column %d name is required", i+1)
		}
	}

	w.busy = true
	defer func() { w.busy = false }()

	table, err := w.creator.CreateTable(ctx, w.name, w.Drafts())
	if err != nil {
		return nil, errors.New(creationFailureMessage(err))
	}
	return table, nil
}

// creationFailureMessage prefers the server's own message; transport
// failures and blank bodies fall back to a generic one.
func creationFailureMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Status != 0 && apiErr.Message != "" {
		return apiErr.Message
	}
	return defaultCreateFailure
}

const defaultCreateFailure = "Failed to create table"
