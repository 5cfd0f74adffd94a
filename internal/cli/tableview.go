package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sheetdash/internal/grid"
	"sheetdash/internal/models"
)

// Messages delivered into the table view's update loop.
type (
	// snapshotMsg carries table data from the initial fetch or a push update.
	snapshotMsg models.Snapshot

	// fetchFailedMsg reports a failed initial fetch. Channel failures never
	// produce one; the view keeps whatever data it already has.
	fetchFailedMsg struct{ err error }

	// columnsAddedMsg carries the updated dynamic column list after a
	// successful add-column submit.
	columnsAddedMsg []models.Column

	// addColumnFailedMsg carries an inline form error.
	addColumnFailedMsg struct{ err error }
)

const fetchFailureMessage = "Failed to fetch table data"

// tableModel is the Bubble Tea model for one table's live grid.
type tableModel struct {
	table   models.Table
	state   *grid.SnapshotState
	dynamic []models.Column
	form    *grid.AddColumnForm

	// Inline add-column form
	adding  bool
	ti      textinput.Model
	formErr string

	loading bool
	errMsg  string
	width   int
}

func newTableModel(table models.Table, dynamic []models.Column, form *grid.AddColumnForm) tableModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Column name..."
	ti.CharLimit = 60

	return tableModel{
		table:   table,
		state:   &grid.SnapshotState{},
		dynamic: dynamic,
		form:    form,
		ti:      ti,
		loading: true,
	}
}

func (m tableModel) Init() tea.Cmd {
	return nil
}

func (m tableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case snapshotMsg:
		if m.state.Apply(models.Snapshot(msg)) {
			m.loading = false
			m.errMsg = ""
		}
		return m, nil

	case fetchFailedMsg:
		m.loading = false
		if _, ok := m.state.Current(); !ok {
			m.errMsg = fetchFailureMessage
		}
		return m, nil

	case columnsAddedMsg:
		m.dynamic = msg
		m.adding = false
		m.formErr = ""
		m.ti.Reset()
		return m, nil

	case addColumnFailedMsg:
		m.formErr = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "a":
			m.adding = true
			m.formErr = ""
			m.ti.Focus()
			return m, textinput.Blink
		}
		return m, nil
	}

	return m, nil
}

func (m tableModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.formErr = ""
		m.ti.Reset()
		return m, nil

	case "tab":
		m.form.ToggleType()
		return m, nil

	case "enter":
		m.form.SetName(m.ti.Value())
		form := m.form
		return m, func() tea.Msg {
			columns, err := form.Submit(context.Background())
			if err != nil {
				return addColumnFailedMsg{err: err}
			}
			return columnsAddedMsg(columns)
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m tableModel) View() string {
	var b strings.Builder

	data, ok := m.state.Current()
	title := m.table.Name
	if ok && data.TableName != "" {
		title = data.TableName
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	switch {
	case m.loading:
		b.WriteString(loadingStyle.Render("Loading data...") + "\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	default:
		b.WriteString(m.renderGrid(grid.Build(data, m.dynamic)))
	}

	if m.adding {
		b.WriteString("\n" + m.renderForm())
	}

	b.WriteString("\n" + helpStyle.Render("a add column · q back · local columns are read-only placeholders") + "\n")
	return b.String()
}

func (m tableModel) renderForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add New Column") + "\n")
	b.WriteString(m.ti.View() + "\n")
	b.WriteString(fmt.Sprintf("Type: %s (tab to toggle, enter to add, esc to close)\n", m.form.Type()))
	if m.formErr != "" {
		b.WriteString(errorStyle.Render(m.formErr) + "\n")
	}
	return b.String()
}

const maxCellWidth = 24

func (m tableModel) renderGrid(g grid.Grid) string {
	if g.Width() == 0 {
		return emptyStyle.Render("No columns defined") + "\n"
	}

	widths := columnWidths(g)

	var b strings.Builder
	for i, h := range g.Headers {
		label := h.Name
		if h.Local {
			label += " (Local)"
		}
		padded := pad(label, widths[i])
		if h.Local {
			b.WriteString(localHeaderStyle.Render(padded))
		} else {
			b.WriteString(headerStyle.Render(padded))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n")

	if len(g.Rows) == 0 {
		b.WriteString(emptyStyle.Render("No data available") + "\n")
		return b.String()
	}

	serverCount := len(g.Headers) - len(m.dynamic)
	for _, row := range g.Rows {
		for i, cell := range row {
			if i >= serverCount {
				// Dynamic columns carry no data; show the affordance only.
				name := g.Headers[i].Name
				b.WriteString(placeholderStyle.Render(pad("Enter "+name, widths[i])))
			} else {
				b.WriteString(pad(cell, widths[i]))
			}
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func columnWidths(g grid.Grid) []int {
	widths := make([]int, len(g.Headers))
	for i, h := range g.Headers {
		label := h.Name
		if h.Local {
			label += " (Local)"
		}
		widths[i] = len(label)
	}
	for _, row := range g.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for i := range widths {
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}
	return widths
}

func pad(s string, width int) string {
	if len(s) > width {
		if width <= 1 {
			return s[:width]
		}
		return s[:width-1] + "…"
	}
	return s + strings.Repeat(" ", width-len(s))
}

// runTableView opens the live grid for table: one initial fetch under a
// cancellable context (a late response for a superseded table is dropped,
// not applied) and one realtime channel, torn down before the view
// returns so the next table can never race it.
func (a *App) runTableView(ctx context.Context, table models.Table) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	dynamic, err := a.store.GetDynamicColumns(ctx, table.ID)
	if err != nil {
		a.log.Error(ctx, "loading dynamic columns failed", "tableId", table.ID, "error", err)
		dynamic = []models.Column{}
	}

	m := newTableModel(table, dynamic, grid.NewAddColumnForm(a.store, table.ID))
	p := tea.NewProgram(m, tea.WithAltScreen())

	go func() {
		data, fetchErr := a.api.GetTableData(ctx, table.ID)
		if ctx.Err() != nil {
			return
		}
		if fetchErr != nil {
			p.Send(fetchFailedMsg{err: fetchErr})
			return
		}
		p.Send(snapshotMsg(models.Snapshot{Data: *data}))
	}()

	token, err := a.session.Token(ctx)
	if err != nil {
		a.log.Error(ctx, "reading token failed", "error", err)
	}
	if err := a.channel.Connect(ctx, table.ID, token, func(s models.Snapshot) {
		p.Send(snapshotMsg(s))
	}); err != nil {
		// Logged inside the manager; the view still works from the fetch.
		fmt.Println("Live updates unavailable for this table")
	}
	defer a.channel.Disconnect()

	_, err = p.Run()
	return err
}
