package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"sheetdash/internal/grid"
	"sheetdash/internal/models"
)

// ListTables fetches and prints the account's tables, caching the listing
// for `open <n>`.
func (a *App) ListTables(ctx context.Context) error {
	if !a.isAuthenticated() {
		fmt.Println("Log in first")
		return nil
	}

	tables, err := a.api.ListTables(ctx)
	if err != nil {
		fmt.Println("Failed to list tables:", err)
		return err
	}
	a.tables = tables

	if len(tables) == 0 {
		fmt.Println("No tables yet. Use 'create' to add one.")
		return nil
	}
	for i, t := range tables {
		fmt.Printf("%d. %s (%d columns)\n", i+1, t.Name, len(t.Columns))
	}
	return nil
}

// wizardCancel aborts the creation wizard from any prompt.
const wizardCancel = ":q"

// CreateTable drives the two-step creation wizard over REPL prompts.
// Submit failures keep the wizard on the columns step so the user can fix
// the drafts; entering ":q" at any prompt cancels.
func (a *App) CreateTable(ctx context.Context) error {
	if !a.isAuthenticated() {
		fmt.Println("Log in first")
		return nil
	}

	w := grid.NewCreateTableWizard(a.api)
	fmt.Printf("Create a new table (enter %s to cancel)\n", wizardCancel)

	for w.Step() == grid.StepName {
		name, err := getSimpleText(a.reader, "Table name", os.Stdout)
		if err != nil {
			return err
		}
		if name == wizardCancel {
			fmt.Println("Cancelled")
			return nil
		}
		w.SetName(name)

		if err := w.Next(); err != nil {
			fmt.Println(err)
			continue
		}

		countInput, err := getSimpleText(a.reader,
			fmt.Sprintf("Number of columns (1-10) [%d]", w.ColumnCount()), os.Stdout)
		if err != nil {
			return err
		}
		if countInput == wizardCancel {
			fmt.Println("Cancelled")
			return nil
		}
		if countInput != "" {
			count, convErr := strconv.Atoi(countInput)
			if convErr != nil {
				fmt.Println("Enter a number between 1 and 10")
				w.Back()
				continue
			}
			if err := w.SetColumnCount(count); err != nil {
				fmt.Println(err)
				w.Back()
				continue
			}
		}
	}

	for {
		if err := a.fillColumns(w); err != nil {
			if errors.Is(err, errWizardCancelled) {
				fmt.Println("Cancelled")
				return nil
			}
			return err
		}

		fmt.Println("Creating...")
		table, err := w.Submit(ctx)
		if err != nil {
			// Stay on the columns step; let the user fix the drafts.
			fmt.Println(err)
			continue
		}

		fmt.Printf("Table %q created\n", table.Name)
		a.tables = append(a.tables, *table)
		return nil
	}
}

var errWizardCancelled = errors.New("wizard cancelled")

func (a *App) fillColumns(w *grid.CreateTableWizard) error {
	for i := 0; i < w.ColumnCount(); i++ {
		current := w.Drafts()[i]

		prompt := fmt.Sprintf("Column %d name", i+1)
		if current.Name != "" {
			prompt = fmt.Sprintf("Column %d name [%s]", i+1, current.Name)
		}
		name, err := getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return err
		}
		if name == wizardCancel {
			return errWizardCancelled
		}
		if name != "" {
			if err := w.SetDraftName(i, name); err != nil {
				return err
			}
		}

		typeInput, err := getSimpleText(a.reader,
			fmt.Sprintf("Column %d type (text/date) [%s]", i+1, current.Type), os.Stdout)
		if err != nil {
			return err
		}
		if typeInput == wizardCancel {
			return errWizardCancelled
		}
		if typeInput != "" {
			ctype, parseErr := models.ParseColumnType(typeInput)
			if parseErr != nil {
				fmt.Println("Unknown type, keeping", current.Type)
			} else if err := w.SetDraftType(i, ctype); err != nil {
				return err
			}
		}
	}

	return nil
}

// OpenTable resolves arg against the cached listing (1-based index) or
// treats it as a table id, then enters the live grid view.
func (a *App) OpenTable(ctx context.Context, arg string) error {
	if !a.isAuthenticated() {
		fmt.Println("Log in first")
		return nil
	}

	if len(a.tables) == 0 {
		tables, err := a.api.ListTables(ctx)
		if err != nil {
			fmt.Println("Failed to list tables:", err)
			return err
		}
		a.tables = tables
	}

	table, ok := a.resolveTable(arg)
	if !ok {
		fmt.Println("No such table:", arg)
		return nil
	}

	return a.runTableView(ctx, table)
}

func (a *App) resolveTable(arg string) (models.Table, bool) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n >= 1 && n <= len(a.tables) {
			return a.tables[n-1], true
		}
		return models.Table{}, false
	}
	for _, t := range a.tables {
		if t.ID == arg {
			return t, true
		}
	}
	return models.Table{}, false
}
