package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/backuporganizer/internal/client/ui"
)

func (a *App) Home(ctx context.Context) error {
	a.Navigate(ui.IndexHref)
	return a.settle(ctx)
}

func (a *App) Show(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: show <name>", errUsage)
	}
	a.Navigate(ui.InfoHref(name))
	return a.settle(ctx)
}

func (a *App) Refresh(ctx context.Context) error {
	a.Reload()
	return a.settle(ctx)
}

func (a *App) Toggle(ctx context.Context) error {
	if a.index == nil {
		return fmt.Errorf("toggle: %w", errWrongPage)
	}
	return a.do(ctx, func() error { return a.index.Renderer.Toggle(ctx) })
}

// Search types text into the search box as a single input event.
func (a *App) Search(ctx context.Context, text string) error {
	bar, ok := a.searchBar()
	if !ok {
		return fmt.Errorf("search: %w", errWrongPage)
	}
	return a.do(ctx, func() error { return bar.Engine.Input(ctx, text) })
}

// Blur moves focus out of the search box.
func (a *App) Blur(context.Context) error {
	bar, ok := a.searchBar()
	if !ok {
		return fmt.Errorf("blur: %w", errWrongPage)
	}
	bar.Focus.Set("")
	bar.Engine.Blur()
	return nil
}

// Open follows the n-th suggestion, counting from one.
func (a *App) Open(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("%w: open <n>", errUsage)
	}
	bar, ok := a.searchBar()
	if !ok {
		return fmt.Errorf("open: %w", errWrongPage)
	}
	if err := bar.Engine.Select(n - 1); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return a.settle(ctx)
}

// Add fills the new-collection form interactively and submits it.
func (a *App) Add(ctx context.Context) error {
	if a.index == nil {
		return fmt.Errorf("add: %w", errWrongPage)
	}
	form := a.index.Form

	for _, field := range ui.CollectionFields {
		prompt := field
		if field == ui.FieldCreationDate || field == ui.FieldModificationDate {
			prompt += " (empty to let the server decide)"
		}
		v, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		form.SetValue(field, v)
	}
	updated, err := GetBool(a.reader, ui.FieldUpdated, form.Checked(ui.FieldUpdated), a.out)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	form.SetChecked(ui.FieldUpdated, updated)

	return a.do(ctx, func() error { return a.index.Creator.Create(ctx) })
}

// Edit walks the collection form, keeping each value the user skips, and saves.
func (a *App) Edit(ctx context.Context) error {
	if a.info == nil {
		return fmt.Errorf("edit: %w", errWrongPage)
	}
	form := a.info.Form

	for _, field := range ui.CollectionFields {
		v, err := GetWithDefault(a.reader, field, form.Value(field), a.out)
		if err != nil {
			return err
		}
		form.SetValue(field, v)
	}
	updated, err := GetBool(a.reader, ui.FieldUpdated, form.Checked(ui.FieldUpdated), a.out)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	form.SetChecked(ui.FieldUpdated, updated)

	return a.do(ctx, func() error { return a.info.Detail.Save(ctx) })
}

func (a *App) Delete(ctx context.Context) error {
	if a.info == nil {
		return fmt.Errorf("delete: %w", errWrongPage)
	}
	sure, err := GetBool(a.reader, fmt.Sprintf("Delete collection %q?", a.info.Name), false, a.out)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if !sure {
		return nil
	}
	return a.do(ctx, func() error { return a.info.Detail.Remove(ctx) })
}

// Backup fills the backup form and creates the backup.
func (a *App) Backup(ctx context.Context) error {
	if a.info == nil {
		return fmt.Errorf("backup: %w", errWrongPage)
	}
	form := a.info.BackupForm

	for _, field := range ui.BackupFields {
		prompt := field
		if field == ui.FieldBackupDate {
			prompt += " (empty for now)"
		}
		v, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		form.SetValue(field, v)
	}
	return a.do(ctx, func() error { return a.info.BackupList.Create(ctx) })
}

// Unbackup clicks the delete button of the named backup row.
func (a *App) Unbackup(ctx context.Context, name string) error {
	if a.info == nil {
		return fmt.Errorf("unbackup: %w", errWrongPage)
	}
	if name == "" {
		return fmt.Errorf("%w: unbackup <name>", errUsage)
	}
	return a.do(ctx, func() error { return a.info.BackupList.Delete(ctx, name) })
}
