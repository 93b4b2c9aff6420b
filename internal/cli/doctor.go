package cli

import (
	"fmt"

	"github.com/julianstephens/habittracker/internal/backup"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Out, "Running diagnostics...")
	fmt.Fprintln(ctx.Out)

	hasError := false

	if err := ctx.Store.Verify(); err != nil {
		fmt.Fprintf(ctx.Out, "❌ Database integrity: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(ctx.Out, "✓ Database integrity: OK\n")
	}

	// Listing decodes every stored date, so legacy rows are checked too
	if count, err := checkEntriesReadable(ctx); err != nil {
		fmt.Fprintf(ctx.Out, "❌ Habit entries readable: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(ctx.Out, "✓ Habit entries readable: OK (%d entries)\n", count)
	}

	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Fprintf(ctx.Out, "⚠ Backups present: WARNING\n   %v\n", err)
	} else {
		fmt.Fprintf(ctx.Out, "✓ Backups present: OK\n")
	}

	fmt.Fprintln(ctx.Out)
	if hasError {
		fmt.Fprintln(ctx.Out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(ctx.Out, "All diagnostics passed!")
	return nil
}

func checkEntriesReadable(ctx *Context) (int, error) {
	entries, err := ctx.Store.ListAll()
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s (run 'habittracker backup')", mgr.GetBackupDir())
	}
	return nil
}
