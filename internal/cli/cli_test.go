package cli

import (
	"bytes"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/habittracker/internal/backup"
	"github.com/julianstephens/habittracker/internal/storage/sqlite"
)

func setupTestContext(t *testing.T, input string) (*Context, *sqlite.Store, *bytes.Buffer) {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "habit-tracker.db"))
	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	out := &bytes.Buffer{}
	return &Context{Store: store, In: strings.NewReader(input), Out: out}, store, out
}

func TestShellCmd(t *testing.T) {
	ctx, store, out := setupTestContext(t, "2\n01-01-2024\n5\n1\n0\n")

	if err := (&ShellCmd{}).Run(ctx); err != nil {
		t.Fatalf("shell command failed: %v", err)
	}
	if !strings.Contains(out.String(), "01-01-2024") {
		t.Errorf("listing missing inserted entry:\n%s", out.String())
	}

	entries, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d entries, want 1", len(entries))
	}
}

func TestBackupCommands(t *testing.T) {
	ctx, store, out := setupTestContext(t, "")
	if _, err := store.Insert(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 5); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("expected empty backup listing, got:\n%s", out.String())
	}

	out.Reset()
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	if !strings.Contains(out.String(), "Backup created") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.Contains(out.String(), "1 total") {
		t.Errorf("expected one backup, got:\n%s", out.String())
	}
}

func TestBackupRestoreCmd(t *testing.T) {
	ctx, store, out := setupTestContext(t, "")
	if _, err := store.Insert(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 5); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	backupPath, err := backup.NewManager(store.GetConfigPath()).CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if _, err := store.Insert(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 6); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	cmd := &BackupRestoreCmd{BackupFile: filepath.Base(backupPath), Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("backup restore failed: %v", err)
	}
	if !strings.Contains(out.String(), "restored successfully") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	entries, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d entries after restore, want 1", len(entries))
	}
}

func TestBackupRestoreCmdMissingFile(t *testing.T) {
	ctx, _, _ := setupTestContext(t, "")

	cmd := &BackupRestoreCmd{BackupFile: "habittracker-19990101-000000.db", Yes: true}
	if err := cmd.Run(ctx); err == nil {
		t.Error("restore of a missing backup should fail")
	}
}

func TestDoctorCmd(t *testing.T) {
	t.Run("healthy store", func(t *testing.T) {
		ctx, _, out := setupTestContext(t, "")

		if err := (&DoctorCmd{}).Run(ctx); err != nil {
			t.Fatalf("doctor failed: %v\n%s", err, out.String())
		}
		if !strings.Contains(out.String(), "⚠ Backups present: WARNING") {
			t.Errorf("expected backup warning, got:\n%s", out.String())
		}
	})

	t.Run("missing habits table", func(t *testing.T) {
		ctx, store, out := setupTestContext(t, "")
		execRaw(t, store.GetConfigPath(), "DROP TABLE habits")

		if err := (&DoctorCmd{}).Run(ctx); err == nil {
			t.Errorf("doctor passed without a habits table:\n%s", out.String())
		}
		if !strings.Contains(out.String(), "❌ Database integrity: FAIL") {
			t.Errorf("expected integrity failure, got:\n%s", out.String())
		}
	})

	t.Run("undecodable entry", func(t *testing.T) {
		ctx, store, out := setupTestContext(t, "")
		corruptEntry(t, store.GetConfigPath())

		if err := (&DoctorCmd{}).Run(ctx); err == nil {
			t.Errorf("doctor passed with an undecodable entry:\n%s", out.String())
		}
		if !strings.Contains(out.String(), "❌ Habit entries readable: FAIL") {
			t.Errorf("expected entries failure, got:\n%s", out.String())
		}
	})
}

// corruptEntry writes a row whose date no reader understands.
func corruptEntry(t *testing.T, dbPath string) {
	t.Helper()
	execRaw(t, dbPath, "INSERT INTO habits (date, quantity) VALUES (?, ?)", "someday", 1)
}

// execRaw runs a statement through a separate handle, bypassing the store.
func execRaw(t *testing.T, dbPath, query string, args ...any) {
	t.Helper()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("failed to execute %q: %v", query, err)
	}
}
