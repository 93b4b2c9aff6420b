package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habittracker/internal/cli"
	"github.com/julianstephens/habittracker/internal/constants"
	apperrors "github.com/julianstephens/habittracker/internal/errors"
	"github.com/julianstephens/habittracker/internal/logger"
	"github.com/julianstephens/habittracker/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	DB      string `name:"db" help:"Path to the habits database file." type:"path" env:"HABITTRACKER_DB" default:"${default_db}"`
	Debug   bool   `help:"Write debug logs to stderr as well as the log file." env:"HABITTRACKER_DEBUG"`

	Shell  cli.ShellCmd  `cmd:"" help:"Run the interactive habit menu." default:"1"`
	Browse cli.BrowseCmd `cmd:"" help:"Browse habit entries in a scrollable table."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks on the habits database."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track dated, quantified habit entries in a local database"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":    constants.Version,
			"default_db": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.DB),
	}); err != nil {
		apperrors.Fatal(err)
	}

	store := sqlite.NewStore(CLI.DB)
	if err := store.EnsureSchema(); err != nil {
		apperrors.Fatal(err)
	}
	logger.Debug("Opened habits database", "path", store.GetConfigPath())

	appCtx := &cli.Context{
		Store: store,
		In:    os.Stdin,
		Out:   os.Stdout,
	}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close database", "error", closeErr)
	}
	apperrors.Fatal(err)
}
