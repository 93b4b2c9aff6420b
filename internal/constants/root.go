package constants

// MenuChoice is a selection on the main menu
type MenuChoice string

const (
	AppName           = "habittracker"
	DefaultConfigPath = "~/.config/habittracker/habit-tracker.db"
	Version           = "v1.0.0"

	// StorageDateFormat is the canonical on-disk date encoding for new writes (YYYY-MM-DD)
	StorageDateFormat = "2006-01-02"

	// DisplayDateFormat is used for user input and table output (DD-MM-YYYY)
	DisplayDateFormat = "02-01-2006"

	// LegacyShortDateFormat is the two-digit-year encoding found in older databases (DD-MM-YY)
	LegacyShortDateFormat = "02-01-06"

	// AbortInput cancels the current prompt and returns to the main menu
	AbortInput = "0"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habittracker-"
	BackupFileSuffix = ".db"

	// Menu choices
	ChoiceExit   MenuChoice = "0"
	ChoiceList   MenuChoice = "1"
	ChoiceInsert MenuChoice = "2"
	ChoiceDelete MenuChoice = "3"
	ChoiceUpdate MenuChoice = "4"
)
