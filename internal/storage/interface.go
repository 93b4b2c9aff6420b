package storage

import (
	"time"

	"github.com/julianstephens/habittracker/internal/models"
)

type Provider interface {
	// Lifecycle
	EnsureSchema() error
	// Verify checks file integrity and that the schema is present.
	Verify() error
	Close() error

	// Habit entries
	Insert(date time.Time, quantity int) (int64, error)
	Get(id int64) (models.HabitEntry, error)
	Exists(id int64) (bool, error)
	// Delete returns the number of rows removed; zero is not an error.
	Delete(id int64) (int64, error)
	// Update overwrites date and quantity and returns the number of rows changed.
	// Callers wanting a distinct not-found message should call Exists first.
	Update(id int64, date time.Time, quantity int) (int64, error)
	// ListAll returns every entry ordered by date descending, ties by id ascending.
	ListAll() ([]models.HabitEntry, error)

	// Utils
	GetConfigPath() string
}
