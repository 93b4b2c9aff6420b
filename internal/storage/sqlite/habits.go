package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	apperrors "github.com/julianstephens/habittracker/internal/errors"
	"github.com/julianstephens/habittracker/internal/models"
	"github.com/julianstephens/habittracker/internal/utils"
)

func validateDate(date time.Time) error {
	if date.IsZero() {
		return &apperrors.ValidationError{Field: "date", Reason: "date is required"}
	}
	return nil
}

func (s *Store) Insert(date time.Time, quantity int) (int64, error) {
	if err := validateDate(date); err != nil {
		return 0, err
	}
	db, err := s.conn("insert")
	if err != nil {
		return 0, err
	}

	result, err := db.Exec(`INSERT INTO habits (date, quantity) VALUES (?, ?)`,
		utils.FormatStoredDate(date), quantity)
	if err != nil {
		return 0, apperrors.Fault("insert", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperrors.Fault("insert", err)
	}
	return id, nil
}

func (s *Store) Get(id int64) (models.HabitEntry, error) {
	db, err := s.conn("get")
	if err != nil {
		return models.HabitEntry{}, err
	}

	row := db.QueryRow(`SELECT id, date, quantity FROM habits WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HabitEntry{}, &apperrors.NotFoundError{ID: id}
	}
	if err != nil {
		return models.HabitEntry{}, apperrors.Fault("get", err)
	}
	return entry, nil
}

func (s *Store) Exists(id int64) (bool, error) {
	db, err := s.conn("exists")
	if err != nil {
		return false, err
	}

	var exists bool
	if err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM habits WHERE id = ?)`, id).Scan(&exists); err != nil {
		return false, apperrors.Fault("exists", err)
	}
	return exists, nil
}

func (s *Store) Delete(id int64) (int64, error) {
	db, err := s.conn("delete")
	if err != nil {
		return 0, err
	}

	result, err := db.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return 0, apperrors.Fault("delete", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Fault("delete", err)
	}
	return rows, nil
}

func (s *Store) Update(id int64, date time.Time, quantity int) (int64, error) {
	if err := validateDate(date); err != nil {
		return 0, err
	}
	db, err := s.conn("update")
	if err != nil {
		return 0, err
	}

	result, err := db.Exec(`UPDATE habits SET date = ?, quantity = ? WHERE id = ?`,
		utils.FormatStoredDate(date), quantity, id)
	if err != nil {
		return 0, apperrors.Fault("update", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Fault("update", err)
	}
	return rows, nil
}

func (s *Store) ListAll() ([]models.HabitEntry, error) {
	db, err := s.conn("list")
	if err != nil {
		return nil, err
	}

	// Legacy encodings do not sort as text, so ordering by date happens after decoding.
	rows, err := db.Query(`SELECT id, date, quantity FROM habits ORDER BY id`)
	if err != nil {
		return nil, apperrors.Fault("list", err)
	}
	defer rows.Close()

	entries := []models.HabitEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.Fault("list", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Fault("list", err)
	}

	slices.SortStableFunc(entries, func(a, b models.HabitEntry) int {
		return b.Date.Compare(a.Date)
	})
	return entries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (models.HabitEntry, error) {
	var e models.HabitEntry
	var date string
	var quantity sql.NullInt64

	if err := row.Scan(&e.ID, &date, &quantity); err != nil {
		return models.HabitEntry{}, err
	}

	d, err := utils.ParseStoredDate(date)
	if err != nil {
		return models.HabitEntry{}, fmt.Errorf("failed to parse date for entry %d: %w", e.ID, err)
	}
	e.Date = d
	e.Quantity = int(quantity.Int64)

	return e, nil
}
