package models

import "time"

// HabitEntry is a single dated, quantified record of a tracked habit
type HabitEntry struct {
	ID       int64     `json:"id"`
	Date     time.Time `json:"date"` // calendar day, zero clock, UTC
	Quantity int       `json:"quantity"`
}
