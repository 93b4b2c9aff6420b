package utils

import (
	"fmt"
	"regexp"
	"time"

	"github.com/julianstephens/habittracker/internal/constants"
	apperrors "github.com/julianstephens/habittracker/internal/errors"
)

// time.Parse accepts signed years, so the shape is checked first.
var inputDatePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// storedDateLayouts lists every encoding a habits row may carry, canonical first.
var storedDateLayouts = []string{
	constants.StorageDateFormat,
	constants.DisplayDateFormat,
	constants.LegacyShortDateFormat,
}

// ParseInputDate parses user input strictly as DD-MM-YYYY.
func ParseInputDate(s string) (time.Time, error) {
	if !inputDatePattern.MatchString(s) {
		return time.Time{}, &apperrors.ValidationError{
			Field:  "date",
			Value:  s,
			Reason: "expected format dd-mm-yyyy",
		}
	}
	t, err := time.Parse(constants.DisplayDateFormat, s)
	if err != nil {
		return time.Time{}, &apperrors.ValidationError{
			Field:  "date",
			Value:  s,
			Reason: "not a calendar date",
		}
	}
	return t, nil
}

// ParseStoredDate decodes a date column. Two-digit years follow the time package pivot
// (69-99 map to 19xx, 00-68 to 20xx).
func ParseStoredDate(s string) (time.Time, error) {
	for _, layout := range storedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized stored date %q", s)
}

// FormatStoredDate encodes a date for new writes (YYYY-MM-DD).
func FormatStoredDate(t time.Time) string {
	return t.Format(constants.StorageDateFormat)
}

// FormatDisplayDate renders a date for the console (DD-MM-YYYY).
func FormatDisplayDate(t time.Time) string {
	return t.Format(constants.DisplayDateFormat)
}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
