package utils

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/julianstephens/habittracker/internal/errors"
)

func TestParseInputDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "01-01-2024",
			want:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap day",
			input: "29-02-2024",
			want:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "not a leap year",
			input:   "29-02-2023",
			wantErr: true,
		},
		{
			name:    "day out of range",
			input:   "32-01-2024",
			wantErr: true,
		},
		{
			name:    "month out of range",
			input:   "01-13-2024",
			wantErr: true,
		},
		{
			name:    "two digit year",
			input:   "01-01-24",
			wantErr: true,
		},
		{
			name:    "single digit day",
			input:   "1-01-2024",
			wantErr: true,
		},
		{
			name:    "iso format",
			input:   "2024-01-01",
			wantErr: true,
		},
		{
			name:    "signed year",
			input:   "01-01-+024",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInputDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInputDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				var verr *apperrors.ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("ParseInputDate(%q) error type = %T, want *ValidationError", tt.input, err)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseInputDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseStoredDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "canonical",
			input: "2024-01-02",
			want:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "legacy four digit year",
			input: "02-01-2024",
			want:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "legacy two digit year",
			input: "02-01-24",
			want:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "legacy two digit year before pivot",
			input: "02-01-99",
			want:  time.Date(1999, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStoredDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStoredDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseStoredDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateRoundTrip(t *testing.T) {
	inputs := []string{"01-01-2024", "31-12-1999", "29-02-2000", "15-06-2068", "15-06-2069"}

	for _, input := range inputs {
		parsed, err := ParseInputDate(input)
		if err != nil {
			t.Fatalf("ParseInputDate(%q) failed: %v", input, err)
		}

		stored := FormatStoredDate(parsed)
		loaded, err := ParseStoredDate(stored)
		if err != nil {
			t.Fatalf("ParseStoredDate(%q) failed: %v", stored, err)
		}

		if got := FormatDisplayDate(loaded); got != input {
			t.Errorf("round trip of %q produced %q (stored as %q)", input, got, stored)
		}
	}
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	got := Day(time.Date(2024, 3, 10, 23, 30, 0, 0, loc))
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Day() = %v, want %v", got, want)
	}
}
