package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/habittracker/internal/constants"
	apperrors "github.com/julianstephens/habittracker/internal/errors"
	"github.com/julianstephens/habittracker/internal/utils"
)

// readLine returns the next trimmed line, or io.EOF once input is exhausted.
// Lines are unbounded so an overlong entry is just invalid input.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimSpace(line), nil
			}
			return "", io.EOF
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readDate prompts until a valid dd-mm-yyyy date is entered.
// ok is false when the user typed the abort sentinel.
func (s *Shell) readDate(prompt string) (time.Time, bool, error) {
	for {
		fmt.Fprintf(s.out, "%s (Format: dd-mm-yyyy). Type %s to return to main menu.\n", prompt, constants.AbortInput)

		line, err := s.readLine()
		if err != nil {
			return time.Time{}, false, err
		}
		if line == constants.AbortInput {
			return time.Time{}, false, nil
		}

		date, err := utils.ParseInputDate(line)
		if err != nil {
			s.printError(validationHint(err, "Invalid date. Format: dd-mm-yyyy."))
			continue
		}
		return date, true, nil
	}
}

// readInt prompts until a base-10 integer is entered.
// ok is false when the user typed the abort sentinel.
func (s *Shell) readInt(prompt string) (int, bool, error) {
	for {
		fmt.Fprintln(s.out, prompt)

		line, err := s.readLine()
		if err != nil {
			return 0, false, err
		}
		if line == constants.AbortInput {
			return 0, false, nil
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			s.printError(fmt.Sprintf("Invalid number %q. Try again or type %s to return to main menu.", shorten(line), constants.AbortInput))
			continue
		}
		return n, true, nil
	}
}

func validationHint(err error, fallback string) string {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("Invalid %s %q: %s. Try again or type %s to return to main menu.",
			verr.Field, shorten(verr.Value), verr.Reason, constants.AbortInput)
	}
	return fallback
}

// shorten keeps echoed input to a readable length.
func shorten(s string) string {
	const maxEcho = 32
	r := []rune(s)
	if len(r) <= maxEcho {
		return s
	}
	return string(r[:maxEcho]) + "..."
}
