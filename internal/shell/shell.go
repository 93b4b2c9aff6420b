package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/julianstephens/habittracker/internal/constants"
	"github.com/julianstephens/habittracker/internal/logger"
	"github.com/julianstephens/habittracker/internal/storage"
)

const menuText = `
What would you like to do?

Type 0 to Close Application.
Type 1 to View All Records.
Type 2 to Insert Record.
Type 3 to Delete Record.
Type 4 to Update Record.
------------------------------------------`

// Shell is the menu-driven console over a habit store.
type Shell struct {
	store storage.Provider
	in    *bufio.Reader
	out   io.Writer
}

func New(store storage.Provider, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		store: store,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

// Run shows the main menu until the user exits or input ends.
// Only storage and read failures are returned.
func (s *Shell) Run() error {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, titleStyle.Render("MAIN MENU"))
		fmt.Fprintln(s.out, menuText)

		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		choice := constants.MenuChoice(line)
		logger.Debug("Menu selection", "choice", choice)

		switch choice {
		case constants.ChoiceExit:
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		case constants.ChoiceList:
			err = s.listEntries()
		case constants.ChoiceInsert:
			err = s.insertEntry()
		case constants.ChoiceDelete:
			err = s.deleteEntry()
		case constants.ChoiceUpdate:
			err = s.updateEntry()
		default:
			s.printError("Invalid choice. Please type a number from 0 to 4.")
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) listEntries() error {
	entries, err := s.store.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list habit entries: %w", err)
	}
	fmt.Fprintln(s.out, RenderEntries(entries))
	return nil
}

func (s *Shell) insertEntry() error {
	date, ok, err := s.readDate("Please insert the date")
	if err != nil || !ok {
		return err
	}

	quantity, ok, err := s.readInt(fmt.Sprintf("Please insert the quantity (whole number). Type %s to return to main menu.", constants.AbortInput))
	if err != nil || !ok {
		return err
	}

	id, err := s.store.Insert(date, quantity)
	if err != nil {
		return fmt.Errorf("failed to insert habit entry: %w", err)
	}

	logger.Info("Inserted habit entry", "id", id)
	s.printSuccess(fmt.Sprintf("Record with Id %d was added.", id))
	return nil
}

func (s *Shell) deleteEntry() error {
	if err := s.listEntries(); err != nil {
		return err
	}

	for {
		id, ok, err := s.readInt(fmt.Sprintf("Type the Id of the record you want to delete or type %s to return to main menu.", constants.AbortInput))
		if err != nil || !ok {
			return err
		}

		affected, err := s.store.Delete(int64(id))
		if err != nil {
			return fmt.Errorf("failed to delete habit entry: %w", err)
		}
		if affected == 0 {
			s.printError(fmt.Sprintf("Record with Id %d does not exist.", id))
			continue
		}

		logger.Info("Deleted habit entry", "id", id)
		s.printSuccess(fmt.Sprintf("Record with Id %d was deleted.", id))
		return nil
	}
}

func (s *Shell) updateEntry() error {
	if err := s.listEntries(); err != nil {
		return err
	}

	id, ok, err := s.readInt(fmt.Sprintf("Type the Id of the record you want to update or type %s to return to main menu.", constants.AbortInput))
	if err != nil || !ok {
		return err
	}

	exists, err := s.store.Exists(int64(id))
	if err != nil {
		return fmt.Errorf("failed to look up habit entry: %w", err)
	}
	if !exists {
		s.printError(fmt.Sprintf("Record with Id %d does not exist.", id))
		return nil
	}

	date, ok, err := s.readDate("Please insert the new date")
	if err != nil || !ok {
		return err
	}

	quantity, ok, err := s.readInt(fmt.Sprintf("Please insert the new quantity (whole number). Type %s to return to main menu.", constants.AbortInput))
	if err != nil || !ok {
		return err
	}

	if _, err := s.store.Update(int64(id), date, quantity); err != nil {
		return fmt.Errorf("failed to update habit entry: %w", err)
	}

	logger.Info("Updated habit entry", "id", id)
	s.printSuccess(fmt.Sprintf("Record with Id %d was updated.", id))
	return nil
}

func (s *Shell) printError(msg string) {
	fmt.Fprintln(s.out, errorStyle.Render(msg))
}

func (s *Shell) printSuccess(msg string) {
	fmt.Fprintln(s.out, successStyle.Render(msg))
}
