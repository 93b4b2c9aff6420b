package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habittracker/internal/tui"
)

type BrowseCmd struct{}

func (c *BrowseCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list habit entries: %w", err)
	}

	p := tea.NewProgram(tui.NewModel(entries), tea.WithAltScreen(), tea.WithInput(ctx.In), tea.WithOutput(ctx.Out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse view failed: %w", err)
	}
	return nil
}
