package cli

import (
	"io"

	"github.com/julianstephens/habittracker/internal/storage"
)

// Context is shared by every command. In and Out are the console streams.
type Context struct {
	Store storage.Provider
	In    io.Reader
	Out   io.Writer
}
