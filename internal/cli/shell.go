package cli

import "github.com/julianstephens/habittracker/internal/shell"

type ShellCmd struct{}

func (c *ShellCmd) Run(ctx *Context) error {
	return shell.New(ctx.Store, ctx.In, ctx.Out).Run()
}
