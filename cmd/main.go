// Package cmd implements the command line application that updates a ledger
// price database.
package cmd

import (
	"github.com/google/subcommands"
)

// Commands are the subcommands of the application.
var Commands = []subcommands.Command{
	&runCmd{},
	&planCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}
