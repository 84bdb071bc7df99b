package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/etnz/budgify/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, "budgify")
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	// exits when invoked by the shell to complete a command line.
	cmd.Completion(flag.CommandLine).Complete("budgify")

	flag.Parse()
	if !cmd.Verbose() {
		log.SetOutput(io.Discard)
	}
	os.Exit(int(commander.Execute(context.Background())))
}
