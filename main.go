package main

import (
	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"
)

// Globals are flags shared by every command.
type Globals struct {
	Debug bool `help:"Enable debug logging"`
	JSON  bool `help:"Output JSON logs instead of console format"`
}

type CLI struct {
	Globals

	Play       PlayCmd       `cmd:"" help:"Play one game with a configured agent"`
	Experiment ExperimentCmd `cmd:"" help:"Play many games per agent and write CSV records"`
	Solve      SolveCmd      `cmd:"" help:"Find a path to a cell with a graph search"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pacai"),
		kong.Description("Search and game-tree agents for a grid Pacman world"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	if cli.JSON {
		log.Logger = SetupStructuredLogger(cli.Debug)
	} else {
		log.Logger = SetupLogger(cli.Debug)
	}

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
