package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/trainsim/pkg/api"
	"github.com/travigo/trainsim/pkg/console"
	"github.com/travigo/trainsim/pkg/dataimporter"
	"github.com/travigo/trainsim/pkg/runner"
	"github.com/urfave/cli/v2"
)

func main() {
	if os.Getenv("TRAINSIM_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TRAINSIM_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	commands := []*cli.Command{
		console.RegisterCLI(),
		api.RegisterCLI(),
		dataimporter.RegisterCLI(),
	}
	commands = append(commands, runner.RegisterCLI()...)

	app := &cli.App{
		Name:        "trainsim",
		Description: "Stochastic simulation of trains moving across a coloured line network",

		Commands: commands,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
