package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/trainsim/pkg/config"
	"github.com/travigo/trainsim/pkg/dataimporter"
	"github.com/travigo/trainsim/pkg/simulator"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Serves a simulation over HTTP",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: append(config.Flags(),
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server",
					},
				),
				Action: func(c *cli.Context) error {
					scenario, err := config.FromCLI(c)
					if err != nil {
						return err
					}

					graph, err := dataimporter.LoadGraph(scenario.Connections, scenario.Stations)
					if err != nil {
						return err
					}

					fleet, err := simulator.NewFleet(graph, simulator.NewFactory(scenario.Seed), scenario.Trains, scenario.Parallelism)
					if err != nil {
						return err
					}

					log.Info().
						Str("listen", scenario.Listen).
						Int("stations", graph.Len()).
						Int("trains", fleet.Len()).
						Msg("Starting web api")

					return SetupServer(scenario.Listen, fleet)
				},
			},
		},
	}
}
