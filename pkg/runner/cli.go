package runner

import (
	"os"

	"github.com/travigo/trainsim/pkg/config"
	"github.com/travigo/trainsim/pkg/dataimporter"
	"github.com/travigo/trainsim/pkg/simulator"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "run",
			Usage: "Run a fixed number of ticks and report every train",
			Flags: append(config.Flags(),
				&cli.IntFlag{
					Name:  "steps",
					Value: 1,
					Usage: "number of ticks to simulate",
				},
				&cli.StringFlag{
					Name:  "start",
					Usage: "pin the first train to station:direction, eg. Kings:N",
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

				_, err = Run(c.Context, os.Stdout, graph, simulator.NewFactory(scenario.Seed), Options{
					Trains:      scenario.Trains,
					Steps:       c.Int("steps"),
					Parallelism: scenario.Parallelism,
					Start:       c.String("start"),
				})

				return err
			},
		},
		{
			Name:  "inspect",
			Usage: "Print the station graph built from the input files",
			Flags: append(config.Flags(),
				&cli.BoolFlag{
					Name:  "sort",
					Usage: "list stations alphabetically",
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

				return Inspect(os.Stdout, graph, c.Bool("sort"))
			},
		},
	}
}
