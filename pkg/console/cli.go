package console

import (
	"os"

	"github.com/travigo/trainsim/pkg/config"
	"github.com/travigo/trainsim/pkg/dataimporter"
	"github.com/travigo/trainsim/pkg/simulator"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "Run the interactive simulation menu",
		Flags: config.Flags(),
		Action: func(c *cli.Context) error {
			scenario, err := config.FromCLI(c)
			if err != nil {
				return err
			}

			graph, err := dataimporter.LoadGraph(scenario.Connections, scenario.Stations)
			if err != nil {
				return err
			}

			menu := &Menu{
				In:          os.Stdin,
				Out:         os.Stdout,
				Graph:       graph,
				Factory:     simulator.NewFactory(scenario.Seed),
				Parallelism: scenario.Parallelism,
			}

			return menu.Run(c.Context)
		},
	}
}
