package dataimporter

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/trainsim/pkg/network"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Load connections & station delay files into a station graph",
		Subcommands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "Check the input files and report every rejected record",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "connections",
						Usage:    "connections CSV file (from,to,colour,direction)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "stations",
						Usage: "station delays CSV file (name,probability)",
					},
				},
				Action: func(c *cli.Context) error {
					graph := network.NewGraph()

					connections, err := LoadConnectionsFile(c.String("connections"), graph)
					if err != nil {
						return err
					}
					failed := len(connections.Failures)

					if c.IsSet("stations") {
						stations, err := LoadStationsFile(c.String("stations"), graph)
						if err != nil {
							return err
						}
						failed += len(stations.Failures)
					}

					log.Info().
						Int("stations", graph.Len()).
						Strs("lines", graph.Colours()).
						Msg("Built station graph")

					if failed > 0 {
						return fmt.Errorf("%d records rejected", failed)
					}

					return nil
				},
			},
		},
	}
}
