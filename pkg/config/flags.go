package config

import (
	"math/rand/v2"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "scenario YAML file",
		},
		&cli.StringFlag{
			Name:  "connections",
			Usage: "connections CSV file (from,to,colour,direction)",
		},
		&cli.StringFlag{
			Name:  "stations",
			Usage: "station delays CSV file (name,probability)",
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "random seed, the same seed replays the same simulation",
		},
		&cli.IntFlag{
			Name:  "trains",
			Usage: "number of trains to simulate",
		},
		&cli.IntFlag{
			Name:  "parallelism",
			Usage: "maximum number of trains stepped at once",
		},
	}
}

// FromCLI loads the scenario named by --config and applies any flags that
// were set explicitly on top of it
func FromCLI(c *cli.Context) (Scenario, error) {
	scenario, err := Load(c.String("config"))
	if err != nil {
		return scenario, err
	}

	if c.IsSet("connections") {
		scenario.Connections = c.String("connections")
	}
	if c.IsSet("stations") {
		scenario.Stations = c.String("stations")
	}
	if c.IsSet("seed") {
		scenario.Seed = c.Uint64("seed")
	}
	if c.IsSet("trains") {
		scenario.Trains = c.Int("trains")
	}
	if c.IsSet("parallelism") {
		scenario.Parallelism = c.Int("parallelism")
	}
	if c.IsSet("listen") {
		scenario.Listen = c.String("listen")
	}

	if scenario.Seed == 0 {
		scenario.Seed = rand.Uint64()
		log.Info().Uint64("seed", scenario.Seed).Msg("No seed configured, pass --seed to replay this run")
	}

	return scenario, scenario.Validate()
}
