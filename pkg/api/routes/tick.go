package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/travigo/trainsim/pkg/simulator"
)

const maxTickSteps = 1000

func TickRouter(router fiber.Router, fleet *simulator.Fleet) {
	router.Post("/", func(c *fiber.Ctx) error {
		return tick(c, fleet)
	})
}

func tick(c *fiber.Ctx, fleet *simulator.Fleet) error {
	steps := c.QueryInt("steps", 1)
	if steps < 1 || steps > maxTickSteps {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "steps must be between 1 and 1000",
		})
	}

	for i := 0; i < steps; i++ {
		if err := fleet.Tick(c.Context()); err != nil {
			log.Error().Err(err).Int("step", i).Msg("Failed to tick fleet")

			c.Status(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"tick": fleet.Ticks(),
	})
}
