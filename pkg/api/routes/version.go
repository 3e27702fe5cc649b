package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/trainsim/pkg/simulator"
)

const Version = "v0.2"

func VersionRouter(router fiber.Router, fleet *simulator.Fleet) {
	router.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":    "trainsim",
			"version": Version,
			"trains":  fleet.Len(),
		})
	})
}
