package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/trainsim/pkg/report"
	"github.com/travigo/trainsim/pkg/simulator"
)

type trainDetail struct {
	Summary      simulator.Summary `json:"summary" groups:"detailed"`
	Report       string            `json:"report" groups:"detailed"`
	NextStations []string          `json:"next_stations" groups:"detailed"`
}

func TrainsRouter(router fiber.Router, fleet *simulator.Fleet) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listTrains(c, fleet)
	})
	router.Get("/:id", func(c *fiber.Ctx) error {
		return getTrain(c, fleet)
	})
}

func listTrains(c *fiber.Ctx, fleet *simulator.Fleet) error {
	trainsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, fleet.Summaries())
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce Trains",
		})
	}

	return c.JSON(fiber.Map{
		"tick":   fleet.Ticks(),
		"trains": trainsReduced,
	})
}

func getTrain(c *fiber.Ctx, fleet *simulator.Fleet) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Train ID must be a number",
		})
	}

	summary, nextStations, err := fleet.Detail(id)
	switch {
	case errors.Is(err, simulator.ErrTrainNotFound):
		c.Status(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	case err != nil:
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	trainReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"detailed"},
	}, trainDetail{
		Summary:      summary,
		Report:       report.Format(summary),
		NextStations: nextStations,
	})
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce Train",
		})
	}

	return c.JSON(trainReduced)
}
