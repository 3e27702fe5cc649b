package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/trainsim/pkg/network"
	"github.com/travigo/trainsim/pkg/simulator"
)

type stationResponse struct {
	Name             string         `json:"name"`
	DelayProbability float64        `json:"delay_probability"`
	Links            []linkResponse `json:"links"`
}

type linkResponse struct {
	Colour    string `json:"colour"`
	Direction string `json:"direction"`
	Target    string `json:"target"`
}

type delayRequest struct {
	Probability *float64 `json:"probability"`
}

func StationsRouter(router fiber.Router, fleet *simulator.Fleet) {
	router.Get("/:name", func(c *fiber.Ctx) error {
		return getStation(c, fleet)
	})
	router.Put("/:name/delay", func(c *fiber.Ctx) error {
		return setStationDelay(c, fleet)
	})
}

func getStation(c *fiber.Ctx, fleet *simulator.Fleet) error {
	station, err := fleet.Station(c.Params("name"))
	if err != nil {
		c.Status(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Station matching name",
		})
	}

	response := stationResponse{
		Name:             station.Name,
		DelayProbability: station.DelayProbability,
		Links:            []linkResponse{},
	}
	for _, link := range station.Links {
		response.Links = append(response.Links, linkResponse{
			Colour:    link.Colour,
			Direction: link.Direction.Name(),
			Target:    link.Target,
		})
	}

	return c.JSON(response)
}

func setStationDelay(c *fiber.Ctx, fleet *simulator.Fleet) error {
	var request delayRequest
	if err := c.BodyParser(&request); err != nil || request.Probability == nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Body must contain a probability",
		})
	}

	err := fleet.SetDelay(c.Params("name"), *request.Probability)
	switch {
	case errors.Is(err, network.ErrNotFound):
		c.Status(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Station matching name",
		})
	case errors.Is(err, network.ErrInvalidProbability):
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	case err != nil:
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return getStation(c, fleet)
}
