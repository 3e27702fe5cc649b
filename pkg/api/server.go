package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/trainsim/pkg/api/routes"
	"github.com/travigo/trainsim/pkg/simulator"
)

func NewApp(fleet *simulator.Fleet) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	routes.VersionRouter(group.Group("/version"), fleet)
	routes.TrainsRouter(group.Group("/trains"), fleet)
	routes.TickRouter(group.Group("/tick"), fleet)
	routes.StationsRouter(group.Group("/stations"), fleet)

	return webApp
}

func SetupServer(listen string, fleet *simulator.Fleet) error {
	return NewApp(fleet).Listen(listen)
}
