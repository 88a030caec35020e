package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/monitoring"
)

func main() {
	cfg := config.GetSchedulerConfig()
	monitor := monitoring.New()
	handler := api.NewSchedulerHandlerImpl(cfg, monitor)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(monitor.Handler()))

	v1 := app.Group("/api/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/compare", handler.CompareAll)
	}

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
