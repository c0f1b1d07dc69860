package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pivoice/ttsd/internal/service"
)

// New builds the fiber app with all routes registered.
func New(tts *service.TTS) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "ttsd",
		DisableStartupMessage: true,
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	handler := NewTTSHandler(tts)
	app.Post("/synthesize", handler.Synthesize)

	return app
}
