package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pivoice/ttsd/internal/service"
)

// synthesizeRequest is the POST /synthesize request body.
type synthesizeRequest struct {
	Text string `json:"text"`
}

// synthesizeResponse is the POST /synthesize success body.
type synthesizeResponse struct {
	AudioPath string `json:"audio_path"`
}

// TTSHandler handles HTTP requests for TTS.
type TTSHandler struct {
	service *service.TTS
}

// NewTTSHandler creates a new TTSHandler instance.
func NewTTSHandler(service *service.TTS) *TTSHandler {
	return &TTSHandler{service: service}
}

// Synthesize handles POST /synthesize: it blocks until synthesis
// completes and responds with the absolute path of the written file.
func (h *TTSHandler) Synthesize(c *fiber.Ctx) error {
	var req synthesizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No text provided"})
	}

	audioPath, err := h.service.Synthesize(c.UserContext(), req.Text)
	switch {
	case errors.Is(err, service.ErrNoText):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No text provided"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "synthesis failed"})
	}

	return c.JSON(synthesizeResponse{AudioPath: audioPath})
}
