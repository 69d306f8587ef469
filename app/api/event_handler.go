package api

import (
	"kmis/store"

	"github.com/gofiber/fiber/v2"
)

type EventHandler struct {
	store store.Storer
}

func NewEventHandler(s store.Storer) *EventHandler {
	return &EventHandler{store: s}
}

func (h *EventHandler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.store.Events())
}
