package api

import (
	"kmis/store"
	"kmis/types"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	store store.Storer
}

func NewSettingsHandler(s store.Storer) *SettingsHandler {
	return &SettingsHandler{store: s}
}

func (h *SettingsHandler) HandleGet(c *fiber.Ctx) error {
	return c.JSON(maskSettings(h.store.AISettings()))
}

func (h *SettingsHandler) HandleUpdate(c *fiber.Ctx) error {
	var params types.AISettingsParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}
	return c.JSON(maskSettings(h.store.SetAISettings(params)))
}

// maskSettings hides the credential; only its configured/absent state
// is visible to clients.
func maskSettings(s types.AISettings) fiber.Map {
	key := ""
	if len(s.APIKey) > 8 {
		key = s.APIKey[:4] + "..." + s.APIKey[len(s.APIKey)-4:]
	} else if s.APIKey != "" {
		key = "***"
	}
	return fiber.Map{
		"endpoint":     s.Endpoint,
		"apiKey":       key,
		"configured":   s.Configured(),
		"model":        s.Model,
		"systemPrompt": s.SystemPrompt,
	}
}
