package api

import (
	"kmis/store"
	"kmis/types"

	"github.com/gofiber/fiber/v2"
)

type EvidenceHandler struct {
	store store.Storer
}

func NewEvidenceHandler(s store.Storer) *EvidenceHandler {
	return &EvidenceHandler{store: s}
}

// HandleList returns evidence updates, scoped to one country or theme
// page when pageType and pageKey are given.
func (h *EvidenceHandler) HandleList(c *fiber.Ctx) error {
	pageType := c.Query("pageType")
	pageKey := c.Query("pageKey")
	if pageType != "" && pageKey != "" {
		return c.JSON(h.store.EvidenceForPage(types.PageType(pageType), pageKey))
	}
	return c.JSON(h.store.EvidenceUpdates())
}

func (h *EvidenceHandler) HandleCreate(c *fiber.Ctx) error {
	var params types.EvidenceParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}
	if errs := types.Validate(&params); len(errs) > 0 {
		return NewValidationError(errs)
	}

	update := h.store.AddEvidenceUpdate(types.EvidenceUpdate{
		PageType:          params.PageType,
		PageKey:           params.PageKey,
		Date:              params.Date,
		Title:             params.Title,
		Body:              params.Body,
		Tags:              params.Tags,
		SourceDocumentIDs: params.SourceDocumentIDs,
	})
	return c.Status(fiber.StatusCreated).JSON(update)
}

func (h *EvidenceHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.store.DeleteEvidenceUpdate(id); err != nil {
		return ErrNotFound(id, "evidence update")
	}
	return c.JSON(fiber.Map{"deleted": id})
}
