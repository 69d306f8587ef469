package api

import (
	"errors"

	"kmis/store"
	"kmis/types"

	"github.com/gofiber/fiber/v2"
)

type DocumentHandler struct {
	store store.Storer
}

func NewDocumentHandler(s store.Storer) *DocumentHandler {
	return &DocumentHandler{store: s}
}

// HandleList returns the corpus, optionally filtered by status and
// taxonomy query parameters.
func (h *DocumentHandler) HandleList(c *fiber.Ctx) error {
	var (
		status  = c.Query("status")
		country = c.Query("country")
		theme   = c.Query("theme")
		period  = c.Query("period")
		project = c.Query("project")
	)

	docs := h.store.Documents()
	out := make([]types.Document, 0, len(docs))
	for _, d := range docs {
		if status != "" && string(d.Status) != status {
			continue
		}
		if country != "" && !containsValue(d.Metadata.Countries, country) {
			continue
		}
		if theme != "" && !containsValue(d.Metadata.Themes, theme) {
			continue
		}
		if period != "" && !containsValue(d.Metadata.ReportingPeriods, period) {
			continue
		}
		if project != "" && d.Metadata.Project != project {
			continue
		}
		out = append(out, d)
	}
	return c.JSON(out)
}

func (h *DocumentHandler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("id")
	doc, ok := h.store.Document(id)
	if !ok {
		return ErrNotFound(id, "document")
	}
	return c.JSON(doc)
}

// HandleCreate ingests documents; they always start in draft.
func (h *DocumentHandler) HandleCreate(c *fiber.Ctx) error {
	var params types.CreateDocumentParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}
	if errs := types.Validate(&params); len(errs) > 0 {
		return NewValidationError(errs)
	}

	added := h.store.AddDocuments([]types.Document{{
		Title:         params.Title,
		Filename:      params.Filename,
		SizeMB:        params.SizeMB,
		Status:        types.StatusDraft,
		Metadata:      params.Metadata,
		ExtractedText: params.ExtractedText,
	}})
	return c.Status(fiber.StatusCreated).JSON(added[0])
}

func (h *DocumentHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	var patch types.DocumentPatch
	if c.BodyParser(&patch) != nil {
		return ErrBadRequest()
	}

	doc, err := h.store.UpdateDocument(id, patch)
	if err != nil {
		return ErrNotFound(id, "document")
	}
	return c.JSON(doc)
}

// HandleSetStatus moves a document through the publishing workflow.
func (h *DocumentHandler) HandleSetStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var params types.StatusParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}
	if errs := types.Validate(&params); len(errs) > 0 {
		return NewValidationError(errs)
	}

	doc, err := h.store.SetDocumentStatus(id, params.Status)
	if err != nil {
		if errors.Is(err, store.ErrBadTransition) {
			return ErrConflict(err.Error())
		}
		return ErrNotFound(id, "document")
	}
	return c.JSON(doc)
}

func containsValue(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
