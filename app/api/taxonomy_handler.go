package api

import (
	"errors"

	"kmis/store"
	"kmis/types"

	"github.com/gofiber/fiber/v2"
)

type TaxonomyHandler struct {
	store store.Storer
}

func NewTaxonomyHandler(s store.Storer) *TaxonomyHandler {
	return &TaxonomyHandler{store: s}
}

func (h *TaxonomyHandler) HandleGet(c *fiber.Ctx) error {
	return c.JSON(h.store.Taxonomy())
}

func (h *TaxonomyHandler) HandleAddValue(c *fiber.Ctx) error {
	var params types.TaxonomyValueParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}
	if errs := types.Validate(&params); len(errs) > 0 {
		return NewValidationError(errs)
	}
	if err := h.store.AddTaxonomyValue(params.Axis, params.Value); err != nil {
		return NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(h.store.Taxonomy())
}

func (h *TaxonomyHandler) HandleRemoveValue(c *fiber.Ctx) error {
	var params types.TaxonomyValueParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}
	if errs := types.Validate(&params); len(errs) > 0 {
		return NewValidationError(errs)
	}
	if err := h.store.RemoveTaxonomyValue(params.Axis, params.Value); err != nil {
		return NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(h.store.Taxonomy())
}

func (h *TaxonomyHandler) HandleRename(c *fiber.Ctx) error {
	var params types.TaxonomyRenameParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}
	if errs := types.Validate(&params); len(errs) > 0 {
		return NewValidationError(errs)
	}
	if err := h.store.RenameTaxonomyValue(params.Axis, params.OldValue, params.NewValue); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound(params.OldValue, "taxonomy value")
		}
		return NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(h.store.Taxonomy())
}
