package api

import (
	"kmis/store"
	"kmis/types"

	"github.com/gofiber/fiber/v2"
)

// UserHandler implements login-by-picking-a-user. Roles are assigned
// by selection, not verified; this is a prototype surface.
type UserHandler struct {
	store store.Storer
}

func NewUserHandler(s store.Storer) *UserHandler {
	return &UserHandler{store: s}
}

func (h *UserHandler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.store.Users())
}

func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var params types.LoginParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}
	if errs := types.Validate(&params); len(errs) > 0 {
		return NewValidationError(errs)
	}

	user, err := h.store.Login(params.UserID)
	if err != nil {
		return ErrNotFound(params.UserID, "user")
	}
	return c.JSON(user)
}

func (h *UserHandler) HandleLogout(c *fiber.Ctx) error {
	h.store.Logout()
	return c.JSON(fiber.Map{"role": h.store.Role()})
}

func (h *UserHandler) HandleCurrent(c *fiber.Ctx) error {
	user, ok := h.store.CurrentUser()
	if !ok {
		return c.JSON(fiber.Map{"role": h.store.Role()})
	}
	return c.JSON(user)
}
