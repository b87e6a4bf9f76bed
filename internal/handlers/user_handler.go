package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shulchan-app/shulchan-backend/internal/authctx"
	"github.com/shulchan-app/shulchan-backend/internal/dto"
	"github.com/shulchan-app/shulchan-backend/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me resolves the authenticated principal to its user record, creating it on
// first sight.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	principal, err := authctx.FromContext(c)
	if err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	user, err := h.userService.ResolveOrCreate(principal)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// FullProfile returns the user plus both optional profiles. A missing user
// row yields a null payload, not an error.
func (h *UserHandler) FullProfile(c *fiber.Ctx) error {
	subject, err := authctx.Subject(c)
	if err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	full, err := h.userService.FullProfile(subject)
	if err != nil {
		return respondError(c, err)
	}
	if full == nil {
		return c.JSON(nil)
	}

	return c.JSON(full)
}

func (h *UserHandler) Dashboard(c *fiber.Ctx) error {
	subject, err := authctx.Subject(c)
	if err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	dashboard, err := h.userService.Dashboard(subject)
	if err != nil {
		return respondError(c, err)
	}
	if dashboard == nil {
		return c.JSON(nil)
	}

	return c.JSON(dashboard)
}

// DeleteMe removes the community user row only; profiles stay.
func (h *UserHandler) DeleteMe(c *fiber.Ctx) error {
	subject, err := authctx.Subject(c)
	if err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	deleted, err := h.userService.DeleteSelf(subject)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.DeleteResponse{Deleted: deleted})
}
