package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shulchan-app/shulchan-backend/internal/authctx"
	"github.com/shulchan-app/shulchan-backend/internal/dto"
	"github.com/shulchan-app/shulchan-backend/internal/services"
)

type AdminHandler struct {
	userService *services.UserService
}

func NewAdminHandler(userService *services.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// ListUsers backs the admin table: users joined with their host profiles.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	entries, err := h.userService.ListAll()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(entries)
}

// AssignRole changes a target user's role. The service enforces that the
// acting user dominates both the current and the new role.
func (h *AdminHandler) AssignRole(c *fiber.Ctx) error {
	subject, err := authctx.Subject(c)
	if err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req dto.AssignRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.userService.AssignRole(subject, targetID, req.Role)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

func (h *AdminHandler) SetVerified(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req dto.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.userService.SetVerified(targetID, req.IsVerified)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}
