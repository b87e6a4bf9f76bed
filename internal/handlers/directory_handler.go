package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shulchan-app/shulchan-backend/internal/authctx"
	"github.com/shulchan-app/shulchan-backend/internal/roles"
	"github.com/shulchan-app/shulchan-backend/internal/services"
)

type DirectoryHandler struct {
	directoryService *services.DirectoryService
	userService      *services.UserService
}

func NewDirectoryHandler(directoryService *services.DirectoryService, userService *services.UserService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService, userService: userService}
}

// ListHosts is the authenticated host directory, phone numbers included.
func (h *DirectoryHandler) ListHosts(c *fiber.Ctx) error {
	if _, err := authctx.Subject(c); err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	entries, err := h.directoryService.ListHosts(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(entries)
}

// ListPublicHosts serves the stripped listing with no identity required.
func (h *DirectoryHandler) ListPublicHosts(c *fiber.Ctx) error {
	entries, err := h.directoryService.ListPublicHosts()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(entries)
}

// ListGuests is authenticated-only; guest data is never exposed publicly.
func (h *DirectoryHandler) ListGuests(c *fiber.Ctx) error {
	if _, err := authctx.Subject(c); err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	entries, err := h.directoryService.ListGuests(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(entries)
}

// People returns the combined directory gated by the caller's role.
func (h *DirectoryHandler) People(c *fiber.Ctx) error {
	subject, err := authctx.Subject(c)
	if err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	user, err := h.userService.GetByAuthID(subject)
	if err != nil {
		return respondError(c, err)
	}

	viewer := roles.RoleUser
	if user != nil {
		viewer = user.Role
	}

	resp, err := h.directoryService.People(viewer, c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}
