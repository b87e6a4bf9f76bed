package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shulchan-app/shulchan-backend/internal/authctx"
	"github.com/shulchan-app/shulchan-backend/internal/dto"
	"github.com/shulchan-app/shulchan-backend/internal/services"
)

type HostHandler struct {
	profileService *services.ProfileService
}

func NewHostHandler(profileService *services.ProfileService) *HostHandler {
	return &HostHandler{profileService: profileService}
}

func (h *HostHandler) Create(c *fiber.Ctx) error {
	principal, err := authctx.FromContext(c)
	if err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	var in dto.HostInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}

	host, err := h.profileService.CreateHost(principal, &in)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(host)
}

func (h *HostHandler) Upsert(c *fiber.Ctx) error {
	principal, err := authctx.FromContext(c)
	if err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	var in dto.HostInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}

	host, created, err := h.profileService.UpsertHost(principal, &in)
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(host)
}

func (h *HostHandler) Delete(c *fiber.Ctx) error {
	principal, err := authctx.FromContext(c)
	if err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	deleted, err := h.profileService.DeleteHost(principal)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.DeleteResponse{Deleted: deleted})
}

// Mine returns the caller's host profile, or null when none exists yet.
func (h *HostHandler) Mine(c *fiber.Ctx) error {
	subject, err := authctx.Subject(c)
	if err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	host, err := h.profileService.GetHost(subject)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.HostProfileResponse{Host: host})
}
