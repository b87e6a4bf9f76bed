package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shulchan-app/shulchan-backend/internal/authctx"
	"github.com/shulchan-app/shulchan-backend/internal/dto"
	"github.com/shulchan-app/shulchan-backend/internal/services"
)

type GuestHandler struct {
	profileService *services.ProfileService
}

func NewGuestHandler(profileService *services.ProfileService) *GuestHandler {
	return &GuestHandler{profileService: profileService}
}

func (h *GuestHandler) Create(c *fiber.Ctx) error {
	principal, err := authctx.FromContext(c)
	if err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	var in dto.GuestInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}

	guest, err := h.profileService.CreateGuest(principal, &in)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(guest)
}

func (h *GuestHandler) Upsert(c *fiber.Ctx) error {
	principal, err := authctx.FromContext(c)
	if err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	var in dto.GuestInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}

	guest, created, err := h.profileService.UpsertGuest(principal, &in)
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(guest)
}

func (h *GuestHandler) Delete(c *fiber.Ctx) error {
	principal, err := authctx.FromContext(c)
	if err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	deleted, err := h.profileService.DeleteGuest(principal)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.DeleteResponse{Deleted: deleted})
}

// Mine returns the caller's guest profile, or null when none exists yet.
func (h *GuestHandler) Mine(c *fiber.Ctx) error {
	subject, err := authctx.Subject(c)
	if err != nil {
		return respondError(c, services.ErrUnauthenticated)
	}

	guest, err := h.profileService.GetGuest(subject)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.GuestProfileResponse{Guest: guest})
}
