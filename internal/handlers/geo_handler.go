package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shulchan-app/shulchan-backend/internal/dto"
	"github.com/shulchan-app/shulchan-backend/internal/services"
)

type GeoHandler struct {
	geocoder services.Geocoder
}

func NewGeoHandler(geocoder services.Geocoder) *GeoHandler {
	return &GeoHandler{geocoder: geocoder}
}

// Geocode resolves a batch of addresses to coordinates, capped at 25 per
// request; unresolvable addresses map to null.
func (h *GeoHandler) Geocode(c *fiber.Ctx) error {
	var req dto.GeocodeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if len(req.Addresses) == 0 {
		return badRequest(c, "addresses must be a non-empty array")
	}

	return c.JSON(services.GeocodeBatch(c.Context(), h.geocoder, req.Addresses))
}

// Autocomplete returns place-name suggestions for a partial query.
func (h *GeoHandler) Autocomplete(c *fiber.Ctx) error {
	suggestions, err := h.geocoder.Autocomplete(c.Context(), c.Query("input"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.AutocompleteResponse{Suggestions: suggestions})
}
