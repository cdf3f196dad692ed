package stations

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// Browse handles GET /api/chargepoint.
func (h *Handler) Browse(c *fiber.Ctx) error {
	stations, err := h.Store.Browse(userContext(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch charge points")
	}
	return c.JSON(stations)
}

// GetOne handles GET /api/station/:id.
func (h *Handler) GetOne(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "station not found")
	}

	station, err := h.Store.GetByID(userContext(c), id)
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "station not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch station")
	}
	return c.JSON(station)
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
