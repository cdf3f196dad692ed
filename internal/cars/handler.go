package cars

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/voltio/voltio-backend/internal/auth"
)

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// ListMine handles GET /api/users/car.
func (h *Handler) ListMine(c *fiber.Ctx) error {
	userID := auth.UserID(c)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	cars, err := h.Store.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch cars")
	}
	return c.JSON(cars)
}

// ListTypes handles GET /api/car.
func (h *Handler) ListTypes(c *fiber.Ctx) error {
	types, err := h.Store.ListTypes(userContext(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch car types")
	}
	return c.JSON(types)
}

// ListAvailable handles GET /api/users/:id/car.
func (h *Handler) ListAvailable(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	cars, err := h.Store.ListAvailable(userContext(c), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch cars")
	}
	return c.JSON(cars)
}

// Create handles POST /api/car.
func (h *Handler) Create(c *fiber.Ctx) error {
	userID := auth.UserID(c)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body createCarRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	body.Plate = strings.TrimSpace(body.Plate)
	if body.Plate == "" {
		return fiber.NewError(fiber.StatusBadRequest, "plate required")
	}

	id, err := h.Store.Create(userContext(c), &Car{
		UserID: userID,
		Plate:  body.Plate,
		Model:  body.Model,
		Plug:   body.Plug,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to add car")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Delete handles DELETE /api/car/:id.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "car not found")
	}

	rows, err := h.Store.Delete(userContext(c), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete car")
	}
	if rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "car not found")
	}
	return c.JSON(fiber.Map{"message": "Car deleted successfully"})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
