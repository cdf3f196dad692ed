package bookings

import (
	"context"
	"time"

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

// Browse handles GET /api/bookAvailable.
func (h *Handler) Browse(c *fiber.Ctx) error {
	slots, err := h.Store.BrowseAvailable(userContext(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch availability")
	}
	return c.JSON(slots)
}

// ListForUser handles GET /api/users/:id/booking.
func (h *Handler) ListForUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	bookings, err := h.Store.ListByUser(userContext(c), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch bookings")
	}
	return c.JSON(bookings)
}

// Create handles POST /api/booking.
func (h *Handler) Create(c *fiber.Ctx) error {
	userID := auth.UserID(c)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body createBookingRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	if _, err := uuid.Parse(body.StationID); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "station_id required")
	}
	if _, err := uuid.Parse(body.CarID); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "car_id required")
	}

	id, err := h.Store.Create(userContext(c), &Booking{
		UserID:    userID,
		StationID: body.StationID,
		CarID:     body.CarID,
		Date:      date,
		Slot:      body.Slot,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create booking")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// BookedDates handles POST /api/book/:id, returning the dates already
// taken at a station.
func (h *Handler) BookedDates(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "station not found")
	}

	dates, err := h.Store.BookedDates(userContext(c), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch booked dates")
	}
	return c.JSON(dates)
}

// Delete handles DELETE /api/users/booking/:id. Only the owner can cancel.
func (h *Handler) Delete(c *fiber.Ctx) error {
	userID := auth.UserID(c)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "booking not found")
	}

	rows, err := h.Store.Delete(userContext(c), id, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete booking")
	}
	if rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "booking not found")
	}
	return c.JSON(fiber.Map{"message": "Booking deleted successfully"})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
