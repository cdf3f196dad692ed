package reports

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/voltio/voltio-backend/internal/auth"
	"github.com/voltio/voltio-backend/internal/bookings"
)

type fakeBookings struct {
	items []bookings.Booking
}

func (f *fakeBookings) BrowseAvailable(context.Context) ([]bookings.Availability, error) {
	return nil, nil
}

func (f *fakeBookings) ListByUser(_ context.Context, userID string) ([]bookings.Booking, error) {
	return f.items, nil
}

func (f *fakeBookings) ListByUserBetween(_ context.Context, userID string, from, to time.Time) ([]bookings.Booking, error) {
	return f.items, nil
}

func (f *fakeBookings) Create(context.Context, *bookings.Booking) (string, error) {
	return "", nil
}

func (f *fakeBookings) BookedDates(context.Context, string) ([]string, error) {
	return nil, nil
}

func (f *fakeBookings) Delete(context.Context, string, string) (int64, error) {
	return 0, nil
}

var testSecret = []byte("test-secret")

func newTestApp(store bookings.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		},
	})
	app.Get("/api/users/booking/statement", auth.Middleware(testSecret), NewHandler(store).StatementPDF)
	return app
}

func TestStatementPDF_RequiresAuth(t *testing.T) {
	t.Parallel()

	app := newTestApp(&fakeBookings{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/users/booking/statement", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestStatementPDF(t *testing.T) {
	t.Parallel()

	userID := uuid.NewString()
	app := newTestApp(&fakeBookings{items: []bookings.Booking{
		{ID: uuid.NewString(), UserID: userID, StationID: uuid.NewString(), CarID: uuid.NewString(), Date: time.Now(), Slot: "morning"},
	}})

	tok, err := auth.GenerateToken(userID, "user", testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/users/booking/statement", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tok})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestStatementPDF_BadWindow(t *testing.T) {
	t.Parallel()

	app := newTestApp(&fakeBookings{})

	tok, err := auth.GenerateToken(uuid.NewString(), "user", testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/users/booking/statement?from=yesterday&to=2026-09-01", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tok})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
