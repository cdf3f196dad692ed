package bookings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/voltio/voltio-backend/internal/auth"
)

type memStore struct {
	bookings map[string]Booking
}

func newMemStore() *memStore {
	return &memStore{bookings: make(map[string]Booking)}
}

func (m *memStore) BrowseAvailable(context.Context) ([]Availability, error) {
	return []Availability{{StationID: "s1", Station: "Gare", City: "Lille", Date: "2026-09-02", Slot: "morning"}}, nil
}

func (m *memStore) ListByUser(_ context.Context, userID string) ([]Booking, error) {
	var out []Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]Booking, error) {
	all, _ := m.ListByUser(ctx, userID)
	var out []Booking
	for _, b := range all {
		if !b.Date.Before(from) && !b.Date.After(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) Create(_ context.Context, b *Booking) (string, error) {
	id := uuid.NewString()
	stored := *b
	stored.ID = id
	stored.CreatedAt = time.Now()
	m.bookings[id] = stored
	return id, nil
}

func (m *memStore) BookedDates(_ context.Context, stationID string) ([]string, error) {
	var dates []string
	for _, b := range m.bookings {
		if b.StationID == stationID {
			dates = append(dates, b.Date.Format("2006-01-02"))
		}
	}
	return dates, nil
}

func (m *memStore) Delete(_ context.Context, id, userID string) (int64, error) {
	b, ok := m.bookings[id]
	if !ok || b.UserID != userID {
		return 0, nil
	}
	delete(m.bookings, id)
	return 1, nil
}

var testSecret = []byte("test-secret")

func newTestApp(store Store) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		},
	})

	h := NewHandler(store)
	gate := auth.Middleware(testSecret)

	app.Get("/api/bookAvailable", h.Browse)
	app.Get("/api/users/:id/booking", h.ListForUser)
	app.Post("/api/booking", gate, h.Create)
	app.Post("/api/book/:id", h.BookedDates)
	app.Delete("/api/users/booking/:id", gate, h.Delete)

	return app
}

func authCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()
	tok, err := auth.GenerateToken(userID, "user", testSecret, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: tok}
}

func createBooking(t *testing.T, app *fiber.App, cookie *http.Cookie, stationID, carID string) string {
	t.Helper()

	body := fmt.Sprintf(`{"station_id":%q,"car_id":%q,"date":"2026-09-05","slot":"morning"}`, stationID, carID)
	req := httptest.NewRequest("POST", "/api/booking", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out["id"])
	return out["id"]
}

func TestBrowse_Public(t *testing.T) {
	t.Parallel()

	app := newTestApp(newMemStore())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/bookAvailable", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCreate_RequiresAuth(t *testing.T) {
	t.Parallel()

	app := newTestApp(newMemStore())

	req := httptest.NewRequest("POST", "/api/booking", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCreate_BadDate(t *testing.T) {
	t.Parallel()

	app := newTestApp(newMemStore())

	body := fmt.Sprintf(`{"station_id":%q,"car_id":%q,"date":"tomorrow","slot":"morning"}`,
		uuid.NewString(), uuid.NewString())
	req := httptest.NewRequest("POST", "/api/booking", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(authCookie(t, uuid.NewString()))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateAndListForUser(t *testing.T) {
	t.Parallel()

	app := newTestApp(newMemStore())
	userID := uuid.NewString()
	cookie := authCookie(t, userID)

	stationID := uuid.NewString()
	createBooking(t, app, cookie, stationID, uuid.NewString())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/users/"+userID+"/booking", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []Booking
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	require.Equal(t, stationID, out[0].StationID)
	require.Equal(t, "morning", out[0].Slot)
}

func TestBookedDates(t *testing.T) {
	t.Parallel()

	app := newTestApp(newMemStore())
	stationID := uuid.NewString()
	createBooking(t, app, authCookie(t, uuid.NewString()), stationID, uuid.NewString())

	resp, err := app.Test(httptest.NewRequest("POST", "/api/book/"+stationID, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var dates []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dates))
	require.Equal(t, []string{"2026-09-05"}, dates)
}

func TestDelete_OwnerOnly(t *testing.T) {
	t.Parallel()

	app := newTestApp(newMemStore())
	owner := uuid.NewString()
	cookie := authCookie(t, owner)
	id := createBooking(t, app, cookie, uuid.NewString(), uuid.NewString())

	// Someone else's token cannot cancel the booking.
	req := httptest.NewRequest("DELETE", "/api/users/booking/"+id, nil)
	req.AddCookie(authCookie(t, uuid.NewString()))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	req = httptest.NewRequest("DELETE", "/api/users/booking/"+id, nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
