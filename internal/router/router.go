package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voltio/voltio-backend/internal/bookings"
	"github.com/voltio/voltio-backend/internal/cars"
	"github.com/voltio/voltio-backend/internal/reports"
	"github.com/voltio/voltio-backend/internal/stations"
	"github.com/voltio/voltio-backend/internal/users"
)

type Router struct {
	Users    *users.Handler
	Stations *stations.Handler
	Cars     *cars.Handler
	Bookings *bookings.Handler
	Reports  *reports.Handler
	AuthMW   fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	if r.Users != nil {
		api.Post("/user", RateLimitAuth(), r.Users.Create)
		api.Post("/users/login", RateLimitAuth(), r.Users.Login)
		api.Get("/users/logout", r.Users.Logout)
		api.Get("/users/me", r.AuthMW, r.Users.Me)
		api.Get("/connecteduserinfo", r.AuthMW, r.Users.ConnectedInfo)
		api.Put("/users", r.AuthMW, r.Users.Update)
		// No gate here: kept to match the upstream routing, where user
		// deletion is reachable without a token. Likely an oversight there.
		api.Delete("/users/:id", r.Users.Delete)
	}

	if r.Stations != nil {
		api.Get("/chargepoint", r.Stations.Browse)
		api.Get("/station/:id", r.Stations.GetOne)
	}

	if r.Cars != nil {
		api.Get("/users/car", r.AuthMW, r.Cars.ListMine)
		api.Get("/car", r.Cars.ListTypes)
		api.Get("/users/:id/car", r.Cars.ListAvailable)
		api.Post("/car", r.AuthMW, r.Cars.Create)
		api.Delete("/car/:id", r.Cars.Delete)
	}

	if r.Bookings != nil {
		api.Get("/bookAvailable", r.Bookings.Browse)
		api.Get("/users/:id/booking", r.Bookings.ListForUser)
		// Gated, unlike the upstream routing: the owner of the new
		// booking comes from the token subject, not the request body.
		api.Post("/booking", r.AuthMW, r.Bookings.Create)
		api.Post("/book/:id", r.Bookings.BookedDates)
		api.Delete("/users/booking/:id", r.AuthMW, r.Bookings.Delete)
	}

	if r.Reports != nil {
		api.Get("/users/booking/statement", r.AuthMW, r.Reports.StatementPDF)
	}
}
