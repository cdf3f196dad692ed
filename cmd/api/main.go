package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voltio/voltio-backend/internal/auth"
	"github.com/voltio/voltio-backend/internal/bookings"
	"github.com/voltio/voltio-backend/internal/cars"
	"github.com/voltio/voltio-backend/internal/config"
	"github.com/voltio/voltio-backend/internal/reports"
	"github.com/voltio/voltio-backend/internal/router"
	"github.com/voltio/voltio-backend/internal/stations"
	"github.com/voltio/voltio-backend/internal/users"
)

func main() {
	cfg := config.MustLoad()
	secret := []byte(cfg.JWTSecret)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error creating pgx pool: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	bookingRepo := bookings.NewRepository(pool)

	r := &router.Router{
		Users:    users.NewHandler(users.NewRepository(pool), secret, cfg.TokenTTL),
		Stations: stations.NewHandler(stations.NewRepository(pool)),
		Cars:     cars.NewHandler(cars.NewRepository(pool)),
		Bookings: bookings.NewHandler(bookingRepo),
		Reports:  reports.NewHandler(bookingRepo),
		AuthMW:   auth.Middleware(secret),
	}
	r.RegisterRoutes(app)

	log.Println("Listening on port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		log.Printf("%s %s %d %s", c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}
