package bookings

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	BrowseAvailable(ctx context.Context) ([]Availability, error)
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
	Create(ctx context.Context, b *Booking) (string, error)
	BookedDates(ctx context.Context, stationID string) ([]string, error)
	Delete(ctx context.Context, id, userID string) (int64, error)
	ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]Booking, error)
}

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

// BrowseAvailable lists station slots with no booking over the next week.
func (r *Repository) BrowseAvailable(ctx context.Context) ([]Availability, error) {
	rows, err := r.Pool.Query(
		ctx,
		`SELECT s.id, s.name, s.city, d.day::text, sl.slot
		 FROM stations s
		 CROSS JOIN generate_series(CURRENT_DATE, CURRENT_DATE + 6, interval '1 day') AS d(day)
		 CROSS JOIN (VALUES ('morning'), ('afternoon'), ('evening')) AS sl(slot)
		 WHERE NOT EXISTS (
		   SELECT 1 FROM bookings b
		   WHERE b.station_id = s.id AND b.date = d.day AND b.slot = sl.slot
		 )
		 ORDER BY s.city, s.name, d.day, sl.slot`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Availability
	for rows.Next() {
		var a Availability
		if err := rows.Scan(&a.StationID, &a.Station, &a.City, &a.Date, &a.Slot); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	return r.list(ctx,
		`SELECT id, user_id, station_id, car_id, date, slot, created_at
		 FROM bookings WHERE user_id = $1
		 ORDER BY date DESC`, userID)
}

func (r *Repository) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]Booking, error) {
	return r.list(ctx,
		`SELECT id, user_id, station_id, car_id, date, slot, created_at
		 FROM bookings
		 WHERE user_id = $1 AND date BETWEEN $2 AND $3
		 ORDER BY date DESC`, userID, from, to)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]Booking, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.StationID, &b.CarID, &b.Date, &b.Slot, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *Repository) Create(ctx context.Context, b *Booking) (string, error) {
	var id string
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO bookings (user_id, station_id, car_id, date, slot)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		b.UserID, b.StationID, b.CarID, b.Date, b.Slot,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) BookedDates(ctx context.Context, stationID string) ([]string, error) {
	rows, err := r.Pool.Query(
		ctx,
		`SELECT DISTINCT date::text FROM bookings
		 WHERE station_id = $1 AND date >= CURRENT_DATE
		 ORDER BY date::text`,
		stationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// Delete removes a booking only when it belongs to userID; the ownership
// check rides on the WHERE clause rather than a prior read.
func (r *Repository) Delete(ctx context.Context, id, userID string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
