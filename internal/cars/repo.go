package cars

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	ListByUser(ctx context.Context, userID string) ([]Car, error)
	ListTypes(ctx context.Context) ([]CarType, error)
	ListAvailable(ctx context.Context, userID string) ([]Car, error)
	Create(ctx context.Context, car *Car) (string, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Car, error) {
	return r.list(ctx,
		`SELECT id, user_id, plate, model, plug, created_at
		 FROM cars WHERE user_id = $1
		 ORDER BY created_at DESC`, userID)
}

// ListAvailable returns the user's cars not tied to an active booking.
func (r *Repository) ListAvailable(ctx context.Context, userID string) ([]Car, error) {
	return r.list(ctx,
		`SELECT c.id, c.user_id, c.plate, c.model, c.plug, c.created_at
		 FROM cars c
		 WHERE c.user_id = $1
		   AND NOT EXISTS (
		     SELECT 1 FROM bookings b
		     WHERE b.car_id = c.id AND b.date >= CURRENT_DATE
		   )
		 ORDER BY c.created_at DESC`, userID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]Car, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []Car
	for rows.Next() {
		var car Car
		if err := rows.Scan(&car.ID, &car.UserID, &car.Plate, &car.Model, &car.Plug, &car.CreatedAt); err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}

func (r *Repository) ListTypes(ctx context.Context) ([]CarType, error) {
	rows, err := r.Pool.Query(
		ctx,
		`SELECT id, model, plug FROM car_types ORDER BY model`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []CarType
	for rows.Next() {
		var ct CarType
		if err := rows.Scan(&ct.ID, &ct.Model, &ct.Plug); err != nil {
			return nil, err
		}
		types = append(types, ct)
	}
	return types, rows.Err()
}

func (r *Repository) Create(ctx context.Context, car *Car) (string, error) {
	var id string
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO cars (user_id, plate, model, plug)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		car.UserID, car.Plate, car.Model, car.Plug,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
