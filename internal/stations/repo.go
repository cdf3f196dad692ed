package stations

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Browse(ctx context.Context) ([]Station, error)
	GetByID(ctx context.Context, id string) (Station, error)
}

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) Browse(ctx context.Context) ([]Station, error) {
	rows, err := r.Pool.Query(
		ctx,
		`SELECT id, name, address, city, plug, power_kw, lat, lng
		 FROM stations
		 ORDER BY city, name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []Station
	for rows.Next() {
		var s Station
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.City, &s.Plug, &s.PowerKW, &s.Lat, &s.Lng); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id string) (Station, error) {
	var s Station
	err := r.Pool.QueryRow(
		ctx,
		`SELECT id, name, address, city, plug, power_kw, lat, lng
		 FROM stations WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Name, &s.Address, &s.City, &s.Plug, &s.PowerKW, &s.Lat, &s.Lng)
	if errors.Is(err, pgx.ErrNoRows) {
		return Station{}, ErrNotFound
	}
	if err != nil {
		return Station{}, err
	}
	return s, nil
}
