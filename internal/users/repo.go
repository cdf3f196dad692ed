package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the credential store consumed by the handlers.
type Store interface {
	Create(ctx context.Context, u *User) (string, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, id string, u *User) error
	Delete(ctx context.Context, id string) (int64, error)
}

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) Create(ctx context.Context, u *User) (string, error) {
	var id string
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO users (email, password_hash, status, firstname, lastname, gender, birthdate, city, zipcode)
         VALUES ($1, $2, COALESCE(NULLIF($3, ''), 'user'), $4, $5, $6, $7, $8, $9)
         RETURNING id`,
		u.Email, u.PasswordHash, u.Status, u.FirstName, u.LastName, u.Gender, u.Birthdate, u.City, u.Zipcode,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (User, error) {
	return r.getOne(ctx,
		`SELECT id, email, password_hash, status, firstname, lastname, gender, birthdate, city, zipcode, created_at
         FROM users WHERE id = $1`, id)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (User, error) {
	return r.getOne(ctx,
		`SELECT id, email, password_hash, status, firstname, lastname, gender, birthdate, city, zipcode, created_at
         FROM users WHERE email = $1`, email)
}

func (r *Repository) getOne(ctx context.Context, query string, arg any) (User, error) {
	var u User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Status,
		&u.FirstName, &u.LastName, &u.Gender, &u.Birthdate, &u.City, &u.Zipcode,
		&u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// Update writes the profile fields through. Status is deliberately not
// touched here: role changes go through trusted paths only.
func (r *Repository) Update(ctx context.Context, id string, u *User) error {
	_, err := r.Pool.Exec(
		ctx,
		`UPDATE users
         SET email = $2, firstname = $3, lastname = $4, gender = $5, birthdate = $6, city = $7, zipcode = $8
         WHERE id = $1`,
		id, u.Email, u.FirstName, u.LastName, u.Gender, u.Birthdate, u.City, u.Zipcode,
	)
	return err
}

func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
