package users

import (
	"errors"
	"time"
)

// ErrNotFound is returned by stores when no row matches.
var ErrNotFound = errors.New("users: not found")

// User is a persisted account. PasswordHash never leaves the process: it
// is excluded from JSON on every response shape below.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Status       string    `json:"status"`
	FirstName    string    `json:"firstname"`
	LastName     string    `json:"lastname"`
	Gender       string    `json:"gender"`
	Birthdate    string    `json:"birthdate"`
	City         string    `json:"city"`
	Zipcode      string    `json:"zipcode"`
	CreatedAt    time.Time `json:"created_at"`
}

type createUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Birthdate string `json:"birthdate"`
	City      string `json:"city"`
	Zipcode   string `json:"zipcode"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	FirstName string `json:"firstname"`
	Email     string `json:"email"`
	ID        string `json:"id"`
	Status    string `json:"status"`
}

type updateUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Birthdate string `json:"birthdate"`
	City      string `json:"city"`
	Zipcode   string `json:"zipcode"`
}
