package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/voltio/voltio-backend/internal/auth"
)

type Handler struct {
	Store    Store
	Secret   []byte
	TokenTTL time.Duration
}

func NewHandler(store Store, secret []byte, ttl time.Duration) *Handler {
	return &Handler{Store: store, Secret: secret, TokenTTL: ttl}
}

// Create handles POST /api/user.
func (h *Handler) Create(c *fiber.Ctx) error {
	var body createUserRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	body.Email = strings.TrimSpace(body.Email)
	if body.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}
	// Reject before hashing: an empty plaintext must never reach the hasher.
	if body.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "password is required")
	}

	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create user")
	}

	id, err := h.Store.Create(userContext(c), &User{
		Email:        body.Email,
		PasswordHash: hash,
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		Gender:       body.Gender,
		Birthdate:    body.Birthdate,
		City:         body.City,
		Zipcode:      body.Zipcode,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Login handles POST /api/users/login. On success the token is handed to
// the client solely as an http-only cookie; the body carries a profile
// subset and never the hash. The cookie is not flagged Secure: TLS
// termination is assumed to happen at the reverse proxy.
func (h *Handler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	user, err := h.Store.GetByEmail(userContext(c), body.Email)
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "login failed")
	}

	if !auth.VerifyPassword(user.PasswordHash, body.Password) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid password")
	}

	token, err := auth.GenerateToken(user.ID, user.Status, h.Secret, h.TokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "login failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Expires:  time.Now().Add(h.TokenTTL),
		HTTPOnly: true,
	})

	return c.JSON(loginResponse{
		FirstName: user.FirstName,
		Email:     user.Email,
		ID:        user.ID,
		Status:    user.Status,
	})
}

// Logout handles GET /api/users/logout. It only discards the cookie; the
// token itself stays valid until expiry, there is no server-side state to
// invalidate.
func (h *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.SendStatus(fiber.StatusOK)
}

// Me handles GET /api/users/me. The gate only vouches for the token, so
// the row is re-read here; a deleted account turns every outstanding token
// into a 404 on its next request.
func (h *Handler) Me(c *fiber.Ctx) error {
	return h.currentUser(c)
}

// ConnectedInfo handles GET /api/connecteduserinfo.
func (h *Handler) ConnectedInfo(c *fiber.Ctx) error {
	return h.currentUser(c)
}

func (h *Handler) currentUser(c *fiber.Ctx) error {
	userID := auth.UserID(c)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.Store.GetByID(userContext(c), userID)
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch user")
	}

	return c.JSON(user)
}

// Update handles PUT /api/users. The existing token keeps its old status
// claim until it expires; that staleness window is bounded by the TTL.
func (h *Handler) Update(c *fiber.Ctx) error {
	userID := auth.UserID(c)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body updateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	err := h.Store.Update(userContext(c), userID, &User{
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Gender:    body.Gender,
		Birthdate: body.Birthdate,
		City:      body.City,
		Zipcode:   body.Zipcode,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update user")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Delete handles DELETE /api/users/:id.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	rows, err := h.Store.Delete(userContext(c), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete user")
	}
	if rows == 0 {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
