package handlers

import (
	"github.com/assaka/aurareach/internal/config"
	"github.com/assaka/aurareach/pkg/auth"
	"github.com/gofiber/fiber/v2"
)

const placeholderUserID = "mock-user-id"

// AuthHandler is an auth placeholder until a real user store lands. Any
// email and password pair yields a signed token.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

func SetupAuthRoutes(router fiber.Router, cfg *config.Config) {
	h := NewAuthHandler(cfg)

	router.Post("/login", h.Login)
	router.Post("/register", h.Register)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  authUser `json:"user"`
}

type authUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := auth.GenerateToken(placeholderUserID, req.Email, h.cfg.JWTSecretKey, h.cfg.JWTExpiresHours)
	if err != nil {
		return err
	}

	return c.JSON(authResponse{
		Token: token,
		User:  authUser{ID: placeholderUserID, Email: req.Email},
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password required")
	}

	token, err := auth.GenerateToken(placeholderUserID, req.Email, h.cfg.JWTSecretKey, h.cfg.JWTExpiresHours)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(authResponse{
		Token: token,
		User:  authUser{ID: placeholderUserID, Email: req.Email},
	})
}
