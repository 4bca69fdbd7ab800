package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"synthesistalk-backend/internal/apperr"
	"synthesistalk-backend/internal/auth"
	"synthesistalk-backend/internal/repo"
)

type AuthHandler struct {
	users  repo.UserRepoInterface
	tokens *auth.TokenIssuer
	logger *zap.Logger
}

func NewAuthHandler(users repo.UserRepoInterface, tokens *auth.TokenIssuer, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new account and returns the public user record.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var dto credentialsRequest
	if err := c.BodyParser(&dto); err != nil {
		return apperr.New(apperr.CodeInvalidArgument, "Invalid request body")
	}
	if dto.Email == "" || dto.Password == "" {
		return apperr.New(apperr.CodeInvalidArgument, "Email and password are required")
	}

	user, err := h.users.Create(dto.Email, dto.Password)
	if err != nil {
		return err
	}

	h.logger.Info("user registered", zap.Uint("user_id", user.ID))
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login verifies credentials and issues a session token. A missing account
// and a wrong password produce the same response.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var dto credentialsRequest
	if err := c.BodyParser(&dto); err != nil {
		return apperr.New(apperr.CodeInvalidArgument, "Invalid request body")
	}

	user, err := h.users.GetByEmail(dto.Email)
	if err != nil || !auth.VerifyPassword(dto.Password, user.HashedPassword) {
		return apperr.New(apperr.CodeUnauthenticated, "Incorrect email or password")
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}
