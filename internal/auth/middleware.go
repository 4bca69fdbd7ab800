package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"synthesistalk-backend/internal/apperr"
	"synthesistalk-backend/internal/models"
)

const localsUserKey = "currentUser"

// UserResolver loads the account a validated token points at. Satisfied by
// repo.UserRepoInterface.
type UserResolver interface {
	GetByID(id uint) (*models.User, error)
}

// RequireUser guards a route group: it extracts the bearer token, validates
// it and resolves the user row. A token for a deleted account fails the
// same way as an invalid one.
func RequireUser(tokens *TokenIssuer, users UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return apperr.New(apperr.CodeUnauthenticated, "Not authenticated")
		}

		userID, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return err
		}

		user, err := users.GetByID(userID)
		if err != nil {
			return apperr.Wrap(apperr.CodeUnauthenticated, "Could not validate credentials", err)
		}

		c.Locals(localsUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user resolved by RequireUser, or nil on
// unprotected routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localsUserKey).(*models.User)
	return user
}
