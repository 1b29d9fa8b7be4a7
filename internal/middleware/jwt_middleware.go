package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/CFBruna/fullstack-product-manager/internal/apperrors"
	"github.com/CFBruna/fullstack-product-manager/internal/repositories"
	"github.com/CFBruna/fullstack-product-manager/internal/services"
)

// principalKey is the locals key the resolved principal is stored under.
const principalKey = "principal"

// Principal is the authenticated identity attached to a request. The password
// hash never travels with it.
type Principal struct {
	ID    uint
	Email string
}

// AuthRequired gates a route behind bearer-token authentication. A missing
// header fails with "Token not provided"; any verification or lookup failure
// fails with the uniform "Invalid token" so the sub-cause is not revealed.
func AuthRequired(authService *services.AuthService, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.New("Token not provided", fiber.StatusUnauthorized)
		}

		// Expected format: "Bearer <token>". Anything else is treated as a
		// present-but-invalid token.
		var tokenString string
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 {
			tokenString = parts[1]
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			return apperrors.New("Invalid token", fiber.StatusUnauthorized)
		}

		// The token may outlive its user; one lookup per request, no caching.
		user, err := userRepo.FindByID(claims.ID)
		if err != nil {
			return apperrors.New("Invalid token", fiber.StatusUnauthorized)
		}

		c.Locals(principalKey, Principal{ID: user.ID, Email: user.Email})
		return c.Next()
	}
}

// PrincipalFromCtx extracts the authenticated principal set by AuthRequired.
func PrincipalFromCtx(c *fiber.Ctx) (Principal, bool) {
	principal, ok := c.Locals(principalKey).(Principal)
	return principal, ok
}
