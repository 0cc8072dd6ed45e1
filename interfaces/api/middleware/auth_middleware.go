package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskassign/pkg/logger"
	"taskassign/pkg/token"
	"taskassign/pkg/utils"
)

const identityLocal = "identity"

// Authenticate verifies the bearer token and binds the resolved identity to
// the request. Authentication is strictly the first stage; role decisions
// happen afterwards in RequireAdmin. Each request is verified independently.
func Authenticate(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "No token provided")
		}

		raw := token.ExtractFromHeader(authHeader)
		if raw == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		identity, err := tokens.Verify(raw)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token verification failed", "error", err)
			switch {
			case errors.Is(err, token.ErrExpiredToken):
				return utils.UnauthorizedResponse(c, "Token has expired")
			default:
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
		}

		c.Locals(identityLocal, identity)
		return c.Next()
	}
}

// RequireAdmin is the role policy gate for admin-only operations. It assumes
// Authenticate already ran; an authenticated non-admin gets 403, never 401.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := IdentityFrom(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "")
		}

		if identity.Role != token.RoleAdmin {
			return utils.ForbiddenResponse(c, "Admin access required")
		}

		return c.Next()
	}
}

// IdentityFrom returns the identity Authenticate bound to this request.
func IdentityFrom(c *fiber.Ctx) (*token.Identity, error) {
	identity, ok := c.Locals(identityLocal).(*token.Identity)
	if !ok || identity == nil {
		return nil, errors.New("identity not found in request context")
	}
	return identity, nil
}
