package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskassign/interfaces/api/handlers"
	"taskassign/pkg/token"
)

// SetupRoutes registers the full surface. Paths sit at the app root, not
// under a version prefix, because existing clients depend on them.
func SetupRoutes(app *fiber.App, h *handlers.Handlers, tokens *token.Service) {
	SetupHealthRoutes(app)
	SetupAuthRoutes(app, h)
	SetupUserRoutes(app, h, tokens)
	SetupTaskRoutes(app, h, tokens)
}
