package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskassign/interfaces/api/handlers"
	"taskassign/interfaces/api/middleware"
	"taskassign/pkg/token"
)

func SetupUserRoutes(app *fiber.App, h *handlers.Handlers, tokens *token.Service) {
	authenticated := middleware.Authenticate(tokens)

	app.Get("/users/me", authenticated, h.UserHandler.Me)
	app.Get("/users", authenticated, h.UserHandler.ListUsers)
	app.Get("/admin", authenticated, h.UserHandler.AdminProfile)
	app.Get("/api/user/role", authenticated, h.UserHandler.Role)
}
