package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskassign/interfaces/api/handlers"
)

func SetupAuthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Post("/admin/signup", h.AuthHandler.AdminSignup)
	app.Post("/admin/login", h.AuthHandler.AdminLogin)
	app.Post("/user/signup", h.AuthHandler.UserSignup)
	app.Post("/user/login", h.AuthHandler.UserLogin)
}
