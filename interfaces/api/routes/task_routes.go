package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskassign/interfaces/api/handlers"
	"taskassign/interfaces/api/middleware"
	"taskassign/pkg/token"
)

func SetupTaskRoutes(app *fiber.App, h *handlers.Handlers, tokens *token.Service) {
	tasks := app.Group("/tasks", middleware.Authenticate(tokens))

	tasks.Get("/user", h.TaskHandler.UserTasks)
	tasks.Get("/", middleware.RequireAdmin(), h.TaskHandler.ListTasks)
	tasks.Post("/assign", h.TaskHandler.Assign)
	tasks.Patch("/:taskId/status", h.TaskHandler.UpdateStatus)
	tasks.Patch("/:taskId", h.TaskHandler.UpdateFields)
	tasks.Delete("/:id", h.TaskHandler.Delete)
}
