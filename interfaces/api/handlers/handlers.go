package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskassign/domain/apperrors"
	"taskassign/domain/services"
	"taskassign/pkg/utils"
)

type Handlers struct {
	AuthHandler *AuthHandler
	UserHandler *UserHandler
	TaskHandler *TaskHandler
}

func NewHandlers(authService services.AuthService, taskService services.TaskService) *Handlers {
	return &Handlers{
		AuthHandler: NewAuthHandler(authService),
		UserHandler: NewUserHandler(authService),
		TaskHandler: NewTaskHandler(taskService),
	}
}

// respondServiceError maps the service error taxonomy onto HTTP. Anything
// outside the taxonomy is an internal error and leaks no detail.
func respondServiceError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return utils.NotFoundResponse(c, notFoundMsg)
	case errors.Is(err, apperrors.ErrDuplicateIdentity):
		return utils.DuplicateIdentityResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return utils.InvalidCredentialsResponse(c, "")
	case errors.Is(err, apperrors.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
