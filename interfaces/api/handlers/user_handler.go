package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskassign/domain/dto"
	"taskassign/domain/services"
	"taskassign/interfaces/api/middleware"
	"taskassign/pkg/logger"
	"taskassign/pkg/utils"
)

type UserHandler struct {
	authService services.AuthService
}

func NewUserHandler(authService services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// ListUsers handles GET /users. Any authenticated identity may list users;
// the mapper guarantees password hashes never appear in the output.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	users, err := h.authService.ListUsers(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list users", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UsersToUserResponses(users))
}

// Me handles GET /users/me, resolving the profile of the authenticated subject.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	ctx := c.UserContext()

	identity, err := middleware.IdentityFrom(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.authService.GetUserProfile(ctx, identity.SubjectID)
	if err != nil {
		return respondServiceError(c, err, "User not found")
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}

// AdminProfile handles GET /admin, resolving the admin record of the
// authenticated subject.
func (h *UserHandler) AdminProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	identity, err := middleware.IdentityFrom(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	admin, err := h.authService.GetAdminProfile(ctx, identity.SubjectID)
	if err != nil {
		return respondServiceError(c, err, "Admin not found")
	}

	return utils.SuccessResponse(c, dto.AdminToAdminResponse(admin))
}

// Role handles GET /api/user/role, echoing the role the token carries.
func (h *UserHandler) Role(c *fiber.Ctx) error {
	identity, err := middleware.IdentityFrom(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	if identity.Role == "" {
		return utils.ForbiddenResponse(c, "Role not found")
	}

	return utils.SuccessResponse(c, &dto.RoleResponse{Role: identity.Role})
}
