package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskassign/domain/dto"
	"taskassign/domain/services"
	"taskassign/pkg/logger"
	"taskassign/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// AdminSignup handles POST /admin/signup.
func (h *AuthHandler) AdminSignup(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.AdminSignupRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	logger.InfoContext(ctx, "Admin signup attempt", "email", req.Email)

	admin, err := h.authService.RegisterAdmin(ctx, &req)
	if err != nil {
		return respondServiceError(c, err, "Admin not found")
	}

	return utils.CreatedResponse(c, dto.AdminToAdminResponse(admin))
}

// AdminLogin handles POST /admin/login. An unknown email is 404, a wrong
// password 401; the two are distinct outcomes.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	tok, admin, err := h.authService.LoginAdmin(ctx, &req)
	if err != nil {
		return respondServiceError(c, err, "Admin not found")
	}

	return utils.SuccessResponse(c, &dto.LoginResponse{
		Token: tok,
		Admin: dto.AdminToAdminResponse(admin),
	})
}

// UserSignup handles POST /user/signup.
func (h *AuthHandler) UserSignup(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.UserSignupRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	logger.InfoContext(ctx, "User signup attempt", "email", req.Email)

	user, err := h.authService.RegisterUser(ctx, &req)
	if err != nil {
		return respondServiceError(c, err, "User not found")
	}

	return utils.CreatedResponse(c, dto.UserToUserResponse(user))
}

// UserLogin handles POST /user/login.
func (h *AuthHandler) UserLogin(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	tok, user, err := h.authService.LoginUser(ctx, &req)
	if err != nil {
		return respondServiceError(c, err, "User not found")
	}

	return utils.SuccessResponse(c, &dto.LoginResponse{
		Token: tok,
		User:  dto.UserToUserResponse(user),
	})
}
