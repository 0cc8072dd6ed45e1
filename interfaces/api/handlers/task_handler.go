package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskassign/domain/dto"
	"taskassign/domain/services"
	"taskassign/interfaces/api/middleware"
	"taskassign/pkg/logger"
	"taskassign/pkg/utils"
)

// AdminIDHeader names the header the assignment route reads the acting admin
// from, kept for compatibility with existing clients.
const AdminIDHeader = "admin-id"

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Assign handles POST /tasks/assign.
func (h *TaskHandler) Assign(c *fiber.Ctx) error {
	ctx := c.UserContext()

	adminIDStr := c.Get(AdminIDHeader)
	if adminIDStr == "" {
		return utils.BadRequestResponse(c, "Admin ID is missing in headers")
	}

	adminID, err := uuid.Parse(adminIDStr)
	if err != nil {
		logger.WarnContext(ctx, "Invalid admin id header", "admin_id", adminIDStr)
		return utils.BadRequestResponse(c, "Invalid admin ID")
	}

	var req dto.AssignTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	task, err := h.taskService.AssignTask(ctx, adminID, &req)
	if err != nil {
		return respondServiceError(c, err, err.Error())
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

// UserTasks handles GET /tasks/user, scoped to the authenticated subject.
func (h *TaskHandler) UserTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	identity, err := middleware.IdentityFrom(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	tasks, err := h.taskService.GetUserTasks(ctx, identity.SubjectID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch user tasks", "user_id", identity.SubjectID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

// ListTasks handles GET /tasks. The route is admin-gated.
func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	tasks, err := h.taskService.ListTasks(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

// UpdateStatus handles PATCH /tasks/:taskId/status.
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	if err := h.taskService.UpdateTaskStatus(ctx, taskID, req.Status); err != nil {
		return respondServiceError(c, err, "Task not found")
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message": "Task status updated successfully",
	})
}

// UpdateFields handles PATCH /tasks/:taskId, a truthy-only partial update.
func (h *TaskHandler) UpdateFields(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	task, err := h.taskService.UpdateTaskFields(ctx, taskID, &req)
	if err != nil {
		return respondServiceError(c, err, "Task not found")
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

// Delete handles DELETE /tasks/:id.
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, taskID); err != nil {
		return respondServiceError(c, err, "Task not found")
	}

	return utils.SuccessResponse(c, fiber.Map{
		"message": "Task deleted successfully",
	})
}
