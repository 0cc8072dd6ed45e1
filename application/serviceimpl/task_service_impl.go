package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskassign/domain/apperrors"
	"taskassign/domain/dto"
	"taskassign/domain/models"
	"taskassign/domain/repositories"
	"taskassign/domain/services"
	"taskassign/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo  repositories.TaskRepository
	userRepo  repositories.UserRepository
	adminRepo repositories.AdminRepository
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	userRepo repositories.UserRepository,
	adminRepo repositories.AdminRepository,
) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:  taskRepo,
		userRepo:  userRepo,
		adminRepo: adminRepo,
	}
}

func (s *TaskServiceImpl) AssignTask(ctx context.Context, adminID uuid.UUID, req *dto.AssignTaskRequest) (*models.Task, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		logger.WarnContext(ctx, "Admin not found for task assignment", "admin_id", adminID)
		return nil, fmt.Errorf("admin %s: %w", adminID, apperrors.ErrNotFound)
	}

	assigneeID, err := uuid.Parse(req.AssignedTo)
	if err != nil {
		return nil, fmt.Errorf("assignedTo: %w", apperrors.ErrValidation)
	}

	assignee, err := s.userRepo.GetByID(ctx, assigneeID)
	if err != nil {
		logger.WarnContext(ctx, "User not found for task assignment", "user_id", assigneeID)
		return nil, fmt.Errorf("user %s: %w", assigneeID, apperrors.ErrNotFound)
	}

	now := time.Now()
	if !models.ValidDueDate(req.DueDate, now) {
		logger.WarnContext(ctx, "Due date in the past", "due_date", req.DueDate)
		return nil, fmt.Errorf("due date cannot be in the past: %w", apperrors.ErrValidation)
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return nil, fmt.Errorf("priority %q: %w", priority, apperrors.ErrValidation)
	}

	task := &models.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      models.StatusPending,
		Priority:    priority,
		AssignedTo:  assignee.ID,
		AssignedBy:  admin.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "admin_id", adminID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task assigned",
		"task_id", task.ID,
		"assigned_to", task.AssignedTo,
		"assigned_by", task.AssignedBy,
	)

	task.Assignee = assignee
	task.Assigner = admin
	return task, nil
}

func (s *TaskServiceImpl) GetUserTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	tasks, err := s.taskRepo.GetByAssignee(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get user tasks", "user_id", userID, "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, err
	}
	return tasks, nil
}

// UpdateTaskStatus overwrites the status field. Any value in the enum may be
// written at any time; there is no forward-only rule.
func (s *TaskServiceImpl) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status string) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("status %q: %w", status, apperrors.ErrValidation)
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, status, time.Now()); err != nil {
		logger.WarnContext(ctx, "Task status update failed", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task status updated", "task_id", taskID, "status", status)
	return nil
}

// UpdateTaskFields applies a partial update. A field changes only when the
// request supplies a non-zero value, so an explicit empty string cannot clear
// a field. The due date is not re-validated here.
func (s *TaskServiceImpl) UpdateTaskFields(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for update", "task_id", taskID)
		return nil, err
	}

	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.Priority != "" {
		if !models.ValidPriority(req.Priority) {
			return nil, fmt.Errorf("priority %q: %w", req.Priority, apperrors.ErrValidation)
		}
		task.Priority = req.Priority
	}
	if req.AssignedTo != "" {
		assigneeID, err := uuid.Parse(req.AssignedTo)
		if err != nil {
			return nil, fmt.Errorf("assignedTo: %w", apperrors.ErrValidation)
		}
		task.AssignedTo = assigneeID
		task.Assignee = nil
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Save(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)
	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		logger.WarnContext(ctx, "Task deletion failed", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)
	return nil
}
