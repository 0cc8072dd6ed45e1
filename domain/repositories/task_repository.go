package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskassign/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	GetByAssignee(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)
	Save(ctx context.Context, task *models.Task) error

	// UpdateStatus writes {status, updated_at} in a single statement keyed by
	// id, so concurrent mutators cannot lose writes between a load and a save.
	// Returns the store's not-found error when no row matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, updatedAt time.Time) error

	// Delete removes the task in a single statement; not-found when no row
	// matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
