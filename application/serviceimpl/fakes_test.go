package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskassign/domain/apperrors"
	"taskassign/domain/models"
)

// In-memory repository fakes. Not safe for concurrent use; tests are serial.

type memAdminRepo struct {
	admins map[uuid.UUID]*models.Admin
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{admins: make(map[uuid.UUID]*models.Admin)}
}

func (r *memAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	cp := *admin
	r.admins[admin.ID] = &cp
	return nil
}

func (r *memAdminRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Admin, error) {
	admin, ok := r.admins[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *admin
	return &cp, nil
}

func (r *memAdminRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, admin := range r.admins {
		if admin.Email == email {
			cp := *admin
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

type memUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		cp := *user
		users = append(users, &cp)
	}
	return users, nil
}

type memTaskRepo struct {
	tasks map[uuid.UUID]*models.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[uuid.UUID]*models.Task)}
}

func (r *memTaskRepo) Create(_ context.Context, task *models.Task) error {
	cp := *task
	cp.Assignee = nil
	cp.Assigner = nil
	r.tasks[task.ID] = &cp
	return nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *task
	return &cp, nil
}

func (r *memTaskRepo) GetByAssignee(_ context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var tasks []*models.Task
	for _, task := range r.tasks {
		if task.AssignedTo == userID {
			cp := *task
			tasks = append(tasks, &cp)
		}
	}
	return tasks, nil
}

func (r *memTaskRepo) List(_ context.Context) ([]*models.Task, error) {
	tasks := make([]*models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		cp := *task
		tasks = append(tasks, &cp)
	}
	return tasks, nil
}

func (r *memTaskRepo) Save(_ context.Context, task *models.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return apperrors.ErrNotFound
	}
	cp := *task
	cp.Assignee = nil
	cp.Assigner = nil
	r.tasks[task.ID] = &cp
	return nil
}

func (r *memTaskRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string, updatedAt time.Time) error {
	task, ok := r.tasks[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	task.Status = status
	task.UpdatedAt = updatedAt
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tasks[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}
