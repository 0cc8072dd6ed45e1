package services

import (
	"context"

	"github.com/google/uuid"

	"taskassign/domain/dto"
	"taskassign/domain/models"
)

// AuthService owns admin and user credential records: signup, login, and
// profile reads. Passwords are stored as bcrypt hashes and never returned.
type AuthService interface {
	RegisterAdmin(ctx context.Context, req *dto.AdminSignupRequest) (*models.Admin, error)
	RegisterUser(ctx context.Context, req *dto.UserSignupRequest) (*models.User, error)
	LoginAdmin(ctx context.Context, req *dto.LoginRequest) (string, *models.Admin, error)
	LoginUser(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GetAdminProfile(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	GetUserProfile(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}
