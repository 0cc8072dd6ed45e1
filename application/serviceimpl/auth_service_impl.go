package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskassign/domain/apperrors"
	"taskassign/domain/dto"
	"taskassign/domain/models"
	"taskassign/domain/repositories"
	"taskassign/domain/services"
	redispkg "taskassign/infrastructure/redis"
	"taskassign/pkg/logger"
	"taskassign/pkg/token"
)

const profileCacheTTL = 5 * time.Minute

type AuthServiceImpl struct {
	adminRepo repositories.AdminRepository
	userRepo  repositories.UserRepository
	tokens    *token.Service
	cache     *redispkg.Client // nil disables caching
}

func NewAuthService(
	adminRepo repositories.AdminRepository,
	userRepo repositories.UserRepository,
	tokens *token.Service,
	cache *redispkg.Client,
) services.AuthService {
	return &AuthServiceImpl{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		tokens:    tokens,
		cache:     cache,
	}
}

func (s *AuthServiceImpl) RegisterAdmin(ctx context.Context, req *dto.AdminSignupRequest) (*models.Admin, error) {
	existing, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		logger.WarnContext(ctx, "Admin email already exists", "email", req.Email)
		return nil, fmt.Errorf("admin %q: %w", req.Email, apperrors.ErrDuplicateIdentity)
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	now := time.Now()
	admin := &models.Admin{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		logger.ErrorContext(ctx, "Failed to create admin", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Admin registered", "admin_id", admin.ID, "email", admin.Email)
	return admin, nil
}

func (s *AuthServiceImpl) RegisterUser(ctx context.Context, req *dto.UserSignupRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		logger.WarnContext(ctx, "User email already exists", "email", req.Email)
		return nil, fmt.Errorf("user %q: %w", req.Email, apperrors.ErrDuplicateIdentity)
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashed,
		Designation: req.Designation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func (s *AuthServiceImpl) LoginAdmin(ctx context.Context, req *dto.LoginRequest) (string, *models.Admin, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.WarnContext(ctx, "Admin login failed - email not found", "email", req.Email)
		return "", nil, err
	}

	if err := comparePassword(admin.Password, req.Password); err != nil {
		logger.WarnContext(ctx, "Admin login failed - invalid password", "admin_id", admin.ID)
		return "", nil, apperrors.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(admin.ID, token.RoleAdmin)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to issue token", "admin_id", admin.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "Admin logged in", "admin_id", admin.ID, "email", admin.Email)
	return tok, admin, nil
}

func (s *AuthServiceImpl) LoginUser(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.WarnContext(ctx, "User login failed - email not found", "email", req.Email)
		return "", nil, err
	}

	if err := comparePassword(user.Password, req.Password); err != nil {
		logger.WarnContext(ctx, "User login failed - invalid password", "user_id", user.ID)
		return "", nil, apperrors.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, token.RoleUser)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to issue token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "email", user.Email)
	return tok, user, nil
}

func (s *AuthServiceImpl) GetAdminProfile(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	if s.cache != nil {
		var cached models.Admin
		if err := s.cache.GetJSON(ctx, adminProfileKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// Hash stripped before caching: the cache never holds credentials.
		safe := *admin
		safe.Password = ""
		if err := s.cache.SetJSON(ctx, adminProfileKey(id), &safe, profileCacheTTL); err != nil {
			logger.WarnContext(ctx, "Profile cache write failed", "admin_id", id, "error", err)
		}
	}

	return admin, nil
}

func (s *AuthServiceImpl) GetUserProfile(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.cache != nil {
		var cached models.User
		if err := s.cache.GetJSON(ctx, userProfileKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		safe := *user
		safe.Password = ""
		if err := s.cache.SetJSON(ctx, userProfileKey(id), &safe, profileCacheTTL); err != nil {
			logger.WarnContext(ctx, "Profile cache write failed", "user_id", id, "error", err)
		}
	}

	return user, nil
}

func (s *AuthServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

func adminProfileKey(id uuid.UUID) string {
	return "profile:admin:" + id.String()
}

func userProfileKey(id uuid.UUID) string {
	return "profile:user:" + id.String()
}

// bcrypt with its default cost of 10, matching the long-standing stored hashes.
func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func comparePassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
