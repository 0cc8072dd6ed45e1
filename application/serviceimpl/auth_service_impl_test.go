package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"taskassign/domain/apperrors"
	"taskassign/domain/dto"
	"taskassign/pkg/token"
)

func newAuthFixture() (*memAdminRepo, *memUserRepo, *AuthServiceImpl) {
	adminRepo := newMemAdminRepo()
	userRepo := newMemUserRepo()
	tokens := token.NewService("test-secret", time.Hour)
	svc := NewAuthService(adminRepo, userRepo, tokens, nil).(*AuthServiceImpl)
	return adminRepo, userRepo, svc
}

func TestRegisterAdmin(t *testing.T) {
	_, _, svc := newAuthFixture()
	ctx := context.Background()

	admin, err := svc.RegisterAdmin(ctx, &dto.AdminSignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", admin.Email)

	// The stored value is a real bcrypt hash of the password, not plaintext.
	assert.NotEqual(t, "secret123", admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("secret123")))
}

func TestRegisterAdminDuplicateEmail(t *testing.T) {
	adminRepo, _, svc := newAuthFixture()
	ctx := context.Background()

	req := &dto.AdminSignupRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123"}
	_, err := svc.RegisterAdmin(ctx, req)
	require.NoError(t, err)

	_, err = svc.RegisterAdmin(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateIdentity)
	assert.Len(t, adminRepo.admins, 1, "no duplicate record may be created")
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	_, userRepo, svc := newAuthFixture()
	ctx := context.Background()

	req := &dto.UserSignupRequest{Name: "Bob", Email: "bob@example.com", Password: "secret123", Designation: "Engineer"}
	_, err := svc.RegisterUser(ctx, req)
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateIdentity)
	assert.Len(t, userRepo.users, 1)
}

func TestLoginAdmin(t *testing.T) {
	_, _, svc := newAuthFixture()
	ctx := context.Background()

	registered, err := svc.RegisterAdmin(ctx, &dto.AdminSignupRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	tok, admin, err := svc.LoginAdmin(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.Equal(t, registered.ID, admin.ID)

	// The issued token resolves back to the admin identity.
	tokens := token.NewService("test-secret", time.Hour)
	identity, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, identity.SubjectID)
	assert.Equal(t, token.RoleAdmin, identity.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	_, _, svc := newAuthFixture()
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, &dto.UserSignupRequest{
		Name: "Bob", Email: "bob@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, _, err = svc.LoginUser(ctx, &dto.LoginRequest{Email: "bob@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	_, _, svc := newAuthFixture()
	ctx := context.Background()

	_, _, err := svc.LoginUser(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, _, err = svc.LoginAdmin(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetProfiles(t *testing.T) {
	_, _, svc := newAuthFixture()
	ctx := context.Background()

	admin, err := svc.RegisterAdmin(ctx, &dto.AdminSignupRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	user, err := svc.RegisterUser(ctx, &dto.UserSignupRequest{
		Name: "Bob", Email: "bob@example.com", Password: "secret123", Designation: "Engineer",
	})
	require.NoError(t, err)

	gotAdmin, err := svc.GetAdminProfile(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, gotAdmin.Email)

	gotUser, err := svc.GetUserProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", gotUser.Designation)

	_, err = svc.GetUserProfile(ctx, admin.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
