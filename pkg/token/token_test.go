package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskassign/pkg/token"
)

func TestIssueAndVerify(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)
	subjectID := uuid.New()

	raw, err := svc.Issue(subjectID, token.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	identity, err := svc.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, subjectID, identity.SubjectID)
	assert.Equal(t, token.RoleAdmin, identity.Role)
}

func TestVerifyMissingToken(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)

	_, err := svc.Verify("")
	assert.ErrorIs(t, err, token.ErrMissingToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := token.NewService("test-secret", -time.Minute)

	raw, err := svc.Issue(uuid.New(), token.RoleUser)
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, token.ErrExpiredToken)
}

func TestVerifyTamperedToken(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)

	raw, err := svc.Issue(uuid.New(), token.RoleUser)
	require.NoError(t, err)

	// Flip the last byte of the signature.
	tampered := []byte(raw)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = svc.Verify(string(tampered))
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := token.NewService("secret-one", time.Hour)
	verifier := token.NewService("secret-two", time.Hour)

	raw, err := issuer.Issue(uuid.New(), token.RoleAdmin)
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestExtractFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", ""},
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"missing scheme", "abc.def.ghi", ""},
		{"wrong scheme", "Basic abc", ""},
		{"extra parts", "Bearer a b", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, token.ExtractFromHeader(tt.header))
		})
	}
}
