package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nhle/smarttask/internal/model"
	"github.com/nhle/smarttask/internal/store"
	"github.com/nhle/smarttask/internal/testutil"
)

func newTestService(t *testing.T) (*Service, *store.SQLiteStore) {
	t.Helper()

	s := testutil.NewTestStore(t)
	svc, err := NewService(s, model.AuthConfig{JWTSecret: "test-secret"}, nil)
	require.NoError(t, err)
	svc.bcryptCost = bcrypt.MinCost
	return svc, s
}

func TestNewServiceRequiresSecret(t *testing.T) {
	_, err := NewService(nil, model.AuthConfig{}, nil)
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestSignupAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Signup(ctx, " Ada ", " Ada@Example.com ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Ada", session.User.Name)
	assert.Equal(t, "ada@example.com", session.User.Email)
	assert.Equal(t, model.RoleUser, session.User.Role)
	assert.NotEqual(t, "s3cret", session.User.PasswordHash)

	claims, err := svc.ParseToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, claims.UserID())
	assert.Equal(t, model.RoleUser, claims.Role)

	login, err := svc.Login(ctx, "ada@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, login.User.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "A", "dup@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "B", "DUP@example.com", "pw")
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestSignupMissingFields(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Signup(context.Background(), "A", "", "pw")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Signup(context.Background(), "A", "a@example.com", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "A", "a@example.com", "right")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "right")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejects(t *testing.T) {
	svc, _ := newTestService(t)

	other, err := NewService(nil, model.AuthConfig{JWTSecret: "other-secret"}, nil)
	require.NoError(t, err)
	foreign, err := other.IssueToken("u1", model.RoleUser)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(-30 * 24 * time.Hour) }
	expired, err := svc.IssueToken("u1", model.RoleUser)
	require.NoError(t, err)
	svc.now = time.Now

	for name, token := range map[string]string{
		"empty":   "",
		"garbage": "not.a.token",
		"foreign": foreign,
		"expired": expired,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestPasswordResetRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "A", "a@example.com", "old")
	require.NoError(t, err)

	token, err := svc.ForgotPassword(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Len(t, token, 2*resetTokenBytes)

	require.NoError(t, svc.ResetPassword(ctx, token, "new"))

	_, err = svc.Login(ctx, "a@example.com", "old")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "a@example.com", "new")
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.ResetPassword(ctx, token, "again"), ErrInvalidToken)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ForgotPassword(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestEnsureAdmin(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "", ""))

	require.NoError(t, svc.EnsureAdmin(ctx, "admin@example.com", "pw"))
	admin, err := s.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	require.NoError(t, svc.EnsureAdmin(ctx, "admin@example.com", "different"))
	_, err = svc.Login(ctx, "admin@example.com", "pw")
	assert.NoError(t, err)
}
