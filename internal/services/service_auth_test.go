package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "unit-test-secret"

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserStore) {
	t.Helper()
	users := newFakeUserStore()
	return NewAuthService(users, testSecret, time.Hour), users
}

func subjectOf(t *testing.T, token string) string {
	t.Helper()
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	return claims.Subject
}

func TestRegister_CreatesUserAndSignsToken(t *testing.T) {
	svc, users := newTestAuthService(t)

	token, err := svc.Register(context.Background(), "John Doe", "John@Gmail.com", "secret123")
	require.NoError(t, err)

	user, err := users.FindByEmail(context.Background(), "john@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.Name)
	assert.Contains(t, user.Avatar, "gravatar.com/avatar/")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	assert.NotEqual(t, "secret123", user.Password)

	assert.Equal(t, user.ID.Hex(), subjectOf(t, token))
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), "John", "john@gmail.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other John", "john@gmail.com", "different")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc, users := newTestAuthService(t)

	_, err := svc.Register(context.Background(), "John", "john@gmail.com", "secret123")
	require.NoError(t, err)
	user, err := users.FindByEmail(context.Background(), "john@gmail.com")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "john@gmail.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), subjectOf(t, token))

	_, err = svc.Login(context.Background(), "john@gmail.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@gmail.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUser(t *testing.T) {
	svc, users := newTestAuthService(t)

	_, err := svc.Register(context.Background(), "John", "john@gmail.com", "secret123")
	require.NoError(t, err)
	user, err := users.FindByEmail(context.Background(), "john@gmail.com")
	require.NoError(t, err)

	got, err := svc.CurrentUser(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.CurrentUser(context.Background(), "not-an-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
