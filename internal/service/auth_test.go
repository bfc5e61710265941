package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/atinyakov/taskwarden/internal/apperrors"
	"github.com/atinyakov/taskwarden/internal/auth"
	"github.com/atinyakov/taskwarden/internal/models"
)

// fakeUserRepo implements UserRepository backed by a map.
type fakeUserRepo struct {
	users     map[string]*models.User
	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, username string, passwordHash []byte) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[username]; ok {
		return apperrors.ErrConflict
	}
	f.users[username] = &models.User{ID: "id-" + username, Username: username, PasswordHash: passwordHash}
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.users[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

var testSecret = []byte("test-secret")

func newTestAuthService(repo UserRepository) *AuthService {
	return NewAuthService(repo, testSecret, time.Hour)
}

func TestRegisterThenLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	token, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "id-alice", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	require.NoError(t, svc.Register(context.Background(), "alice", "pw1"))

	stored := repo.users["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, []byte("pw1"), stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(stored.PasswordHash, []byte("pw1")))
}

func TestRegister_Duplicate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))
	firstHash := repo.users["alice"].PasswordHash

	err := svc.Register(ctx, "alice", "pw2")
	require.ErrorIs(t, err, apperrors.ErrConflict)

	// The first registration must be unaffected.
	assert.Equal(t, firstHash, repo.users["alice"].PasswordHash)
	_, err = svc.Login(ctx, "alice", "pw1")
	assert.NoError(t, err)
}

func TestLogin_WrongPasswordAndUnknownUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	// Wrong password and nonexistent username yield the same error,
	// so callers cannot tell whether the account exists.
	_, errWrongPassword := svc.Login(ctx, "alice", "wrong")
	_, errUnknownUser := svc.Login(ctx, "ghost", "pw1")

	require.ErrorIs(t, errWrongPassword, apperrors.ErrInvalidCredentials)
	require.ErrorIs(t, errUnknownUser, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownUser.Error())
}

func TestLogin_RepoError(t *testing.T) {
	repo := newFakeUserRepo()
	repo.getErr = errors.New("db down")
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "alice", "pw1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
