package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mhruska/concerts-api/internal/domain"
	"github.com/mhruska/concerts-api/internal/repository"
)

type fakeAuthRepo struct {
	usersByEmail map[string]domain.User
	nextID       uint
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		usersByEmail: make(map[string]domain.User),
		nextID:       1,
	}
}

func (r *fakeAuthRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, exists := r.usersByEmail[user.Email]; exists {
		return domain.User{}, repository.ErrUserEmailExists
	}

	user.ID = r.nextID
	r.nextID++
	r.usersByEmail[user.Email] = user

	return user, nil
}

func (r *fakeAuthRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, exists := r.usersByEmail[email]
	if !exists {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func TestAuthService_Register(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)

	created, err := svc.Register(context.Background(), domain.User{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "pw123456",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleUser, created.Role)
	assert.NotEqual(t, "pw123456", created.Password, "password must be stored hashed")

	err = bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("pw123456"))
	assert.NoError(t, err)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), domain.User{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "pw123456",
	})
	require.NoError(t, err)

	// Same email fails regardless of username and password.
	_, err = svc.Register(context.Background(), domain.User{
		Username: "bob",
		Email:    "alice@x.com",
		Password: "different1",
	})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), domain.User{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "pw123456",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "alice@x.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, domain.RoleUser, user.Role)
}

func TestAuthService_Login_NoCredentialLeak(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), domain.User{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "pw123456",
	})
	require.NoError(t, err)

	// Wrong password and unknown email must be indistinguishable.
	_, wrongPassword := svc.Login(context.Background(), "alice@x.com", "nope12345")
	_, unknownEmail := svc.Login(context.Background(), "nobody@x.com", "pw123456")

	assert.ErrorIs(t, wrongPassword, ErrBadCredentials)
	assert.ErrorIs(t, unknownEmail, ErrBadCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_Login_LegacyRecordWithoutHash(t *testing.T) {
	repo := newFakeAuthRepo()
	repo.usersByEmail["old@x.com"] = domain.User{
		ID:       1,
		Username: "old",
		Email:    "old@x.com",
		Password: "",
	}
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), "old@x.com", "whatever1")
	assert.ErrorIs(t, err, ErrLegacyPassword)
}
