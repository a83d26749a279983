package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mhruska/concerts-api/internal/domain"
	"github.com/mhruska/concerts-api/internal/repository"
)

var (
	ErrUserNotFound  = repository.ErrUserNotFound
	ErrWrongPassword = errors.New("wrong current password")
	ErrEmailTaken    = errors.New("email is already taken by someone else")
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	EmailTakenByOther(ctx context.Context, email string, userID uint) (bool, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	Delete(ctx context.Context, id uint) error
}

// ProfileUpdate carries the optional profile fields; empty strings mean
// "leave unchanged".
type ProfileUpdate struct {
	Username string
	Email    string
	Password string
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// UpdateProfile applies the provided fields to the caller's own record.
// A changed email is re-checked for uniqueness excluding the caller, so
// re-submitting the current email is a no-op success. The record is
// persisted only if something actually changed.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	changed := false

	if update.Username != "" && update.Username != user.Username {
		user.Username = update.Username
		changed = true
	}

	if update.Email != "" && update.Email != user.Email {
		taken, err := s.repo.EmailTakenByOther(ctx, update.Email, userID)
		if err != nil {
			return domain.User{}, fmt.Errorf("s.repo.EmailTakenByOther -> %w", err)
		}
		if taken {
			return domain.User{}, ErrEmailTaken
		}

		user.Email = update.Email
		changed = true
	}

	if update.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(update.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, err
		}

		user.Password = string(hash)
		changed = true
	}

	if !changed {
		return user, nil
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// UpdateProfileWithPassword is the legacy update variant that demands
// the current password before applying any change.
func (s *UserService) UpdateProfileWithPassword(ctx context.Context, userID uint, currentPassword string, update ProfileUpdate) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return s.UpdateProfile(ctx, userID, update)
}

// DeleteUser removes the account; the user's tickets go with it.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
