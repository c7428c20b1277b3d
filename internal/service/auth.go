package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/unimarket/backend/internal/models"
	"github.com/unimarket/backend/internal/repo"
)

type AuthService struct {
	Repo *repo.GormRepo
}

// Signup registers a user by email. A second signup with a known email
// is not an error: the existing user is returned with created=false.
func (s *AuthService) Signup(ctx context.Context, name, email string) (*models.User, bool, error) {
	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user, err = s.Repo.CreateUser(ctx, name, email)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// Login looks a user up by email and silently creates one when absent.
// This intentionally diverges from Signup, which reports the duplicate;
// both behaviors are part of the published contract.
func (s *AuthService) Login(ctx context.Context, name, email string) (*models.User, error) {
	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return s.Repo.CreateUser(ctx, name, email)
}
