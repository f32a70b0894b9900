package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dclavijo/tienda-backend/internal/domain"
	"github.com/dclavijo/tienda-backend/internal/hash"
	"github.com/dclavijo/tienda-backend/internal/models"
	"github.com/dclavijo/tienda-backend/internal/repo"
)

type AuthService struct {
	Repo *repo.GormRepo
}

func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (*models.User, error) {
	hashed, err := hash.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		Name:         name,
		Role:         "user",
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) LogIn(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("unknown email: %w", domain.ErrBadCredentials)
		}
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, fmt.Errorf("wrong password: %w", domain.ErrBadCredentials)
	}
	return user, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uint) (*repo.ProfileView, error) {
	return s.Repo.Profile(ctx, userID)
}
