package service

import (
	"context"

	"github.com/dclavijo/tienda-backend/internal/models"
	"github.com/dclavijo/tienda-backend/internal/repo"
)

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) AddOne(ctx context.Context, userID, productID uint) (*models.CartLine, error) {
	return s.Repo.AddOne(ctx, userID, productID)
}

func (s *CartService) RemoveOne(ctx context.Context, userID, productID uint) (bool, error) {
	return s.Repo.RemoveOne(ctx, userID, productID)
}

func (s *CartService) GetCart(ctx context.Context, userID uint) ([]repo.CartItemView, error) {
	return s.Repo.CartContents(ctx, userID)
}
