package service

import (
	"context"

	"github.com/dclavijo/tienda-backend/internal/models"
	"github.com/dclavijo/tienda-backend/internal/repo"
)

type CheckoutService struct {
	Repo *repo.GormRepo
}

func (s *CheckoutService) Purchase(ctx context.Context, userID uint) (*models.Receipt, error) {
	return s.Repo.Purchase(ctx, userID)
}
