package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dclavijo/tienda-backend/internal/domain"
	"github.com/dclavijo/tienda-backend/internal/es"
	"github.com/dclavijo/tienda-backend/internal/logging"
	"github.com/dclavijo/tienda-backend/internal/models"
	"github.com/dclavijo/tienda-backend/internal/repo"
	"github.com/dclavijo/tienda-backend/internal/transport"
)

type CatalogService struct {
	Repo    *repo.GormRepo
	Indexer *es.Indexer // nil disables index sync
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Nombre == nil || req.Precio == nil || req.ImagenURL == nil || req.Stock == nil {
		return nil, fmt.Errorf("nombre, precio, imagen_url and stock are required: %w", domain.ErrValidation)
	}
	if req.Precio.IsNegative() {
		return nil, fmt.Errorf("precio must be >= 0: %w", domain.ErrValidation)
	}
	if *req.Stock < 0 {
		return nil, fmt.Errorf("stock must be >= 0: %w", domain.ErrValidation)
	}

	product := models.Product{
		Nombre:    *req.Nombre,
		Precio:    *req.Precio,
		ImagenURL: *req.ImagenURL,
		Stock:     *req.Stock,
	}
	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		return nil, err
	}

	s.syncIndex(ctx, &product)
	return &product, nil
}

func (s *CatalogService) PatchProduct(ctx context.Context, id uint, req transport.PatchProductRequest) (*models.Product, error) {
	if req.Precio != nil && req.Precio.IsNegative() {
		return nil, fmt.Errorf("precio must be >= 0: %w", domain.ErrValidation)
	}
	if req.Stock != nil && *req.Stock < 0 {
		return nil, fmt.Errorf("stock must be >= 0: %w", domain.ErrValidation)
	}

	product, err := s.Repo.PatchProduct(ctx, id, repo.ProductPatch{
		Nombre:    req.Nombre,
		Precio:    req.Precio,
		ImagenURL: req.ImagenURL,
		Stock:     req.Stock,
	})
	if err != nil {
		return nil, err
	}

	s.syncIndex(ctx, product)
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	if s.Indexer != nil {
		if err := s.Indexer.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("index_sync_failed", "product_id", id, "error", err)
		}
	}
	return nil
}

func (s *CatalogService) TotalEarned(ctx context.Context) (decimal.Decimal, error) {
	return s.Repo.TotalEarned(ctx)
}

// syncIndex mirrors the product into the search index. Failures are logged,
// never returned: the store is the source of truth.
func (s *CatalogService) syncIndex(ctx context.Context, product *models.Product) {
	if s.Indexer == nil {
		return
	}
	if err := s.Indexer.IndexProduct(ctx, product); err != nil {
		logging.FromContext(ctx).Warn("index_sync_failed", "product_id", product.ID, "error", err)
	}
}
