package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dclavijo/tienda-backend/internal/domain"
	"github.com/dclavijo/tienda-backend/internal/es"
	"github.com/dclavijo/tienda-backend/internal/models"
)

var ErrSearchUnavailable = errors.New("search unavailable")

type SearchService struct {
	Indexer *es.Indexer
}

func (s *SearchService) Search(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
	if query == "" {
		return 0, nil, fmt.Errorf("query is required: %w", domain.ErrValidation)
	}
	if s.Indexer == nil {
		return 0, nil, ErrSearchUnavailable
	}
	return s.Indexer.Search(ctx, query, from, size)
}
