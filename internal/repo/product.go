package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dclavijo/tienda-backend/internal/domain"
	"github.com/dclavijo/tienda-backend/internal/models"
)

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

// ProductPatch carries the fields an update request actually sent. A nil
// field keeps the stored value, so zero and empty-string are valid updates.
type ProductPatch struct {
	Nombre    *string
	Precio    *decimal.Decimal
	ImagenURL *string
	Stock     *int
}

func (r *GormRepo) PatchProduct(ctx context.Context, id uint, patch ProductPatch) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
			}
			return err
		}

		if patch.Nombre != nil {
			product.Nombre = *patch.Nombre
		}
		if patch.Precio != nil {
			product.Precio = *patch.Precio
		}
		if patch.ImagenURL != nil {
			product.ImagenURL = *patch.ImagenURL
		}
		if patch.Stock != nil {
			product.Stock = *patch.Stock
		}

		return tx.Save(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// TotalEarned sums the monto column over every receipt.
func (r *GormRepo) TotalEarned(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := r.DB.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(monto), 0) FROM recibos").
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
