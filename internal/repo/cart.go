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

// activeCartID returns the newest cart of the user, creating one when none
// exists. Runs inside the caller's transaction.
func activeCartID(tx *gorm.DB, userID uint) (uint, error) {
	var cart models.Cart
	err := tx.Where("user_id = ?", userID).Order("fecha DESC, id DESC").First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := tx.Create(&cart).Error; err != nil {
			return 0, err
		}
		return cart.ID, nil
	}
	if err != nil {
		return 0, err
	}
	return cart.ID, nil
}

// AddOne puts one unit of the product into the user's active cart. The
// stock bound is enforced by the guarded UPDATE itself, so two concurrent
// adds cannot push a line past the stock.
func (r *GormRepo) AddOne(ctx context.Context, userID, productID uint) (*models.CartLine, error) {
	var line models.CartLine
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
			}
			return err
		}

		cartID, err := activeCartID(tx, userID)
		if err != nil {
			return err
		}

		res := tx.Model(&models.CartLine{}).
			Where("carrito_id = ? AND producto_id = ? AND cantidad < ?", cartID, productID, product.Stock).
			Update("cantidad", gorm.Expr("cantidad + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("carrito_id = ? AND producto_id = ?", cartID, productID).First(&line).Error
		}

		// either no line yet, or the line is already at the stock bound
		err = tx.Where("carrito_id = ? AND producto_id = ?", cartID, productID).First(&line).Error
		if err == nil {
			return fmt.Errorf("product %d: %w", productID, domain.ErrInsufficientStock)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if product.Stock < 1 {
			return fmt.Errorf("product %d: %w", productID, domain.ErrInsufficientStock)
		}
		line = models.CartLine{CarritoID: cartID, ProductoID: productID, Cantidad: 1}
		return tx.Create(&line).Error
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// RemoveOne takes one unit of the product out of the active cart, deleting
// the line when it drops to zero.
func (r *GormRepo) RemoveOne(ctx context.Context, userID, productID uint) (deleted bool, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cartID, err := activeCartID(tx, userID)
		if err != nil {
			return err
		}

		var line models.CartLine
		if err := tx.Where("carrito_id = ? AND producto_id = ?", cartID, productID).First(&line).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %d not in cart: %w", productID, domain.ErrNotFound)
			}
			return err
		}

		if line.Cantidad > 1 {
			return tx.Model(&line).Update("cantidad", gorm.Expr("cantidad - 1")).Error
		}

		deleted = true
		return tx.Delete(&line).Error
	})
	return deleted, err
}

// CartItemView is one joined row of the cart listing, shaped for the wire.
type CartItemView struct {
	ProductID uint            `gorm:"column:product_id"        json:"product_id"`
	Nombre    string          `gorm:"column:product_name"      json:"product_name"`
	Precio    decimal.Decimal `gorm:"column:product_price"     json:"product_price"`
	ImagenURL string          `gorm:"column:product_image_url" json:"product_image_url"`
	Cantidad  int             `gorm:"column:quantity"          json:"quantity"`
}

func (r *GormRepo) CartContents(ctx context.Context, userID uint) ([]CartItemView, error) {
	rows := []CartItemView{}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cartID, err := activeCartID(tx, userID)
		if err != nil {
			return err
		}

		return tx.Table("carrito_productos AS cp").
			Select("p.id AS product_id, p.nombre AS product_name, p.precio AS product_price, p.imagen_url AS product_image_url, cp.cantidad AS quantity").
			Joins("JOIN productos p ON p.id = cp.producto_id").
			Where("cp.carrito_id = ?", cartID).
			Order("p.id ASC").
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
