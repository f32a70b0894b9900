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

type purchaseLine struct {
	Precio   decimal.Decimal `gorm:"column:precio"`
	Cantidad int             `gorm:"column:cantidad"`
}

// Purchase turns the active cart into a receipt. Everything runs in one
// transaction and the debit re-checks the balance at write time, so the
// wallet can never go negative.
func (r *GormRepo) Purchase(ctx context.Context, userID uint) (*models.Receipt, error) {
	var receipt models.Receipt
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cartID, err := activeCartID(tx, userID)
		if err != nil {
			return err
		}

		var lines []purchaseLine
		if err := tx.Table("carrito_productos AS cp").
			Select("p.precio AS precio, cp.cantidad AS cantidad").
			Joins("JOIN productos p ON p.id = cp.producto_id").
			Where("cp.carrito_id = ?", cartID).
			Scan(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrEmptyCart
		}

		total := decimal.Zero
		items := 0
		for _, l := range lines {
			total = total.Add(l.Precio.Mul(decimal.NewFromInt(int64(l.Cantidad))))
			items += l.Cantidad
		}

		var wallet models.Wallet
		hasWallet := true
		if err := tx.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			hasWallet = false
		}
		if !hasWallet {
			wallet.Monto = decimal.Zero
		}
		if wallet.Monto.LessThan(total) {
			return fmt.Errorf("balance %s below total %s: %w", wallet.Monto, total, domain.ErrInsufficientFunds)
		}

		if hasWallet {
			res := tx.Model(&models.Wallet{}).
				Where("user_id = ? AND monto >= ?", userID, total).
				Update("monto", gorm.Expr("monto - ?", total))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("balance changed under us: %w", domain.ErrInsufficientFunds)
			}
		}

		receipt = models.Receipt{UsuarioID: userID, Monto: total, Cantidad: items}
		if err := tx.Create(&receipt).Error; err != nil {
			return err
		}

		// the cart row itself stays and is reused for future lines
		return tx.Where("carrito_id = ?", cartID).Delete(&models.CartLine{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}
