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

// CreateUser inserts the user unless the email is already taken. The check
// and the insert run in one transaction so concurrent signups cannot both
// pass the check.
func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", user.Email).First(&existing).Error
		if err == nil {
			return fmt.Errorf("email %s already registered: %w", user.Email, domain.ErrConflict)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(user).Error
	})
}

func (r *GormRepo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

type ProfileView struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	WalletBalance decimal.Decimal `json:"walletBalance"`
}

// Profile reads the user row plus the wallet balance. A user without a
// wallet row reads as balance 0.
func (r *GormRepo) Profile(ctx context.Context, userID uint) (*ProfileView, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
		}
		return nil, err
	}

	balance, err := r.WalletBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileView{Name: user.Name, Email: user.Email, WalletBalance: balance}, nil
}

func (r *GormRepo) WalletBalance(ctx context.Context, userID uint) (decimal.Decimal, error) {
	var wallet models.Wallet
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return wallet.Monto, nil
}
