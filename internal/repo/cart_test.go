package repo

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dclavijo/tienda-backend/internal/domain"
	"github.com/dclavijo/tienda-backend/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.Product{},
		&models.Cart{},
		&models.CartLine{},
		&models.Receipt{},
	))
	return &GormRepo{DB: db}
}

func TestActiveCartCreatedOnceAndReused(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	product := models.Product{Nombre: "taza", Precio: decimal.NewFromInt(8), Stock: 10}
	require.NoError(t, r.DB.Create(&product).Error)

	_, err := r.AddOne(ctx, 1, product.ID)
	require.NoError(t, err)
	_, err = r.AddOne(ctx, 1, product.ID)
	require.NoError(t, err)

	var carts int64
	r.DB.Model(&models.Cart{}).Count(&carts)
	require.EqualValues(t, 1, carts)

	// a different user gets their own cart
	_, err = r.AddOne(ctx, 2, product.ID)
	require.NoError(t, err)
	r.DB.Model(&models.Cart{}).Count(&carts)
	require.EqualValues(t, 2, carts)
}

func TestAddOneStockBoundAtUpdate(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	product := models.Product{Nombre: "unico", Precio: decimal.NewFromInt(5), Stock: 2}
	require.NoError(t, r.DB.Create(&product).Error)

	for i := 0; i < 2; i++ {
		_, err := r.AddOne(ctx, 1, product.ID)
		require.NoError(t, err)
	}

	_, err := r.AddOne(ctx, 1, product.ID)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var line models.CartLine
	require.NoError(t, r.DB.Where("producto_id = ?", product.ID).First(&line).Error)
	require.Equal(t, 2, line.Cantidad)
}

func TestPurchaseRollsBackOnInsufficientFunds(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	product := models.Product{Nombre: "caro", Precio: decimal.NewFromInt(100), Stock: 1}
	require.NoError(t, r.DB.Create(&product).Error)
	require.NoError(t, r.DB.Create(&models.Wallet{UserID: 1, Monto: decimal.NewFromInt(10)}).Error)

	_, err := r.AddOne(ctx, 1, product.ID)
	require.NoError(t, err)

	_, err = r.Purchase(ctx, 1)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	var wallet models.Wallet
	require.NoError(t, r.DB.Where("user_id = ?", 1).First(&wallet).Error)
	require.True(t, decimal.NewFromInt(10).Equal(wallet.Monto))

	var lines int64
	r.DB.Model(&models.CartLine{}).Count(&lines)
	require.EqualValues(t, 1, lines)
}

func TestPurchaseTotals(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	a := models.Product{Nombre: "a", Precio: decimal.NewFromFloat(2.50), Stock: 10}
	b := models.Product{Nombre: "b", Precio: decimal.NewFromInt(3), Stock: 10}
	require.NoError(t, r.DB.Create(&a).Error)
	require.NoError(t, r.DB.Create(&b).Error)
	require.NoError(t, r.DB.Create(&models.Wallet{UserID: 1, Monto: decimal.NewFromInt(20)}).Error)

	for i := 0; i < 2; i++ {
		_, err := r.AddOne(ctx, 1, a.ID)
		require.NoError(t, err)
	}
	_, err := r.AddOne(ctx, 1, b.ID)
	require.NoError(t, err)

	receipt, err := r.Purchase(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 3, receipt.Cantidad)
	require.True(t, decimal.NewFromInt(8).Equal(receipt.Monto), "got %s", receipt.Monto)

	var wallet models.Wallet
	require.NoError(t, r.DB.Where("user_id = ?", 1).First(&wallet).Error)
	require.True(t, decimal.NewFromInt(12).Equal(wallet.Monto), "got %s", wallet.Monto)
}
