package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// monetary fields are plain JSON numbers on the wire
	decimal.MarshalJSONWithoutQuotes = true
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Name         string `gorm:"not null"                 json:"name"`
	Role         string `gorm:"not null;default:user"    json:"role"`
}

type Wallet struct {
	ID     uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint            `gorm:"uniqueIndex;not null"     json:"user_id"`
	Monto  decimal.Decimal `gorm:"type:numeric;not null"    json:"monto"`
}

type Product struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"  json:"id"`
	Nombre    string          `gorm:"not null"                  json:"nombre"`
	Precio    decimal.Decimal `gorm:"type:numeric;not null"     json:"precio"`
	ImagenURL string          `gorm:"column:imagen_url"         json:"imagen_url"`
	Stock     int             `gorm:"not null;check:stock >= 0" json:"stock"`
}

// Cart is the carrito row itself. Its lines live in CartLine; the newest cart
// of a user is the active one and survives checkout with its lines deleted.
type Cart struct {
	ID     uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint      `gorm:"index;not null"           json:"user_id"`
	Fecha  time.Time `gorm:"autoCreateTime"           json:"fecha"`
}

func (Cart) TableName() string { return "carritos" }

type CartLine struct {
	ID         uint `gorm:"primaryKey;autoIncrement"                  json:"id"`
	CarritoID  uint `gorm:"uniqueIndex:idx_carrito_producto;not null" json:"carrito_id"`
	ProductoID uint `gorm:"uniqueIndex:idx_carrito_producto;not null" json:"producto_id"`
	Cantidad   int  `gorm:"not null;check:cantidad > 0"               json:"cantidad"`
}

func (CartLine) TableName() string { return "carrito_productos" }

type Receipt struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioID uint            `gorm:"index;not null"           json:"usuario_id"`
	Fecha     time.Time       `gorm:"autoCreateTime"           json:"fecha"`
	Monto     decimal.Decimal `gorm:"type:numeric;not null"    json:"monto"`
	Cantidad  int             `gorm:"not null"                 json:"cantidad"`
}

func (Receipt) TableName() string { return "recibos" }
