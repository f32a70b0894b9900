package transport

import "github.com/shopspring/decimal"

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LogInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateProductRequest uses pointers so that a present-but-zero stock is
// distinguishable from an absent field.
type CreateProductRequest struct {
	Nombre    *string          `json:"nombre"`
	Precio    *decimal.Decimal `json:"precio"`
	ImagenURL *string          `json:"imagen_url"`
	Stock     *int             `json:"stock"`
}

type PatchProductRequest struct {
	Nombre    *string          `json:"nombre"`
	Precio    *decimal.Decimal `json:"precio"`
	ImagenURL *string          `json:"imagen_url"`
	Stock     *int             `json:"stock"`
}
