package domain

import "errors"

// Sentinel errors shared by the repo and service layers. Handlers translate
// them into HTTP statuses at the boundary.
var (
	ErrValidation        = errors.New("validation")          // 400
	ErrBadCredentials    = errors.New("bad credentials")     // 401
	ErrNotFound          = errors.New("not found")           // 404
	ErrConflict          = errors.New("conflict")            // 409
	ErrInsufficientStock = errors.New("insufficient stock")  // 400
	ErrInsufficientFunds = errors.New("insufficient funds")  // 400
	ErrEmptyCart         = errors.New("empty cart")          // 400
)
