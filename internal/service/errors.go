package service

import "errors"

var (
	ErrIDRequired      = errors.New("id is required")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidPrice    = errors.New("price must be a non-negative decimal")
	ErrReaderNil       = errors.New("reader is nil")
	ErrMenuNotFound    = errors.New("menu not found")
	ErrSubMenuNotFound = errors.New("submenu not found")
	ErrDishNotFound    = errors.New("dish not found")
	ErrNoImage         = errors.New("dish has no image")

	// ErrSubMenuConflict and ErrDishConflict enforce the ownership rule:
	// a title may live under exactly one parent.
	ErrSubMenuConflict = errors.New("submenu already belongs to another menu")
	ErrDishConflict    = errors.New("dish already belongs to another submenu")
)
