package services

import (
	"errors"
	"fmt"
)

// MaxQty bounds the quantity of a single cart line.
const MaxQty = 9999

// Error codes shared by every service error. Handlers translate them to HTTP statuses;
// anything without a code is an internal fault.
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNotFound        = "NOT_FOUND"
	CodeUnavailable     = "UNAVAILABLE"
)

// DomainError is a client-facing failure with a stable code.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

var (
	ErrInvalidQuantity    = NewDomainError(CodeInvalidArgument, "qty must be a positive integer")
	ErrQtyTooLarge        = NewDomainError(CodeInvalidArgument, fmt.Sprintf("qty must not exceed %d", MaxQty))
	ErrMissingProductID   = NewDomainError(CodeInvalidArgument, "productId is required")
	ErrProductNotFound    = NewDomainError(CodeNotFound, "Product not found")
	ErrCartItemNotFound   = NewDomainError(CodeNotFound, "Cart item not found")
	ErrUnknownUser        = NewDomainError(CodeNotFound, "User not found")
	ErrCatalogUnavailable = NewDomainError(CodeUnavailable, "Catalog source unavailable")
)

// CodeOf returns the domain code carried by err, or "" for internal faults.
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
