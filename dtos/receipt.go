package dtos

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Receipt is returned once by checkout and not retained.
type Receipt struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Total     decimal.Decimal `json:"total"`
	Items     []CartLine      `json:"items"`
	Customer  Customer        `json:"customer"`
}
