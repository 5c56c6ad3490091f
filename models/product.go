package models

import "github.com/shopspring/decimal"

// Product is a catalog entry. Rows are only written by the catalog loader,
// which replaces them by id.
type Product struct {
	ID    string          `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name  string          `gorm:"not null;index" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}
