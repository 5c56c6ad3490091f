package dtos

import "github.com/shopspring/decimal"

func init() {
	// Prices and totals go out as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductSnapshot is a product as served by the catalog endpoint and embedded in cart lines
// and receipts.
type ProductSnapshot struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type CartLine struct {
	ID        string          `json:"id"`
	Product   ProductSnapshot `json:"product"`
	Qty       int             `json:"qty"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// CartView is derived from the persisted cart rows on every read and never stored.
type CartView struct {
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}
