package dtos

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ExternalProduct is one record of the third-party catalog feed.
// Price accepts both JSON numbers and numeric strings.
type ExternalProduct struct {
	ID    json.Number      `json:"id"`
	Title string           `json:"title"`
	Price *decimal.Decimal `json:"price"`
}
