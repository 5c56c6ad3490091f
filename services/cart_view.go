package services

import (
	"shopcart-backend/dtos"

	"github.com/shopspring/decimal"
)

// CartRow is one cart item joined with its product, as read from the store.
type CartRow struct {
	ID        string
	Qty       int
	ProductID string
	Name      string
	Price     decimal.Decimal
}

// BuildCartView projects cart rows into the API view. Rows keep their order.
func BuildCartView(rows []CartRow) dtos.CartView {
	view := dtos.CartView{
		Items: make([]dtos.CartLine, 0, len(rows)),
		Total: decimal.Zero,
	}
	for _, r := range rows {
		lineTotal := r.Price.Mul(decimal.NewFromInt(int64(r.Qty)))
		view.Items = append(view.Items, dtos.CartLine{
			ID: r.ID,
			Product: dtos.ProductSnapshot{
				ID:    r.ProductID,
				Name:  r.Name,
				Price: r.Price,
			},
			Qty:       r.Qty,
			LineTotal: lineTotal,
		})
		view.Total = view.Total.Add(lineTotal)
	}
	return view
}
