package services

import (
	"encoding/json"
	"fmt"
	"testing"

	"shopcart-backend/dtos"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCartView(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		view := BuildCartView(nil)

		assert.NotNil(t, view.Items)
		assert.Empty(t, view.Items)
		assert.True(t, view.Total.IsZero())

		b, err := json.Marshal(view)
		require.NoError(t, err)
		assert.JSONEq(t, `{"items":[],"total":0}`, string(b))
	})

	t.Run("line totals and total", func(t *testing.T) {
		rows := []CartRow{
			{ID: "a", Qty: 3, ProductID: "fs-1", Name: "Jacket", Price: decimal.RequireFromString("0.10")},
			{ID: "b", Qty: 2, ProductID: "fs-2", Name: "Shirt", Price: decimal.RequireFromString("22.35")},
		}

		view := BuildCartView(rows)

		require.Len(t, view.Items, 2)
		assert.Equal(t, "0.3", view.Items[0].LineTotal.String())
		assert.Equal(t, "44.7", view.Items[1].LineTotal.String())
		assert.Equal(t, "45", view.Total.String())
		assert.Equal(t, dtos.ProductSnapshot{ID: "fs-2", Name: "Shirt", Price: rows[1].Price}, view.Items[1].Product)
	})

	t.Run("keeps row order", func(t *testing.T) {
		rows := []CartRow{
			{ID: "z", Qty: 1, Name: "B", Price: decimal.NewFromInt(1)},
			{ID: "y", Qty: 1, Name: "A", Price: decimal.NewFromInt(1)},
		}

		view := BuildCartView(rows)

		assert.Equal(t, "z", view.Items[0].ID)
		assert.Equal(t, "y", view.Items[1].ID)
	})
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeInvalidArgument, CodeOf(ErrInvalidQuantity))
	assert.Equal(t, CodeNotFound, CodeOf(ErrProductNotFound))
	assert.Equal(t, CodeNotFound, CodeOf(fmt.Errorf("wrapped: %w", ErrCartItemNotFound)))
	assert.Equal(t, "", CodeOf(assert.AnError))
}
