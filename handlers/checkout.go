package handlers

import (
	"errors"
	"io"
	"net/http"

	"shopcart-backend/dtos"
	"shopcart-backend/services"
	"shopcart-backend/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	Ledger *services.CartLedger
}

type checkoutRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Checkout empties the caller's cart and returns the receipt. Customer details are optional,
// so an empty body is accepted.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	receipt, err := h.Ledger.Checkout(c.Request.Context(), userID, dtos.Customer{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"receipt": receipt})
}
