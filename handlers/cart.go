package handlers

import (
	"net/http"

	"shopcart-backend/services"
	"shopcart-backend/utils"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	Ledger *services.CartLedger
}

type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       int    `json:"qty"`
}

type updateCartItemRequest struct {
	Qty int `json:"qty"`
}

func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	view, err := h.Ledger.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	view, err := h.Ledger.AddItem(c.Request.Context(), userID, req.ProductID, req.Qty)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	view, err := h.Ledger.SetQty(c.Request.Context(), userID, c.Param("id"), req.Qty)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	view, err := h.Ledger.RemoveItem(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
