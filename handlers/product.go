package handlers

import (
	"net/http"

	"shopcart-backend/dtos"
	"shopcart-backend/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	Catalog *services.CatalogLoader
}

// GetProducts lists the catalog, loading it on first use.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.Catalog.EnsureCatalog(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dtos.ProductSnapshot, len(products))
	for i, p := range products {
		resp[i] = dtos.ProductSnapshot{ID: p.ID, Name: p.Name, Price: p.Price}
	}
	c.JSON(http.StatusOK, resp)
}
