package services

import (
	"strconv"

	"shopcart-backend/models"

	"github.com/shopspring/decimal"
)

var seedCatalog = []struct {
	name  string
	price string
}{
	{"Fjallraven - Foldsack No. 1 Backpack, Fits 15 Laptops", "109.95"},
	{"Mens Casual Premium Slim Fit T-Shirts", "22.30"},
	{"Mens Cotton Jacket", "55.99"},
	{"Mens Casual Slim Fit", "15.99"},
	{"John Hardy Women's Legends Naga Gold & Silver Dragon Station Chain Bracelet", "695.00"},
	{"Solid Gold Petite Micropave", "168.00"},
	{"White Gold Plated Princess", "9.99"},
	{"Pierced Owl Rose Gold Plated Stainless Steel Double", "10.99"},
	{"WD 2TB Elements Portable External Hard Drive - USB 3.0", "64.00"},
	{"SanDisk SSD PLUS 1TB Internal SSD - SATA III 6 Gb/s", "109.00"},
}

// SeedProducts is the catalog used when the external source cannot be reached.
// Ids are numbered from 1 under the same prefix as external ids.
func SeedProducts(idPrefix string) []models.Product {
	products := make([]models.Product, 0, len(seedCatalog))
	for i, p := range seedCatalog {
		products = append(products, models.Product{
			ID:    idPrefix + strconv.Itoa(i+1),
			Name:  p.name,
			Price: decimal.RequireFromString(p.price),
		})
	}
	return products
}
