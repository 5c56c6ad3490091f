package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is one line of a user's cart. At most one row exists per
// (user, product) pair and qty is always positive.
type CartItem struct {
	ID        string  `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID    string  `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_items_user_product" json:"user_id"`
	User      User    `gorm:"foreignKey:UserID" json:"-"`
	ProductID string  `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_items_user_product" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"-"`
	Qty       int     `gorm:"not null;check:chk_cart_items_qty,qty > 0" json:"qty"`
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
