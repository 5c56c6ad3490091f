package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopcart-backend/dtos"
	"shopcart-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartLedger owns the cart rows of every user. Each operation is scoped to the
// caller's user id and returns the cart as it stands after the operation.
type CartLedger struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

func NewCartLedger(db *gorm.DB, logger *zap.Logger) *CartLedger {
	return &CartLedger{
		db:     db,
		logger: logger.Named("cart"),
		now:    time.Now,
	}
}

func (l *CartLedger) GetCart(ctx context.Context, userID string) (dtos.CartView, error) {
	return l.cartView(l.db.WithContext(ctx), userID)
}

// AddItem puts qty units of a product in the cart. A product already in the cart has its
// quantity increased rather than gaining a second line.
func (l *CartLedger) AddItem(ctx context.Context, userID, productID string, qty int) (dtos.CartView, error) {
	if productID == "" {
		return dtos.CartView{}, ErrMissingProductID
	}
	if err := validateQty(qty); err != nil {
		return dtos.CartView{}, err
	}

	var view dtos.CartView
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUser(tx, userID); err != nil {
			return err
		}

		var product models.Product
		if err := tx.Select("id").Where("id = ?", productID).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("failed to look up product %s: %w", productID, err)
		}

		var item models.CartItem
		findErr := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
		switch {
		case findErr == nil:
			if item.Qty+qty > MaxQty {
				return ErrQtyTooLarge
			}
			if err := tx.Model(&item).UpdateColumn("qty", gorm.Expr("qty + ?", qty)).Error; err != nil {
				return fmt.Errorf("failed to increase qty of cart item %s: %w", item.ID, err)
			}
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			item = models.CartItem{
				ID:        uuid.New().String(),
				UserID:    userID,
				ProductID: productID,
				Qty:       qty,
			}
			if err := tx.Omit(clause.Associations).Create(&item).Error; err != nil {
				return fmt.Errorf("failed to create cart item: %w", err)
			}
		default:
			return fmt.Errorf("failed to look up cart item: %w", findErr)
		}

		var err error
		view, err = l.cartView(tx, userID)
		return err
	})
	if err != nil {
		return dtos.CartView{}, err
	}
	return view, nil
}

// SetQty overwrites the quantity of one of the user's cart items.
func (l *CartLedger) SetQty(ctx context.Context, userID, itemID string, qty int) (dtos.CartView, error) {
	if err := validateQty(qty); err != nil {
		return dtos.CartView{}, err
	}

	var view dtos.CartView
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUser(tx, userID); err != nil {
			return err
		}

		result := tx.Model(&models.CartItem{}).
			Where("id = ? AND user_id = ?", itemID, userID).
			UpdateColumn("qty", qty)
		if result.Error != nil {
			return fmt.Errorf("failed to set qty of cart item %s: %w", itemID, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCartItemNotFound
		}

		var err error
		view, err = l.cartView(tx, userID)
		return err
	})
	if err != nil {
		return dtos.CartView{}, err
	}
	return view, nil
}

func (l *CartLedger) RemoveItem(ctx context.Context, userID, itemID string) (dtos.CartView, error) {
	var view dtos.CartView
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUser(tx, userID); err != nil {
			return err
		}

		result := tx.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
		if result.Error != nil {
			return fmt.Errorf("failed to remove cart item %s: %w", itemID, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCartItemNotFound
		}

		var err error
		view, err = l.cartView(tx, userID)
		return err
	})
	if err != nil {
		return dtos.CartView{}, err
	}
	return view, nil
}

// Checkout snapshots the cart into a receipt and empties it. An empty cart yields a
// zero-total receipt. The receipt is not stored anywhere.
func (l *CartLedger) Checkout(ctx context.Context, userID string, customer dtos.Customer) (dtos.Receipt, error) {
	var receipt dtos.Receipt
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUser(tx, userID); err != nil {
			return err
		}

		view, err := l.cartView(tx, userID)
		if err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		receipt = dtos.Receipt{
			ID:        uuid.New().String(),
			Timestamp: l.now().UTC(),
			Total:     view.Total,
			Items:     view.Items,
			Customer:  customer,
		}
		return nil
	})
	if err != nil {
		return dtos.Receipt{}, err
	}

	l.logger.Info("Checkout completed",
		zap.String("user_id", userID),
		zap.String("receipt_id", receipt.ID),
		zap.Int("items", len(receipt.Items)),
		zap.String("total", receipt.Total.StringFixed(2)),
	)
	return receipt, nil
}

func validateQty(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > MaxQty {
		return ErrQtyTooLarge
	}
	return nil
}

// lockUser takes a row lock on the owning user for the rest of the transaction, so mutations
// of one user's cart run one at a time.
func lockUser(tx *gorm.DB, userID string) error {
	var user models.User
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", userID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUnknownUser
	}
	if err != nil {
		return fmt.Errorf("failed to lock user %s: %w", userID, err)
	}
	return nil
}

func (l *CartLedger) cartView(db *gorm.DB, userID string) (dtos.CartView, error) {
	var rows []CartRow
	err := db.Table("cart_items").
		Select("cart_items.id AS id, cart_items.qty AS qty, products.id AS product_id, products.name AS name, products.price AS price").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("products.name").
		Order("cart_items.id").
		Scan(&rows).Error
	if err != nil {
		return dtos.CartView{}, fmt.Errorf("failed to read cart: %w", err)
	}
	return BuildCartView(rows), nil
}
