package services

import (
	"context"
	"fmt"
	"time"

	"shopcart-backend/config"
	"shopcart-backend/dtos"
	"shopcart-backend/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogLoader serves the product catalog, seeding the store on first use.
type CatalogLoader struct {
	db       *gorm.DB
	source   CatalogSource
	timeout  time.Duration
	idPrefix string
	logger   *zap.Logger
	loads    singleflight.Group
}

// NewCatalogLoader returns a loader over db. A nil source means the seed catalog is always used.
func NewCatalogLoader(db *gorm.DB, source CatalogSource, cfg config.CatalogConfig, logger *zap.Logger) *CatalogLoader {
	return &CatalogLoader{
		db:       db,
		source:   source,
		timeout:  cfg.Timeout,
		idPrefix: cfg.IDPrefix,
		logger:   logger.Named("catalog"),
	}
}

// EnsureCatalog returns every product ordered by name. When the store holds no products it
// first loads them from the source, or from the seed list if the source fails.
func (l *CatalogLoader) EnsureCatalog(ctx context.Context) ([]models.Product, error) {
	products, err := l.listProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) > 0 {
		return products, nil
	}

	// Concurrent first callers share one load. The load outlives any single caller's cancellation.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := l.loads.Do("catalog", func() (interface{}, error) {
		return l.load(loadCtx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Product), nil
}

func (l *CatalogLoader) load(ctx context.Context) ([]models.Product, error) {
	products := l.fetch(ctx)

	// Upsert by id in one transaction: readers never see a partial catalog and a repeated
	// load leaves the same rows behind.
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price"}),
		}).CreateInBatches(&products, 100).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist catalog: %w", err)
	}

	l.logger.Info("Catalog loaded", zap.Int("products", len(products)))
	return l.listProducts(ctx)
}

// fetch never fails: any problem with the source falls back to the seed catalog.
func (l *CatalogLoader) fetch(ctx context.Context) []models.Product {
	if l.source == nil {
		l.logger.Info("No catalog source configured, using seed catalog")
		return SeedProducts(l.idPrefix)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	records, err := l.source.FetchProducts(fetchCtx)
	if err == nil {
		var products []models.Product
		if products, err = mapExternalProducts(records, l.idPrefix); err == nil {
			return products
		}
	}

	l.logger.Warn("Falling back to seed catalog",
		zap.Error(fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)))
	return SeedProducts(l.idPrefix)
}

func (l *CatalogLoader) listProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := l.db.WithContext(ctx).Order("name").Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// mapExternalProducts converts feed records, rejecting the whole feed if any record is unusable.
func mapExternalProducts(records []dtos.ExternalProduct, idPrefix string) ([]models.Product, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog feed is empty")
	}

	products := make([]models.Product, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		switch {
		case r.ID.String() == "":
			return nil, fmt.Errorf("record %d has no id", i)
		case r.Title == "":
			return nil, fmt.Errorf("record %s has no title", r.ID)
		case r.Price == nil || r.Price.IsNegative():
			return nil, fmt.Errorf("record %s has no valid price", r.ID)
		}

		id := idPrefix + r.ID.String()
		if seen[id] {
			return nil, fmt.Errorf("duplicate record id %s", r.ID)
		}
		seen[id] = true

		products = append(products, models.Product{
			ID:    id,
			Name:  r.Title,
			Price: r.Price.Round(2),
		})
	}
	return products, nil
}
