package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"shopcart-backend/dtos"
)

// maxCatalogResponseSize caps how much of the external feed is read (2MB).
const maxCatalogResponseSize = 2 << 20

// CatalogSource supplies the raw product feed the catalog is seeded from.
type CatalogSource interface {
	FetchProducts(ctx context.Context) ([]dtos.ExternalProduct, error)
}

// FakeStoreClient reads products from a fakestoreapi.com compatible endpoint.
type FakeStoreClient struct {
	URL        string
	HTTPClient *http.Client
}

func NewFakeStoreClient(url string) *FakeStoreClient {
	return &FakeStoreClient{URL: url, HTTPClient: http.DefaultClient}
}

func (f *FakeStoreClient) FetchProducts(ctx context.Context) ([]dtos.ExternalProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}

	var products []dtos.ExternalProduct
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxCatalogResponseSize)).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}
