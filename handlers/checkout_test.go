package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

func parseReceipt(t *testing.T, body []byte) receiptBody {
	t.Helper()
	var r receiptBody
	if err := json.Unmarshal(body, &r); err != nil {
		t.Fatalf("invalid receipt body: %v", err)
	}
	return r
}

func TestCheckoutScenario(t *testing.T) {
	db := freshDB(t)
	seedProduct(t, db, "fs-1", "Backpack", "10.00")
	seedProduct(t, db, "fs-2", "Shirt", "22.50")
	router := setupCartRouter(db)

	serve(router, jsonRequest("POST", "/api/cart", map[string]interface{}{"productId": "fs-1", "qty": 2}))
	serve(router, jsonRequest("POST", "/api/cart", map[string]interface{}{"productId": "fs-2", "qty": 1}))

	w := serve(router, jsonRequest("POST", "/api/checkout", map[string]string{"name": "Demo User", "email": "demo@example.com"}))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseReceipt(t, w.Body.Bytes())
	if resp.Receipt.ID == "" {
		t.Error("expected receipt id")
	}
	if resp.Receipt.Total != 42.5 {
		t.Errorf("expected total 42.5, got %v", resp.Receipt.Total)
	}
	if len(resp.Receipt.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(resp.Receipt.Items))
	}
	if resp.Receipt.Customer.Name != "Demo User" || resp.Receipt.Customer.Email != "demo@example.com" {
		t.Errorf("unexpected customer %+v", resp.Receipt.Customer)
	}
	if _, err := time.Parse(time.RFC3339, resp.Receipt.Timestamp); err != nil {
		t.Errorf("expected RFC3339 timestamp, got %q", resp.Receipt.Timestamp)
	}

	w = serve(router, jsonRequest("GET", "/api/cart", nil))
	if got := w.Body.String(); got != `{"items":[],"total":0}` {
		t.Errorf("expected empty cart after checkout, got %s", got)
	}
}

func TestCheckoutEmptyCartWithoutBody(t *testing.T) {
	db := freshDB(t)
	router := setupCartRouter(db)

	w := serve(router, jsonRequest("POST", "/api/checkout", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseReceipt(t, w.Body.Bytes())
	if resp.Receipt.Total != 0 || len(resp.Receipt.Items) != 0 {
		t.Errorf("expected zero-total receipt, got %+v", resp.Receipt)
	}
}

func TestCheckoutMalformedBody(t *testing.T) {
	db := freshDB(t)
	seedProduct(t, db, "fs-1", "Backpack", "10.00")
	router := setupCartRouter(db)
	serve(router, jsonRequest("POST", "/api/cart", map[string]interface{}{"productId": "fs-1", "qty": 1}))

	w := serve(router, rawRequest("POST", "/api/checkout", `{"name":`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}

	w = serve(router, jsonRequest("GET", "/api/cart", nil))
	if cart := parseCart(t, w); len(cart.Items) != 1 {
		t.Errorf("a rejected checkout must leave the cart alone, got %+v", cart.Items)
	}
}
