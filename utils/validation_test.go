package utils

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestSanitizeValidationErrorEmail(t *testing.T) {
	// Simulate a validator.ValidationErrors for an email field
	validate := validator.New()

	type TestReq struct {
		Email string `validate:"required,email"`
	}

	err := validate.Struct(TestReq{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation error for invalid email")
	}

	msg := SanitizeValidationError(err)
	if !strings.Contains(msg, "email") {
		t.Errorf("expected error message to mention email, got: %s", msg)
	}
	if !strings.Contains(msg, "valid email address") {
		t.Errorf("expected user-friendly email error, got: %s", msg)
	}
}

func TestSanitizeValidationErrorRequired(t *testing.T) {
	validate := validator.New()

	type TestReq struct {
		Name     string `validate:"required"`
		Password string `validate:"required,min=8"`
	}

	err := validate.Struct(TestReq{})
	if err == nil {
		t.Fatal("expected validation error for missing required fields")
	}

	msg := SanitizeValidationError(err)
	if !strings.Contains(msg, "required") {
		t.Errorf("expected error message to mention 'required', got: %s", msg)
	}
}

func TestSanitizeValidationErrorNilReturnsEmpty(t *testing.T) {
	msg := SanitizeValidationError(nil)
	if msg != "" {
		t.Errorf("expected empty string for nil error, got: %s", msg)
	}
}

func TestSanitizeValidationErrorMinLength(t *testing.T) {
	validate := validator.New()

	type TestReq struct {
		Password string `validate:"required,min=8"`
	}

	err := validate.Struct(TestReq{Password: "short"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := SanitizeValidationError(err)
	if !strings.Contains(msg, "at least") {
		t.Errorf("expected min length message, got: %s", msg)
	}
}

func TestSanitizeValidationErrorNumericMin(t *testing.T) {
	validate := validator.New()

	type TestReq struct {
		Qty int `validate:"min=1"`
	}

	msg := SanitizeValidationError(validate.Struct(TestReq{Qty: 0}))
	if msg != "qty must be at least 1" {
		t.Errorf("expected numeric min message, got: %s", msg)
	}
}

func TestSanitizeValidationErrorUsesJSONNames(t *testing.T) {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	type TestReq struct {
		ProductID string `json:"productId" validate:"required"`
	}

	msg := SanitizeValidationError(validate.Struct(TestReq{}))
	if msg != "productId is required" {
		t.Errorf("expected json field name in message, got: %s", msg)
	}
}

func TestSanitizeValidationErrorWrongType(t *testing.T) {
	var req struct {
		Qty int `json:"qty"`
	}
	err := json.Unmarshal([]byte(`{"qty":"two"}`), &req)
	if err == nil {
		t.Fatal("expected type error")
	}

	msg := SanitizeValidationError(err)
	if msg != "qty must be of type int" {
		t.Errorf("expected type message, got: %s", msg)
	}
}

func TestSanitizeValidationErrorMalformedJSON(t *testing.T) {
	var req map[string]interface{}
	err := json.Unmarshal([]byte(`{"qty":`), &req)

	if msg := SanitizeValidationError(err); msg != "Invalid request body" {
		t.Errorf("expected generic message, got: %s", msg)
	}
}
