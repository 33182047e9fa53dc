// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/lookbook/internal/models"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestValidateStruct_PredictRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       models.PredictRequest
		wantField string
		wantTag   string
	}{
		{name: "valid", req: models.PredictRequest{CustomerID: int64Ptr(123456), TopK: intPtr(12)}},
		{name: "default top_k", req: models.PredictRequest{CustomerID: int64Ptr(123456)}},
		{name: "zero top_k", req: models.PredictRequest{CustomerID: int64Ptr(7), TopK: intPtr(0)}},
		{name: "negative customer id is allowed", req: models.PredictRequest{CustomerID: int64Ptr(-1)}},
		{name: "missing customer", req: models.PredictRequest{TopK: intPtr(5)}, wantField: "customer_id", wantTag: "required"},
		{name: "negative top_k", req: models.PredictRequest{CustomerID: int64Ptr(1), TopK: intPtr(-2)}, wantField: "top_k", wantTag: "min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.req)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("error = %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestValidateStruct_FeatureTable(t *testing.T) {
	valid := models.TableRowsQuery{Table: "mapping", Column: "article_id_int", Values: []string{"1", "2"}}
	if verr := ValidateStruct(&valid); verr != nil {
		t.Errorf("ValidateStruct(valid) = %v", verr)
	}

	invalid := models.TableRowsQuery{Table: "orders"}
	verr := ValidateStruct(&invalid)
	if verr == nil {
		t.Fatal("ValidateStruct() should reject an unknown table")
	}
	if got := verr.Errors()[0].Error(); got != "table must be one of users, items, mapping, candidates" {
		t.Errorf("message = %q", got)
	}
}

func TestValidateStruct_ValueLimits(t *testing.T) {
	values := make([]string, 1001)
	for i := range values {
		values[i] = "1"
	}
	q := models.TableRowsQuery{Table: "items", Column: "article_id_int", Values: values}

	verr := ValidateStruct(&q)
	if verr == nil {
		t.Fatal("ValidateStruct() should reject more than 1000 values")
	}
	if got := verr.Errors()[0].Error(); got != "values must be at most 1000 items" {
		t.Errorf("message = %q", got)
	}
}

func TestToAPIError(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		verr := ValidateStruct(&models.PredictRequest{})
		if verr == nil {
			t.Fatal("expected validation error")
		}
		apiErr := verr.ToAPIError()
		if apiErr.Code != CodeValidation {
			t.Errorf("Code = %q, want %q", apiErr.Code, CodeValidation)
		}
		if apiErr.Message != "customer_id is required" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "customer_id" {
			t.Errorf("Details = %v", apiErr.Details)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		verr := ValidateStruct(&models.TableRowsQuery{
			Table:  "",
			Column: strings.Repeat("c", 65),
		})
		if verr == nil {
			t.Fatal("expected validation error")
		}
		apiErr := verr.ToAPIError()
		if !strings.Contains(apiErr.Message, "table is required") ||
			!strings.Contains(apiErr.Message, "column must be at most 64 characters") {
			t.Errorf("Message = %q", apiErr.Message)
		}
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Errorf("Details = %v", apiErr.Details)
		}
	})

	t.Run("empty", func(t *testing.T) {
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}
