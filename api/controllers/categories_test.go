package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
)

func TestListCategories(t *testing.T) {
	logg := testLogger()
	svc := newCategoriesService(t)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	ListCategories(svc, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	envelope := decodeBody(t, rec)
	if envelope.Total == nil || *envelope.Total != 4 {
		t.Fatalf("expected 4 categories got %v", envelope.Total)
	}
}

func TestCreateCategory(t *testing.T) {
	logg := testLogger()

	t.Run("creates with next id", func(t *testing.T) {
		svc := newCategoriesService(t)
		body := `{"name":"Audio","slug":"audio","description":"Bocinas y audífonos"}`
		req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(body))
		rec := httptest.NewRecorder()
		CreateCategory(svc, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
		}

		var payload struct {
			Data models.Category `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if payload.Data.ID != 5 {
			t.Fatalf("expected id 5 got %d", payload.Data.ID)
		}
	})

	t.Run("duplicate slug", func(t *testing.T) {
		svc := newCategoriesService(t)
		body := `{"name":"Desktop dos","slug":"desktop"}`
		req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(body))
		rec := httptest.NewRecorder()
		CreateCategory(svc, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for duplicate slug got %d", rec.Code)
		}
	})
}
