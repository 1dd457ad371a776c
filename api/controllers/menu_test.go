package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/quickbite-app/quickbite-backend/internal/catalog"
)

func TestMenuListItems(t *testing.T) {
	logg := testLogger()
	menu := testMenu(t)

	listItems := func(t *testing.T, query string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/menu/items"+query, nil)
		rec := httptest.NewRecorder()
		MenuListItems(menu, logg).ServeHTTP(rec, req)
		return rec
	}

	decodeItems := func(t *testing.T, rec *httptest.ResponseRecorder) []catalog.Item {
		t.Helper()
		var envelope struct {
			Data []catalog.Item `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decoding items: %v", err)
		}
		return envelope.Data
	}

	t.Run("lists everything by default", func(t *testing.T) {
		rec := listItems(t, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rec.Code)
		}
		if items := decodeItems(t, rec); len(items) != 7 {
			t.Fatalf("expected 7 items got %d", len(items))
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		items := decodeItems(t, listItems(t, "?category_id=1"))
		if len(items) != 2 {
			t.Fatalf("expected 2 appetizers got %d", len(items))
		}
	})

	t.Run("filters by popularity", func(t *testing.T) {
		items := decodeItems(t, listItems(t, "?popular=true"))
		for _, item := range items {
			if !item.IsPopular {
				t.Fatalf("expected only popular items, got %s", item.ID)
			}
		}
	})

	t.Run("searches name and description", func(t *testing.T) {
		items := decodeItems(t, listItems(t, "?search=salmon"))
		if len(items) != 1 || items[0].ID != "201" {
			t.Fatalf("expected the salmon item, got %+v", items)
		}
	})

	t.Run("rejects a malformed popular flag", func(t *testing.T) {
		rec := listItems(t, "?popular=banana")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
	})
}

func TestMenuGetItem(t *testing.T) {
	logg := testLogger()
	menu := testMenu(t)

	getItem := func(t *testing.T, itemID string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/menu/items/"+itemID, nil)
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("itemID", itemID)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
		rec := httptest.NewRecorder()
		MenuGetItem(menu, logg).ServeHTTP(rec, req)
		return rec
	}

	t.Run("returns the item detail", func(t *testing.T) {
		rec := getItem(t, "201")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rec.Code)
		}
		var envelope struct {
			Data catalog.Item `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decoding item: %v", err)
		}
		if envelope.Data.Name != "Grilled Salmon" {
			t.Fatalf("expected Grilled Salmon got %s", envelope.Data.Name)
		}
		if len(envelope.Data.Options) != 2 {
			t.Fatalf("expected 2 option groups got %d", len(envelope.Data.Options))
		}
	})

	t.Run("unknown items are 404", func(t *testing.T) {
		rec := getItem(t, "999")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 got %d", rec.Code)
		}
	})
}

func TestListPromotionsAndCategories(t *testing.T) {
	logg := testLogger()
	menu := testMenu(t)

	t.Run("categories", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/menu/categories", nil)
		rec := httptest.NewRecorder()
		MenuListCategories(menu, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rec.Code)
		}
		var envelope struct {
			Data []catalog.Category `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decoding categories: %v", err)
		}
		if len(envelope.Data) != 5 {
			t.Fatalf("expected 5 categories got %d", len(envelope.Data))
		}
	})

	t.Run("promotions", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/promotions", nil)
		rec := httptest.NewRecorder()
		ListPromotions(menu, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rec.Code)
		}
		var envelope struct {
			Data []catalog.Promotion `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decoding promotions: %v", err)
		}
		if len(envelope.Data) != 3 {
			t.Fatalf("expected 3 promotions got %d", len(envelope.Data))
		}
	})

	t.Run("nil repository is an internal error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/promotions", nil)
		rec := httptest.NewRecorder()
		ListPromotions(nil, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500 got %d", rec.Code)
		}
	})
}
