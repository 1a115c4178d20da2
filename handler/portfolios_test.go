package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/model"
)

func createPortfolioRow(t *testing.T, h http.HandlerFunc, title, category string, active bool) model.Portfolio {
	t.Helper()

	rec := doRequest(t, h, http.MethodPost, "/api/portofolios", map[string]interface{}{
		"title":        title,
		"description":  "a project",
		"category":     category,
		"technologies": []string{"Go", "React"},
		"isActive":     active,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeBody[model.Portfolio](t, rec)
}

func TestPortfolioCreate(t *testing.T) {
	db := newTestDB(t)
	collection := Portfolios(db, NewListCache())

	rec := doRequest(t, collection, http.MethodPost, "/api/portofolios", map[string]interface{}{
		"title":       "Shop",
		"description": "an online shop",
		"category":    "Web",
	})
	// Create replies 200, not 201.
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody[model.Portfolio](t, rec)
	assert.NotZero(t, created.ID)
	assert.False(t, created.IsActive)
	assert.NotNil(t, created.Technologies, "absent arrays come back empty, not null")
	assert.NotNil(t, created.ImageUrls)
}

func TestPortfolioCreateValidation(t *testing.T) {
	db := newTestDB(t)
	collection := Portfolios(db, NewListCache())

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "missing title", body: map[string]interface{}{"description": "d", "category": "Web"}},
		{name: "missing description", body: map[string]interface{}{"title": "t", "category": "Web"}},
		{name: "missing category", body: map[string]interface{}{"title": "t", "description": "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, collection, http.MethodPost, "/api/portofolios", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPortfolioListMostRecentlyUpdatedFirst(t *testing.T) {
	db := newTestDB(t)
	c := NewListCache()
	collection := Portfolios(db, c)
	item := PortfolioByID(db, c, false)

	first := createPortfolioRow(t, collection, "Older", "Web", true)
	createPortfolioRow(t, collection, "Newer", "Web", true)

	// Touch the first row so it becomes the most recently updated.
	rec := doRequest(t, item, http.MethodPut, fmt.Sprintf("/api/portofolios/%d", first.ID), map[string]interface{}{
		"title":       "Older, edited",
		"description": "a project",
		"category":    "Web",
		"isActive":    true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, collection, http.MethodGet, "/api/portofolios", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := decodeBody[[]model.Portfolio](t, rec)
	require.Len(t, rows, 2)
	assert.Equal(t, "Older, edited", rows[0].Title)
	assert.Equal(t, "Newer", rows[1].Title)
}

func TestPortfolioPatchToggle(t *testing.T) {
	db := newTestDB(t)
	c := NewListCache()
	collection := Portfolios(db, c)
	item := PortfolioByID(db, c, false)

	created := createPortfolioRow(t, collection, "Shop", "Web", false)
	target := fmt.Sprintf("/api/portofolios/%d", created.ID)

	rec := doRequest(t, item, http.MethodPatch, target, map[string]interface{}{"isActive": true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[model.Portfolio](t, rec).IsActive)

	rec = doRequest(t, item, http.MethodPatch, target, map[string]interface{}{"isActive": false})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeBody[model.Portfolio](t, rec).IsActive)
}

func TestPortfolioMissingRowStatus(t *testing.T) {
	tests := []struct {
		name   string
		strict bool
		want   int
	}{
		{name: "compat mode surfaces 500", strict: false, want: http.StatusInternalServerError},
		{name: "strict mode surfaces 404", strict: true, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			item := PortfolioByID(db, NewListCache(), tt.strict)

			rec := doRequest(t, item, http.MethodDelete, "/api/portofolios/99", nil)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestPortfolioDelete(t *testing.T) {
	db := newTestDB(t)
	c := NewListCache()
	collection := Portfolios(db, c)
	item := PortfolioByID(db, c, false)

	created := createPortfolioRow(t, collection, "Shop", "Web", true)

	rec := doRequest(t, item, http.MethodDelete, fmt.Sprintf("/api/portofolios/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, collection, http.MethodGet, "/api/portofolios", nil)
	assert.Empty(t, decodeBody[[]model.Portfolio](t, rec))
}
