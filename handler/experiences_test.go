package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/model"
)

func createExperienceRow(t *testing.T, h http.HandlerFunc, title string, order int, active bool) model.Experience {
	t.Helper()

	rec := doRequest(t, h, http.MethodPost, "/api/experiences", map[string]interface{}{
		"title":     title,
		"company":   "Acme",
		"startDate": "Jan 2023",
		"tools":     []string{"Go"},
		"isActive":  active,
		"order":     order,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody[model.Experience](t, rec)
}

func TestExperienceCreateAndListSorted(t *testing.T) {
	db := newTestDB(t)
	c := NewListCache()
	collection := Experiences(db, c)

	created := createExperienceRow(t, collection, "Intern", 1, true)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Acme", created.Company)
	assert.Equal(t, []string{"Go"}, created.Tools)
	require.NotNil(t, created.Order)
	assert.Equal(t, 1, *created.Order)

	createExperienceRow(t, collection, "Engineer", 3, true)
	createExperienceRow(t, collection, "Senior", 2, false)

	rec := doRequest(t, collection, http.MethodGet, "/api/experiences", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := decodeBody[[]model.Experience](t, rec)
	require.Len(t, rows, 3)
	assert.Equal(t, "Intern", rows[0].Title)
	assert.Equal(t, "Senior", rows[1].Title)
	assert.Equal(t, "Engineer", rows[2].Title)

	rec = doRequest(t, collection, http.MethodGet, "/api/experiences?sort=desc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows = decodeBody[[]model.Experience](t, rec)
	require.Len(t, rows, 3)
	assert.Equal(t, "Engineer", rows[0].Title)
	assert.Equal(t, "Intern", rows[2].Title)
}

func TestExperienceCreateValidation(t *testing.T) {
	db := newTestDB(t)
	collection := Experiences(db, NewListCache())

	rec := doRequest(t, collection, http.MethodPost, "/api/experiences", map[string]interface{}{
		"company": "Acme",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, collection, http.MethodPost, "/api/experiences", map[string]interface{}{
		"title": "Intern",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExperienceFullUpdate(t *testing.T) {
	db := newTestDB(t)
	c := NewListCache()
	collection := Experiences(db, c)
	item := ExperienceByID(db, c, false)

	created := createExperienceRow(t, collection, "Intern", 1, false)

	rec := doRequest(t, item, http.MethodPut, fmt.Sprintf("/api/experiences/%d", created.ID), map[string]interface{}{
		"title":       "Intern II",
		"company":     "Acme",
		"startDate":   "Feb 2023",
		"description": "shipped things",
		"tools":       []string{"Go", "Postgres"},
		"isActive":    true,
		"order":       5,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[model.Experience](t, rec)
	assert.Equal(t, "Intern II", updated.Title)
	assert.Equal(t, "Feb 2023", updated.StartDate)
	assert.Equal(t, []string{"Go", "Postgres"}, updated.Tools)
	assert.True(t, updated.IsActive)
	require.NotNil(t, updated.Order)
	assert.Equal(t, 5, *updated.Order)
}

func TestExperiencePatchIdempotent(t *testing.T) {
	db := newTestDB(t)
	c := NewListCache()
	collection := Experiences(db, c)
	item := ExperienceByID(db, c, false)

	created := createExperienceRow(t, collection, "Intern", 1, false)
	target := fmt.Sprintf("/api/experiences/%d", created.ID)
	body := map[string]interface{}{"isActive": true}

	rec := doRequest(t, item, http.MethodPatch, target, body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[model.Experience](t, rec).IsActive)

	// Same patch again: same terminal state, no error.
	rec = doRequest(t, item, http.MethodPatch, target, body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[model.Experience](t, rec).IsActive)

	rec = doRequest(t, item, http.MethodPatch, target, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "isActive is required")
}

func TestExperienceMissingRowStatus(t *testing.T) {
	payload := map[string]interface{}{
		"title":   "Intern",
		"company": "Acme",
	}

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
			c := NewListCache()
			item := ExperienceByID(db, c, tt.strict)

			rec := doRequest(t, item, http.MethodPut, "/api/experiences/99", payload)
			assert.Equal(t, tt.want, rec.Code)

			rec = doRequest(t, item, http.MethodPatch, "/api/experiences/99", map[string]interface{}{"isActive": true})
			assert.Equal(t, tt.want, rec.Code)

			rec = doRequest(t, item, http.MethodDelete, "/api/experiences/99", nil)
			assert.Equal(t, tt.want, rec.Code)

			// The failed delete must not corrupt the store.
			collection := Experiences(db, c)
			created := createExperienceRow(t, collection, "Intern", 1, true)
			rec = doRequest(t, collection, http.MethodGet, "/api/experiences", nil)
			require.Equal(t, http.StatusOK, rec.Code)
			rows := decodeBody[[]model.Experience](t, rec)
			require.Len(t, rows, 1)
			assert.Equal(t, created.ID, rows[0].ID)
		})
	}
}

func TestExperienceDelete(t *testing.T) {
	db := newTestDB(t)
	c := NewListCache()
	collection := Experiences(db, c)
	item := ExperienceByID(db, c, false)

	created := createExperienceRow(t, collection, "Intern", 1, true)

	rec := doRequest(t, item, http.MethodDelete, fmt.Sprintf("/api/experiences/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[map[string]bool](t, rec)["success"])

	rec = doRequest(t, collection, http.MethodGet, "/api/experiences", nil)
	assert.Empty(t, decodeBody[[]model.Experience](t, rec))
}
