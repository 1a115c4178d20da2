package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio/model"
)

const (
	experiencesAscKey  = "experiences:asc"
	experiencesDescKey = "experiences:desc"
)

type experiencePayload struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	StartDate   string   `json:"startDate"`
	Description string   `json:"description"`
	Tools       []string `json:"tools"`
	IsActive    bool     `json:"isActive"`
	Order       *int     `json:"order"`
}

// Experiences serves the collection routes. The list is sorted by the
// manual order column; ?sort=desc flips the direction for the public
// timeline, which renders newest-first.
func Experiences(db *gorm.DB, c *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listExperiences(db, c, w, r)
		case http.MethodPost:
			createExperience(db, c, w, r)
		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

// ExperienceByID serves the item routes: full update, status patch, delete.
func ExperienceByID(db *gorm.DB, c *cache.Cache, strictNotFound bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "/api/experiences/")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid ID format")
			return
		}

		switch r.Method {
		case http.MethodPut:
			updateExperience(db, c, w, r, id, strictNotFound)
		case http.MethodPatch:
			patchExperience(db, c, w, r, id, strictNotFound)
		case http.MethodDelete:
			deleteExperience(db, c, w, id, strictNotFound)
		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

func listExperiences(db *gorm.DB, c *cache.Cache, w http.ResponseWriter, r *http.Request) {
	desc := r.URL.Query().Get("sort") == "desc"
	key := experiencesAscKey
	if desc {
		key = experiencesDescKey
	}

	data, err := cachedList(c, key, func() (interface{}, error) {
		var experiences []model.Experience
		order := clause.OrderByColumn{Column: clause.Column{Name: "order"}, Desc: desc}
		if err := db.Order(order).Find(&experiences).Error; err != nil {
			return nil, err
		}
		return experiences, nil
	})
	if err != nil {
		log.Printf("Error fetching experiences: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch experiences")
		return
	}

	respondJSON(w, http.StatusOK, data)
}

func createExperience(db *gorm.DB, c *cache.Cache, w http.ResponseWriter, r *http.Request) {
	var payload experiencePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if payload.Title == "" || payload.Company == "" {
		respondError(w, http.StatusBadRequest, "Title and company are required")
		return
	}

	experience := model.Experience{
		Title:       payload.Title,
		Company:     payload.Company,
		StartDate:   payload.StartDate,
		Description: payload.Description,
		Tools:       normalizeList(payload.Tools),
		IsActive:    payload.IsActive,
		Order:       payload.Order,
	}
	if err := db.Create(&experience).Error; err != nil {
		log.Printf("Error creating experience: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create experience")
		return
	}

	invalidateExperiences(c)
	respondJSON(w, http.StatusCreated, experience)
}

func updateExperience(db *gorm.DB, c *cache.Cache, w http.ResponseWriter, r *http.Request, id int, strict bool) {
	var payload experiencePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if payload.Title == "" || payload.Company == "" {
		respondError(w, http.StatusBadRequest, "Title and company are required")
		return
	}

	var experience model.Experience
	if err := db.First(&experience, id).Error; err != nil {
		log.Printf("Error updating experience: %v", err)
		respondMissingRow(w, err, strict, "Experience not found", "Failed to update experience")
		return
	}

	experience.Title = payload.Title
	experience.Company = payload.Company
	experience.StartDate = payload.StartDate
	experience.Description = payload.Description
	experience.Tools = normalizeList(payload.Tools)
	experience.IsActive = payload.IsActive
	experience.Order = payload.Order
	if err := db.Save(&experience).Error; err != nil {
		log.Printf("Error updating experience: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update experience")
		return
	}

	invalidateExperiences(c)
	respondJSON(w, http.StatusOK, experience)
}

func patchExperience(db *gorm.DB, c *cache.Cache, w http.ResponseWriter, r *http.Request, id int, strict bool) {
	var payload struct {
		IsActive *bool `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.IsActive == nil {
		respondError(w, http.StatusBadRequest, "isActive is required")
		return
	}

	var experience model.Experience
	if err := db.First(&experience, id).Error; err != nil {
		log.Printf("Error updating experience status: %v", err)
		respondMissingRow(w, err, strict, "Experience not found", "Failed to update status")
		return
	}

	experience.IsActive = *payload.IsActive
	if err := db.Save(&experience).Error; err != nil {
		log.Printf("Error updating experience status: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	invalidateExperiences(c)
	respondJSON(w, http.StatusOK, experience)
}

func deleteExperience(db *gorm.DB, c *cache.Cache, w http.ResponseWriter, id int, strict bool) {
	result := db.Delete(&model.Experience{}, id)
	if result.Error != nil {
		log.Printf("Error deleting experience: %v", result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to delete experience")
		return
	}

	if result.RowsAffected == 0 {
		if strict {
			respondError(w, http.StatusNotFound, "Experience not found")
		} else {
			respondError(w, http.StatusInternalServerError, "Failed to delete experience")
		}
		return
	}

	invalidateExperiences(c)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func invalidateExperiences(c *cache.Cache) {
	c.Delete(experiencesAscKey)
	c.Delete(experiencesDescKey)
}
