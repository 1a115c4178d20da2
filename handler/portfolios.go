package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"portfolio/model"
)

const portfoliosCacheKey = "portofolios"

type portfolioPayload struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
	ImageUrls    []string `json:"imageUrls"`
	ProjectUrl   *string  `json:"projectUrl"`
	GithubUrl    *string  `json:"githubUrl"`
	IsActive     bool     `json:"isActive"`
}

// Portfolios serves the collection routes. The list comes back most
// recently updated first.
func Portfolios(db *gorm.DB, c *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listPortfolios(db, c, w)
		case http.MethodPost:
			createPortfolio(db, c, w, r)
		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

// PortfolioByID serves the item routes: full update, status patch, delete.
func PortfolioByID(db *gorm.DB, c *cache.Cache, strictNotFound bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "/api/portofolios/")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid ID format")
			return
		}

		switch r.Method {
		case http.MethodPut:
			updatePortfolio(db, c, w, r, id, strictNotFound)
		case http.MethodPatch:
			patchPortfolio(db, c, w, r, id, strictNotFound)
		case http.MethodDelete:
			deletePortfolio(db, c, w, id, strictNotFound)
		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

func listPortfolios(db *gorm.DB, c *cache.Cache, w http.ResponseWriter) {
	data, err := cachedList(c, portfoliosCacheKey, func() (interface{}, error) {
		var portfolios []model.Portfolio
		if err := db.Order("updated_at DESC").Find(&portfolios).Error; err != nil {
			return nil, err
		}
		return portfolios, nil
	})
	if err != nil {
		log.Printf("Error fetching portfolios: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch portfolios")
		return
	}

	respondJSON(w, http.StatusOK, data)
}

func createPortfolio(db *gorm.DB, c *cache.Cache, w http.ResponseWriter, r *http.Request) {
	var payload portfolioPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if payload.Title == "" || payload.Description == "" || payload.Category == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	portfolio := model.Portfolio{
		Title:        payload.Title,
		Description:  payload.Description,
		Technologies: normalizeList(payload.Technologies),
		Category:     payload.Category,
		ImageUrls:    normalizeList(payload.ImageUrls),
		ProjectUrl:   payload.ProjectUrl,
		GithubUrl:    payload.GithubUrl,
		IsActive:     payload.IsActive,
	}
	if err := db.Create(&portfolio).Error; err != nil {
		log.Printf("Error creating portfolio: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create portfolio")
		return
	}

	c.Delete(portfoliosCacheKey)
	// Replies 200 rather than 201; existing clients expect it.
	respondJSON(w, http.StatusOK, portfolio)
}

func updatePortfolio(db *gorm.DB, c *cache.Cache, w http.ResponseWriter, r *http.Request, id int, strict bool) {
	var payload portfolioPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if payload.Title == "" || payload.Description == "" || payload.Category == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	var portfolio model.Portfolio
	if err := db.First(&portfolio, id).Error; err != nil {
		log.Printf("Error updating portfolio: %v", err)
		respondMissingRow(w, err, strict, "Portfolio not found", "Failed to update portfolio")
		return
	}

	portfolio.Title = payload.Title
	portfolio.Description = payload.Description
	portfolio.Technologies = normalizeList(payload.Technologies)
	portfolio.Category = payload.Category
	portfolio.ImageUrls = normalizeList(payload.ImageUrls)
	portfolio.ProjectUrl = payload.ProjectUrl
	portfolio.GithubUrl = payload.GithubUrl
	portfolio.IsActive = payload.IsActive
	if err := db.Save(&portfolio).Error; err != nil {
		log.Printf("Error updating portfolio: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update portfolio")
		return
	}

	c.Delete(portfoliosCacheKey)
	respondJSON(w, http.StatusOK, portfolio)
}

func patchPortfolio(db *gorm.DB, c *cache.Cache, w http.ResponseWriter, r *http.Request, id int, strict bool) {
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

	var portfolio model.Portfolio
	if err := db.First(&portfolio, id).Error; err != nil {
		log.Printf("Error updating portfolio status: %v", err)
		respondMissingRow(w, err, strict, "Portfolio not found", "Failed to update status")
		return
	}

	portfolio.IsActive = *payload.IsActive
	if err := db.Save(&portfolio).Error; err != nil {
		log.Printf("Error updating portfolio status: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	c.Delete(portfoliosCacheKey)
	respondJSON(w, http.StatusOK, portfolio)
}

func deletePortfolio(db *gorm.DB, c *cache.Cache, w http.ResponseWriter, id int, strict bool) {
	result := db.Delete(&model.Portfolio{}, id)
	if result.Error != nil {
		log.Printf("Error deleting portfolio: %v", result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to delete portfolio")
		return
	}

	if result.RowsAffected == 0 {
		if strict {
			respondError(w, http.StatusNotFound, "Portfolio not found")
		} else {
			respondError(w, http.StatusInternalServerError, "Failed to delete portfolio")
		}
		return
	}

	c.Delete(portfoliosCacheKey)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Portfolio deleted successfully"})
}
