package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"portfolio/model"
)

const skillsCacheKey = "skills"

type skillPayload struct {
	Title  string  `json:"title"`
	Skills string  `json:"skills"`
	Link   *string `json:"link"`
}

// Skills serves the collection routes: list and create.
func Skills(db *gorm.DB, c *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listSkills(db, c, w)
		case http.MethodPost:
			createSkill(db, c, w, r)
		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

// SkillByID serves the item routes: read, full update, delete. Skill cards
// carry no activation flag, so PATCH is not accepted here.
func SkillByID(db *gorm.DB, c *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "/api/skills/")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid ID format")
			return
		}

		switch r.Method {
		case http.MethodGet:
			getSkill(db, w, id)
		case http.MethodPut:
			updateSkill(db, c, w, r, id)
		case http.MethodDelete:
			deleteSkill(db, c, w, id)
		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

func listSkills(db *gorm.DB, c *cache.Cache, w http.ResponseWriter) {
	data, err := cachedList(c, skillsCacheKey, func() (interface{}, error) {
		var skills []model.SkillCard
		if err := db.Find(&skills).Error; err != nil {
			return nil, err
		}
		return skills, nil
	})
	if err != nil {
		log.Printf("Error fetching skills: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch skills")
		return
	}

	respondJSON(w, http.StatusOK, data)
}

func createSkill(db *gorm.DB, c *cache.Cache, w http.ResponseWriter, r *http.Request) {
	var payload skillPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if payload.Title == "" || payload.Skills == "" {
		respondError(w, http.StatusBadRequest, "Title and skills are required")
		return
	}

	skill := model.SkillCard{
		Title:  payload.Title,
		Skills: payload.Skills,
		Link:   payload.Link,
	}
	if err := db.Create(&skill).Error; err != nil {
		log.Printf("Error creating skill: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create skill")
		return
	}

	c.Delete(skillsCacheKey)
	respondJSON(w, http.StatusCreated, skill)
}

func getSkill(db *gorm.DB, w http.ResponseWriter, id int) {
	var skill model.SkillCard
	if err := db.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Skill not found")
			return
		}
		log.Printf("Error fetching skill: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch skill")
		return
	}

	respondJSON(w, http.StatusOK, skill)
}

func updateSkill(db *gorm.DB, c *cache.Cache, w http.ResponseWriter, r *http.Request, id int) {
	var payload skillPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if payload.Title == "" || payload.Skills == "" {
		respondError(w, http.StatusBadRequest, "Title and skills are required")
		return
	}

	var skill model.SkillCard
	if err := db.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Skill not found")
			return
		}
		log.Printf("Error fetching skill: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update skill")
		return
	}

	skill.Title = payload.Title
	skill.Skills = payload.Skills
	skill.Link = payload.Link
	if err := db.Save(&skill).Error; err != nil {
		log.Printf("Error updating skill: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update skill")
		return
	}

	c.Delete(skillsCacheKey)
	respondJSON(w, http.StatusOK, skill)
}

func deleteSkill(db *gorm.DB, c *cache.Cache, w http.ResponseWriter, id int) {
	result := db.Delete(&model.SkillCard{}, id)
	if result.Error != nil {
		log.Printf("Error deleting skill: %v", result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to delete skill")
		return
	}

	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Skill not found")
		return
	}

	c.Delete(skillsCacheKey)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Skill deleted successfully"})
}
