package handler

import (
	"log"
	"net/http"

	"gorm.io/gorm"

	"portfolio/model"
)

// Stats reports row counts for the admin dashboard.
func Stats(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var skills, experiences int64
		if err := db.Model(&model.SkillCard{}).Count(&skills).Error; err != nil {
			log.Printf("Error counting skills: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch stats")
			return
		}
		if err := db.Model(&model.Experience{}).Count(&experiences).Error; err != nil {
			log.Printf("Error counting experiences: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch stats")
			return
		}

		// TODO: decide whether projects should report the real portfolio
		// count; the shipped dashboard has always shown zero here.
		respondJSON(w, http.StatusOK, map[string]int64{
			"skills":      skills,
			"projects":    0,
			"experiences": experiences,
		})
	}
}
