package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// pathID extracts the numeric identifier that follows prefix in the
// request path.
func pathID(r *http.Request, prefix string) (int, bool) {
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	if rest == "" || strings.Contains(rest, "/") {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return id, true
}

// respondMissingRow maps a failed row lookup. Skill always reports 404; for
// the other entities the historical behavior is a 500 from the failed
// persistence call, and strict switches them to a clean 404.
func respondMissingRow(w http.ResponseWriter, err error, strict bool, notFoundMsg, failMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) && strict {
		respondError(w, http.StatusNotFound, notFoundMsg)
		return
	}
	respondError(w, http.StatusInternalServerError, failMsg)
}

// normalizeList keeps absent JSON arrays from becoming null in responses.
func normalizeList(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}
