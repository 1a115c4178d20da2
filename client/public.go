package client

import (
	"strings"

	"portfolio/model"
)

// AllProjects names the synthetic bucket covering every active project.
const AllProjects = "All Projects"

// Category is one tab on the public project gallery.
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ActivePortfolios drops inactive rows. Public rendering always goes
// through this before any category logic, so an inactive project can never
// appear regardless of which tab is selected.
func ActivePortfolios(rows []model.Portfolio) []model.Portfolio {
	out := make([]model.Portfolio, 0, len(rows))
	for _, row := range rows {
		if row.IsActive {
			out = append(out, row)
		}
	}
	return out
}

// ActiveExperiences drops inactive rows, preserving the fetched order.
func ActiveExperiences(rows []model.Experience) []model.Experience {
	out := make([]model.Experience, 0, len(rows))
	for _, row := range rows {
		if row.IsActive {
			out = append(out, row)
		}
	}
	return out
}

// Categories derives the gallery tabs: the All bucket first, then one
// bucket per distinct category in first-seen order, each with its count.
func Categories(active []model.Portfolio) []Category {
	counts := make(map[string]int)
	var names []string
	for _, row := range active {
		if _, seen := counts[row.Category]; !seen {
			names = append(names, row.Category)
		}
		counts[row.Category]++
	}

	out := []Category{{Name: AllProjects, Count: len(active)}}
	for _, name := range names {
		out = append(out, Category{Name: name, Count: counts[name]})
	}
	return out
}

// ByCategory re-filters the already fetched active set; selecting a tab
// never triggers another network call.
func ByCategory(active []model.Portfolio, name string) []model.Portfolio {
	if name == "" || name == AllProjects {
		return active
	}
	out := make([]model.Portfolio, 0, len(active))
	for _, row := range active {
		if strings.EqualFold(row.Category, name) {
			out = append(out, row)
		}
	}
	return out
}
