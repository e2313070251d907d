// Package catalog holds the opportunity knowledge base. The catalog is
// assembled once at startup and treated as immutable afterwards.
package catalog

import (
	"saarthi-workers/internal/models"
)

// Catalog is an immutable set of opportunities with lookup indexes.
type Catalog struct {
	opportunities []models.Opportunity
	byID          map[string]int
}

// New builds a catalog from the given opportunities. Input order is preserved.
func New(opportunities []models.Opportunity) *Catalog {
	byID := make(map[string]int, len(opportunities))
	for i, opp := range opportunities {
		byID[opp.ID] = i
	}
	return &Catalog{
		opportunities: opportunities,
		byID:          byID,
	}
}

// All returns a copy of every opportunity in the catalog.
func (c *Catalog) All() []models.Opportunity {
	out := make([]models.Opportunity, len(c.opportunities))
	copy(out, c.opportunities)
	return out
}

// Len returns the number of opportunities in the catalog.
func (c *Catalog) Len() int {
	return len(c.opportunities)
}

// ByID returns the opportunity with the given id, if present.
func (c *Catalog) ByID(id string) (models.Opportunity, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Opportunity{}, false
	}
	return c.opportunities[i], true
}

// ByCategory returns every opportunity in the given category.
func (c *Catalog) ByCategory(category string) []models.Opportunity {
	var out []models.Opportunity
	for _, opp := range c.opportunities {
		if opp.Category == category {
			out = append(out, opp)
		}
	}
	return out
}

// ByEducationLevel returns every opportunity open to the given education
// level. Opportunities with no education constraint are included.
func (c *Catalog) ByEducationLevel(level models.EducationLevel) []models.Opportunity {
	var out []models.Opportunity
	for _, opp := range c.opportunities {
		if len(opp.Eligibility.EducationLevels) == 0 {
			out = append(out, opp)
			continue
		}
		for _, l := range opp.Eligibility.EducationLevels {
			if l == level {
				out = append(out, opp)
				break
			}
		}
	}
	return out
}
