// internal/workers/data-access/search-opportunities/models.go
package searchopportunities

import "saarthi-workers/internal/models"

type Input struct {
	Query          string `json:"query"`
	Category       string `json:"category,omitempty"`
	EducationLevel string `json:"educationLevel,omitempty"`
	Size           int    `json:"size,omitempty"`
}

type Output struct {
	Opportunities []models.Opportunity `json:"opportunities"`
	Total         int                  `json:"total"`
	TookMs        int                  `json:"tookMs"`
}

// searchResponse mirrors the subset of the Elasticsearch response we read.
type searchResponse struct {
	Took int `json:"took"`
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []struct {
			Source models.Opportunity `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}
