// internal/workers/data-access/query-catalog/models.go
package querycatalog

import "saarthi-workers/internal/models"

type Input struct {
	QueryType      string `json:"queryType"`
	ID             string `json:"id,omitempty"`
	Category       string `json:"category,omitempty"`
	EducationLevel string `json:"educationLevel,omitempty"`
}

type Output struct {
	Opportunities      []models.Opportunity `json:"opportunities"`
	RowCount           int                  `json:"rowCount"`
	QueryExecutionTime int64                `json:"queryExecutionTime"` // milliseconds
}
