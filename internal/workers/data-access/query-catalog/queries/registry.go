// internal/workers/data-access/query-catalog/queries/registry.go
package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"saarthi-workers/internal/models"
)

var (
	ErrMissingParam     = errors.New("missing required parameter")
	ErrUnknownQueryType = errors.New("unknown query type")
)

// QueryType names a supported catalog query.
type QueryType string

const (
	QueryTypeAllOpportunities QueryType = "all_opportunities"
	QueryTypeOpportunityByID  QueryType = "opportunity_by_id"
	QueryTypeByCategory       QueryType = "opportunities_by_category"
	QueryTypeByEducationLevel QueryType = "opportunities_by_education_level"
)

// QueryFunc returns: opportunities, rowCount, error
type QueryFunc func(ctx context.Context, db *sql.DB, table string, params map[string]interface{}) ([]models.Opportunity, int, error)

var Registry = map[QueryType]QueryFunc{
	QueryTypeAllOpportunities: AllOpportunities,
	QueryTypeOpportunityByID:  OpportunityByID,
	QueryTypeByCategory:       OpportunitiesByCategory,
	QueryTypeByEducationLevel: OpportunitiesByEducationLevel,
}

func Execute(ctx context.Context, db *sql.DB, table string, queryType QueryType, params map[string]interface{}) ([]models.Opportunity, int, error) {
	fn, exists := Registry[queryType]
	if !exists {
		return nil, 0, fmt.Errorf("%w: %s", ErrUnknownQueryType, queryType)
	}
	return fn(ctx, db, table, params)
}

func stringParam(params map[string]interface{}, key string) (string, error) {
	val, ok := params[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingParam, key)
	}
	str, ok := val.(string)
	if !ok || str == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingParam, key)
	}
	return str, nil
}
