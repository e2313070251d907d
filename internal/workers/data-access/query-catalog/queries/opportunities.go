// internal/workers/data-access/query-catalog/queries/opportunities.go
package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"saarthi-workers/internal/models"
)

const selectColumns = "id, name, description, eligibility, visibility_level, impact_level, category"

// AllOpportunities returns every catalog row ordered by id.
func AllOpportunities(ctx context.Context, db *sql.DB, table string, _ map[string]interface{}) ([]models.Opportunity, int, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", selectColumns, table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return scanOpportunities(rows)
}

// OpportunityByID returns at most one row, looked up by the "id" parameter.
func OpportunityByID(ctx context.Context, db *sql.DB, table string, params map[string]interface{}) ([]models.Opportunity, int, error) {
	id, err := stringParam(params, "id")
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", selectColumns, table)
	rows, err := db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return scanOpportunities(rows)
}

// OpportunitiesByCategory filters on the "category" parameter.
func OpportunitiesByCategory(ctx context.Context, db *sql.DB, table string, params map[string]interface{}) ([]models.Opportunity, int, error) {
	category, err := stringParam(params, "category")
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE category = $1 ORDER BY id", selectColumns, table)
	rows, err := db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return scanOpportunities(rows)
}

// OpportunitiesByEducationLevel filters on the "educationLevel" parameter
// against the JSONB eligibility column.
func OpportunitiesByEducationLevel(ctx context.Context, db *sql.DB, table string, params map[string]interface{}) ([]models.Opportunity, int, error) {
	level, err := stringParam(params, "educationLevel")
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE eligibility->'educationLevels' @> to_jsonb($1::text) ORDER BY id",
		selectColumns, table)
	rows, err := db.QueryContext(ctx, query, level)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return scanOpportunities(rows)
}

func scanOpportunities(rows *sql.Rows) ([]models.Opportunity, int, error) {
	var opportunities []models.Opportunity
	for rows.Next() {
		var opp models.Opportunity
		var eligibility []byte
		if err := rows.Scan(
			&opp.ID,
			&opp.Name,
			&opp.Description,
			&eligibility,
			&opp.Visibility,
			&opp.Impact,
			&opp.Category,
		); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(eligibility, &opp.Eligibility); err != nil {
			return nil, 0, fmt.Errorf("decode eligibility for %s: %w", opp.ID, err)
		}
		opportunities = append(opportunities, opp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return opportunities, len(opportunities), nil
}
