// internal/catalog/store.go
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"saarthi-workers/internal/models"
)

// Store loads the opportunity catalog from PostgreSQL. Eligibility criteria
// are stored as a JSONB column so the table schema does not have to change
// when a criterion is added.
type Store struct {
	db    *sql.DB
	table string
}

func NewStore(db *sql.DB, table string) *Store {
	if table == "" {
		table = "opportunities"
	}
	return &Store{db: db, table: table}
}

// Load reads every opportunity row ordered by id.
func (s *Store) Load(ctx context.Context) ([]models.Opportunity, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, eligibility, visibility_level, impact_level, category
		FROM %s
		ORDER BY id`, s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

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
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		if err := json.Unmarshal(eligibility, &opp.Eligibility); err != nil {
			return nil, fmt.Errorf("decode eligibility for %s: %w", opp.ID, err)
		}
		opportunities = append(opportunities, opp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog rows: %w", err)
	}

	return opportunities, nil
}

// Seed upserts the given opportunities. Used by the catalog-seeder tool.
func (s *Store) Seed(ctx context.Context, opportunities []models.Opportunity) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, description, eligibility, visibility_level, impact_level, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			eligibility = EXCLUDED.eligibility,
			visibility_level = EXCLUDED.visibility_level,
			impact_level = EXCLUDED.impact_level,
			category = EXCLUDED.category`, s.table)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback()

	for _, opp := range opportunities {
		eligibility, err := json.Marshal(opp.Eligibility)
		if err != nil {
			return fmt.Errorf("encode eligibility for %s: %w", opp.ID, err)
		}
		if _, err := tx.ExecContext(ctx, query,
			opp.ID,
			opp.Name,
			opp.Description,
			eligibility,
			opp.Visibility,
			opp.Impact,
			opp.Category,
		); err != nil {
			return fmt.Errorf("seed opportunity %s: %w", opp.ID, err)
		}
	}

	return tx.Commit()
}
