// internal/workers/data-access/query-catalog/handler_test.go
package querycatalog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saarthi-workers/internal/catalog"
	"saarthi-workers/internal/common/logger"
	"saarthi-workers/internal/models"
)

func opportunityRows(t *testing.T, opportunities []models.Opportunity) *sqlmock.Rows {
	t.Helper()
	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "eligibility", "visibility_level", "impact_level", "category",
	})
	for _, opp := range opportunities {
		eligibility, err := json.Marshal(opp.Eligibility)
		require.NoError(t, err)
		rows.AddRow(opp.ID, opp.Name, opp.Description, eligibility, string(opp.Visibility), string(opp.Impact), opp.Category)
	}
	return rows
}

func newHandlerWithMock(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewHandler(LoadConfig(), db, logger.NewNoOpLogger()), mock
}

func TestExecute_AllOpportunities(t *testing.T) {
	h, mock := newHandlerWithMock(t)

	mock.ExpectQuery("SELECT id, name, description, eligibility").
		WillReturnRows(opportunityRows(t, catalog.Builtin()))

	output, err := h.Execute(context.Background(), &Input{QueryType: "all_opportunities"})
	require.NoError(t, err)

	assert.Equal(t, 6, output.RowCount)
	assert.Len(t, output.Opportunities, 6)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_OpportunityByID(t *testing.T) {
	h, mock := newHandlerWithMock(t)

	expected := catalog.Builtin()[:1]
	mock.ExpectQuery("WHERE id =").
		WithArgs("central-sector-scholarship").
		WillReturnRows(opportunityRows(t, expected))

	output, err := h.Execute(context.Background(), &Input{
		QueryType: "opportunity_by_id",
		ID:        "central-sector-scholarship",
	})
	require.NoError(t, err)

	require.Equal(t, 1, output.RowCount)
	assert.Equal(t, "central-sector-scholarship", output.Opportunities[0].ID)
	assert.True(t, output.Opportunities[0].Eligibility.IncomeBased)
}

func TestExecute_ByCategory(t *testing.T) {
	h, mock := newHandlerWithMock(t)

	c := catalog.New(catalog.Builtin())
	mock.ExpectQuery("WHERE category =").
		WithArgs("Internship").
		WillReturnRows(opportunityRows(t, c.ByCategory("Internship")))

	output, err := h.Execute(context.Background(), &Input{
		QueryType: "opportunities_by_category",
		Category:  "Internship",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, output.RowCount)
}

func TestExecute_UnknownQueryType(t *testing.T) {
	h, _ := newHandlerWithMock(t)

	_, err := h.Execute(context.Background(), &Input{QueryType: "drop_tables"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidQueryType)
}

func TestExecute_MissingParameter(t *testing.T) {
	h, _ := newHandlerWithMock(t)

	_, err := h.Execute(context.Background(), &Input{QueryType: "opportunity_by_id"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryExecutionFailed)
	assert.Contains(t, err.Error(), "missing required parameter")
}

func TestExecute_QueryFailure(t *testing.T) {
	h, mock := newHandlerWithMock(t)

	mock.ExpectQuery("SELECT id, name, description, eligibility").
		WillReturnError(assert.AnError)

	_, err := h.Execute(context.Background(), &Input{QueryType: "all_opportunities"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryExecutionFailed)
}
