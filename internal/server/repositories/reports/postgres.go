package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/reportvault/internal/common"
	"github.com/dmitrijs2005/reportvault/internal/dbx"
	"github.com/dmitrijs2005/reportvault/internal/server/models"
)

// PostgresRepository implements report storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const reportColumns = `id, user_id, name,
		num_failed_test_suites, num_failed_tests,
		num_passed_test_suites, num_passed_tests,
		num_pending_test_suites, num_pending_tests,
		num_runtime_error_test_suites, num_todo_tests,
		num_total_test_suites, num_total_tests,
		start_time, success, was_interrupted,
		test_results, snapshot_key, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, report *models.Report) (*models.Report, error) {

	if err := report.Validate(); err != nil {
		return nil, err
	}

	testResults, err := json.Marshal(report.TestResults)
	if err != nil {
		return nil, fmt.Errorf("error encoding test results: %w", err)
	}

	query :=
		`INSERT INTO reports (user_id, name,
			num_failed_test_suites, num_failed_tests,
			num_passed_test_suites, num_passed_tests,
			num_pending_test_suites, num_pending_tests,
			num_runtime_error_test_suites, num_todo_tests,
			num_total_test_suites, num_total_tests,
			start_time, success, was_interrupted,
			test_results, snapshot_key)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		 RETURNING id, created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		report.UserID, report.Name,
		report.NumFailedTestSuites, report.NumFailedTests,
		report.NumPassedTestSuites, report.NumPassedTests,
		report.NumPendingTestSuites, report.NumPendingTests,
		report.NumRuntimeErrorTestSuites, report.NumTodoTests,
		report.NumTotalTestSuites, report.NumTotalTests,
		report.StartTime, report.Success, report.WasInterrupted,
		testResults, report.SnapshotKey).
		Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return report, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`

	report, err := scanReport(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return report, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports
		 WHERE user_id = $1
		 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := []*models.Report{}
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reports WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (*models.Report, error) {
	report := &models.Report{}
	var testResults []byte

	err := row.Scan(
		&report.ID, &report.UserID, &report.Name,
		&report.NumFailedTestSuites, &report.NumFailedTests,
		&report.NumPassedTestSuites, &report.NumPassedTests,
		&report.NumPendingTestSuites, &report.NumPendingTests,
		&report.NumRuntimeErrorTestSuites, &report.NumTodoTests,
		&report.NumTotalTestSuites, &report.NumTotalTests,
		&report.StartTime, &report.Success, &report.WasInterrupted,
		&testResults, &report.SnapshotKey, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(testResults, &report.TestResults); err != nil {
		return nil, fmt.Errorf("error decoding test results: %w", err)
	}

	return report, nil
}
