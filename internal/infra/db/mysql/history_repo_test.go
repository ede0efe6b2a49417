package mysql

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/cad-detect/internal/domain/records"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var historyCols = []string{"id", "date_label", "patient", "patient_id", "result", "confidence"}

func TestHistoryRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHistoryRepository(db)

	mock.ExpectQuery("ORDER BY position ASC").
		WillReturnRows(sqlmock.NewRows(historyCols).
			AddRow("ECG-001", "Dec 3, 2024", "John Doe", "PAT-12345", "Normal", 97.8).
			AddRow("ECG-002", "Dec 2, 2024", "Emily Davis", "PAT-12346", "CAD Detected", 89.2))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Emily Davis", got[1].Patient)
	assert.Equal(t, 89.2, got[1].Confidence)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_GetNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHistoryRepository(db)

	mock.ExpectQuery("FROM ecg_history").
		WithArgs("ECG-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "ECG-404")
	assert.ErrorIs(t, err, records.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_SeedKeepsOrder(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHistoryRepository(db)

	rows := []records.HistoryRecord{
		{ID: "ECG-001", Date: "Dec 3, 2024", Patient: "John Doe", PatientID: "PAT-12345", Result: "Normal", Confidence: 97.8},
		{ID: "ECG-002", Patient: "", Result: "Normal", Confidence: 50},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ecg_history").
		WithArgs("ECG-001", 0, "Dec 3, 2024", "John Doe", "PAT-12345", "Normal", 97.8).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO ecg_history").
		WithArgs("ECG-002", 1, "-", "-", "-", "Normal", 50.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Seed(context.Background(), rows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_MigrateAndCount(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHistoryRepository(db)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS ecg_history").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM ecg_history")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))

	require.NoError(t, repo.Migrate(context.Background()))
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
