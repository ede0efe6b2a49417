package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bryanwahyu/cad-detect/internal/domain/records"
)

const schema = `
CREATE TABLE IF NOT EXISTS ecg_history (
  id          VARCHAR(64)  NOT NULL PRIMARY KEY,
  position    INT          NOT NULL,
  date_label  VARCHAR(64)  NOT NULL,
  patient     VARCHAR(255) NOT NULL,
  patient_id  VARCHAR(64)  NOT NULL,
  result      VARCHAR(32)  NOT NULL,
  confidence  DECIMAL(5,2) NOT NULL
);`

// HistoryRepository reads past analyses from MySQL. Rows keep the order
// they were seeded in.
type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Migrate creates the table when it doesn't exist yet.
func (r *HistoryRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create ecg_history: %w", err)
	}
	return nil
}

// Seed upserts rows in order. Used to load the sample history into an
// empty database.
func (r *HistoryRepository) Seed(ctx context.Context, rows []records.HistoryRecord) error {
	const q = `
INSERT INTO ecg_history (id, position, date_label, patient, patient_id, result, confidence)
VALUES (?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
 position=VALUES(position), date_label=VALUES(date_label), patient=VALUES(patient),
 patient_id=VALUES(patient_id), result=VALUES(result), confidence=VALUES(confidence);`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for i, h := range rows {
		if _, err := tx.ExecContext(ctx, q,
			h.ID, i, stringOrDash(h.Date), stringOrDash(h.Patient), stringOrDash(h.PatientID),
			stringOrDash(h.Result), h.Confidence,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("seed history %s: %w", h.ID, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of stored rows.
func (r *HistoryRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ecg_history`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *HistoryRepository) List(ctx context.Context) ([]records.HistoryRecord, error) {
	const q = `
SELECT id, date_label, patient, patient_id, result, confidence
FROM ecg_history
ORDER BY position ASC;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var out []records.HistoryRecord
	for rows.Next() {
		var h records.HistoryRecord
		if err := rows.Scan(&h.ID, &h.Date, &h.Patient, &h.PatientID, &h.Result, &h.Confidence); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return out, nil
}

func (r *HistoryRepository) Get(ctx context.Context, id string) (*records.HistoryRecord, error) {
	const q = `
SELECT id, date_label, patient, patient_id, result, confidence
FROM ecg_history
WHERE id=? LIMIT 1;`

	var h records.HistoryRecord
	err := r.db.QueryRowContext(ctx, q, id).Scan(&h.ID, &h.Date, &h.Patient, &h.PatientID, &h.Result, &h.Confidence)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, records.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}
