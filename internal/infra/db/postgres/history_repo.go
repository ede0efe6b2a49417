package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/bryanwahyu/cad-detect/internal/domain/records"
)

const schema = `
CREATE TABLE IF NOT EXISTS ecg_history (
  id          TEXT PRIMARY KEY,
  position    INTEGER NOT NULL,
  date_label  TEXT NOT NULL,
  patient     TEXT NOT NULL,
  patient_id  TEXT NOT NULL,
  result      TEXT NOT NULL,
  confidence  NUMERIC(5,2) NOT NULL
);`

type HistoryRepository struct{ db *sql.DB }

func NewHistoryRepository(db *sql.DB) *HistoryRepository { return &HistoryRepository{db: db} }

func (r *HistoryRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create ecg_history: %w", err)
	}
	return nil
}

// Seed upserts rows in order.
func (r *HistoryRepository) Seed(ctx context.Context, rows []records.HistoryRecord) error {
	const q = `
INSERT INTO ecg_history (id, position, date_label, patient, patient_id, result, confidence)
VALUES ($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT (id) DO UPDATE SET
 position = EXCLUDED.position,
 date_label = EXCLUDED.date_label,
 patient = EXCLUDED.patient,
 patient_id = EXCLUDED.patient_id,
 result = EXCLUDED.result,
 confidence = EXCLUDED.confidence;`

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
			return fmt.Errorf("seed history %s: %w", h.ID, describe(err))
		}
	}
	return tx.Commit()
}

func (r *HistoryRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ecg_history`).Scan(&n); err != nil {
		return 0, describe(err)
	}
	return n, nil
}

func (r *HistoryRepository) List(ctx context.Context) ([]records.HistoryRecord, error) {
	const q = `
SELECT id, date_label, patient, patient_id, result, confidence
FROM ecg_history
ORDER BY position ASC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", describe(err))
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
WHERE id = $1
LIMIT 1`

	var h records.HistoryRecord
	err := r.db.QueryRowContext(ctx, q, id).Scan(&h.ID, &h.Date, &h.Patient, &h.PatientID, &h.Result, &h.Confidence)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, records.ErrNotFound
	}
	if err != nil {
		return nil, describe(err)
	}
	return &h, nil
}

// describe adds the postgres error code so logs show what the server said.
func describe(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("postgres %s (%s): %w", pqErr.Code, pqErr.Code.Name(), err)
	}
	return err
}
