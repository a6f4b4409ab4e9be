package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/clinics"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ clinics.RecordService = (*RecordService)(nil)

// RecordService implements clinics.RecordService using SQLite.
// Each WriteRecords call stores a new run.
type RecordService struct {
	db  *DB
	now func() time.Time
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db, now: time.Now}
}

// WriteRecords stores records as a new run in a single transaction.
func (s *RecordService) WriteRecords(ctx context.Context, records []clinics.Record) error {
	_, err := s.CreateRun(ctx, records)
	return err
}

// CreateRun stores records as a new run and returns it.
func (s *RecordService) CreateRun(ctx context.Context, records []clinics.Record) (*clinics.Run, error) {
	run := &clinics.Run{
		ID:        uuid.New().String(),
		Records:   len(records),
		CreatedAt: s.now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, record_count, created_at) VALUES (?, ?, ?)
	`, run.ID, run.Records, formatTime(run.CreatedAt)); err != nil {
		return nil, err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (run_id, position, area, name, address, tel, site, hours, day,
			reserve_limitation, disease_limitation, fingerprint)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, run.ID, i,
			r.Area, r.Name, r.Address, r.Tel, r.Site, r.Hours, r.Day,
			r.ReserveLimitation, r.DiseaseLimitation, Fingerprint(r)); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return run, nil
}

// FindRuns returns all runs, newest first.
func (s *RecordService) FindRuns(ctx context.Context) ([]*clinics.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, record_count, created_at FROM runs ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*clinics.Run
	for rows.Next() {
		var run clinics.Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.Records, &createdAt); err != nil {
			return nil, err
		}
		if run.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// FindRecords returns the records of one run in their original order.
// Returns ENOTFOUND if the run does not exist or no runs are stored.
func (s *RecordService) FindRecords(ctx context.Context, filter clinics.RecordFilter) ([]clinics.Record, error) {
	runID, err := s.resolveRun(ctx, filter.RunID)
	if err != nil {
		return nil, err
	}

	var query strings.Builder
	args := []any{runID}

	query.WriteString(`SELECT area, name, address, tel, site, hours, day, reserve_limitation, disease_limitation
		FROM records WHERE run_id = ?`)

	if filter.Area != nil {
		query.WriteString(" AND area = ?")
		args = append(args, *filter.Area)
	}

	query.WriteString(" ORDER BY position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []clinics.Record
	for rows.Next() {
		var r clinics.Record
		if err := rows.Scan(&r.Area, &r.Name, &r.Address, &r.Tel, &r.Site, &r.Hours, &r.Day,
			&r.ReserveLimitation, &r.DiseaseLimitation); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *RecordService) resolveRun(ctx context.Context, id *string) (string, error) {
	if id == nil {
		var latest string
		err := s.db.QueryRowContext(ctx, `SELECT id FROM runs ORDER BY created_at DESC, rowid DESC LIMIT 1`).Scan(&latest)
		if errors.Is(err, sql.ErrNoRows) {
			return "", clinics.Errorf(clinics.ENOTFOUND, "no runs stored")
		}
		return latest, err
	}

	var found string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM runs WHERE id = ?`, *id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return "", clinics.Errorf(clinics.ENOTFOUND, "run %q not found", *id)
	}
	return found, err
}
