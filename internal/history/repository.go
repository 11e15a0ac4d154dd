// Package history persists tool runs and their results to sqlite, as an
// audit trail alongside the rendered reports.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"time"
)

//go:embed sql/insert-run.sql
var insertRunSQL string

//go:embed sql/insert-conversion.sql
var insertConversionSQL string

//go:embed sql/insert-word-count.sql
var insertWordCountSQL string

//go:embed sql/get-runs.sql
var getRunsSQL string

//go:embed sql/get-conversions.sql
var getConversionsSQL string

type Repository interface {
	InsertRun(run Run) (int64, error)
	InsertConversions(runID int64, convs []Conversion) error
	InsertWordCounts(runID int64, counts []WordCount) error
	GetRuns(limit int) ([]Run, error)
	GetConversions(runID int64) ([]Conversion, error)
}

type repositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repositoryImpl{db: db}
}

// InsertRun records a run and returns its id. run.ID is ignored.
func (r *repositoryImpl) InsertRun(run Run) (int64, error) {
	startedAt := run.StartedAt.UTC().Format(time.RFC3339Nano)
	res, err := r.db.Exec(insertRunSQL,
		run.Tool, run.Source, startedAt, run.Duration.Milliseconds(),
		run.OKCount, run.ErrorCount,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}
	return id, nil
}

func (r *repositoryImpl) InsertConversions(runID int64, convs []Conversion) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	for _, c := range convs {
		if _, err := tx.Exec(insertConversionSQL, runID, c.Position, c.Value, c.Bin, c.Hex); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert conversion %d: %w", c.Position, err)
		}
	}
	return tx.Commit()
}

func (r *repositoryImpl) InsertWordCounts(runID int64, counts []WordCount) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	for _, wc := range counts {
		if _, err := tx.Exec(insertWordCountSQL, runID, wc.Word, wc.Count); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert word count %q: %w", wc.Word, err)
		}
	}
	return tx.Commit()
}

func (r *repositoryImpl) GetRuns(limit int) ([]Run, error) {
	rows, err := r.db.Query(getRunsSQL, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close runs rows", "error", err)
		}
	}()

	var out []Run
	for rows.Next() {
		var run Run
		var startedAt string
		var durationMs int64
		if err := rows.Scan(&run.ID, &run.Tool, &run.Source, &startedAt, &durationMs, &run.OKCount, &run.ErrorCount); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parse started_at %q: %w", startedAt, err)
		}
		run.StartedAt = t
		run.Duration = time.Duration(durationMs) * time.Millisecond
		out = append(out, run)
	}
	return out, rows.Err()
}

func (r *repositoryImpl) GetConversions(runID int64) ([]Conversion, error) {
	rows, err := r.db.Query(getConversionsSQL, runID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close conversions rows", "error", err)
		}
	}()

	var out []Conversion
	for rows.Next() {
		var c Conversion
		if err := rows.Scan(&c.Position, &c.Value, &c.Bin, &c.Hex); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
