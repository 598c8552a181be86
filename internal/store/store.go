// Package store archives simulation outcomes in a SQL database so that
// counterexamples survive the process and can be replayed later from their
// seeds. SQLite and MySQL are supported; the driver-specific parts live in
// their own files.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"quill/internal/sim"
)

// dialect captures the per-driver DDL differences.
type dialect struct {
	schema string
}

var dialects = map[string]dialect{}

// Archive is a handle on the runs table of one database.
type Archive struct {
	db     *sql.DB
	driver string
}

// Open connects to the database and ensures the runs table exists.
// Supported drivers are "sqlite3" and "mysql".
func Open(ctx context.Context, driver, dsn string) (*Archive, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("store: unsupported driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", driver, err)
	}
	if _, err := db.ExecContext(ctx, d.schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	slog.Debug("archive opened", slog.String("driver", driver))
	return &Archive{db: db, driver: driver}, nil
}

func (a *Archive) Close() error { return a.db.Close() }

// Record is one archived run.
type Record struct {
	ID        int64           `json:"id"`
	Model     string          `json:"model"`
	Seed      int64           `json:"seed"`
	Status    string          `json:"status"`
	Invariant string          `json:"invariant,omitempty"`
	StepIndex int             `json:"stepIndex"`
	Steps     int             `json:"steps"`
	Trace     json.RawMessage `json:"trace"`
	Created   time.Time       `json:"created"`
}

// SaveRun archives a single run outcome together with its full trace.
func (a *Archive) SaveRun(ctx context.Context, model string, run *sim.RunOutcome) (int64, error) {
	trace, err := json.Marshal(run.Trace)
	if err != nil {
		return 0, fmt.Errorf("store: encode trace: %w", err)
	}
	res, err := a.db.ExecContext(ctx,
		`INSERT INTO runs (model, seed, status, invariant, step_index, steps, trace, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		model, run.Seed, string(run.Status), run.Invariant, run.StepIndex,
		len(run.Trace), trace, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("store: insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: last insert id: %w", err)
	}
	slog.Debug("run archived",
		slog.Int64("id", id),
		slog.String("model", model),
		slog.String("status", string(run.Status)))
	return id, nil
}

// Recent returns the newest archived runs, most recent first.
func (a *Archive) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT id, model, seed, status, invariant, step_index, steps, trace, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var trace []byte
		if err := rows.Scan(&r.ID, &r.Model, &r.Seed, &r.Status, &r.Invariant,
			&r.StepIndex, &r.Steps, &trace, &r.Created); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		r.Trace = json.RawMessage(trace)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Get loads one archived run by id.
func (a *Archive) Get(ctx context.Context, id int64) (*Record, error) {
	var r Record
	var trace []byte
	err := a.db.QueryRowContext(ctx,
		`SELECT id, model, seed, status, invariant, step_index, steps, trace, created_at
		 FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &r.Model, &r.Seed, &r.Status, &r.Invariant,
			&r.StepIndex, &r.Steps, &trace, &r.Created)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("store: run %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load run %d: %w", id, err)
	}
	r.Trace = json.RawMessage(trace)
	return &r, nil
}
