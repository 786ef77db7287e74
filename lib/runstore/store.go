// Package runstore keeps a local history of harvest runs. The catalog
// itself is regenerated from scratch every run; this history is what
// lets an operator notice a refresh that suddenly yields fewer series.
package runstore

import (
	"context"
	"database/sql"
	"time"

	_ "embed"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the run database at `path` and ensures the
// schema exists. Use ":memory:" for tests.
func Open(path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return Store{}, err
	}
	_, err = db.Exec(schema)
	if err != nil {
		db.Close()
		return Store{}, err
	}
	return Store{db: db}, nil
}

func (s Store) Close() error {
	return s.db.Close()
}

type Run struct {
	Id       int64
	Started  time.Time
	Finished time.Time
	Links    int
	Records  int
	Skipped  int
	Output   string
}

func (s Store) Record(ctx context.Context, run Run) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO harvest_run (started, finished, links, records, skipped, output)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Started.Unix(),
		run.Finished.Unix(),
		run.Links,
		run.Records,
		run.Skipped,
		run.Output,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns all recorded runs, most recent first.
func (s Store) List(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, started, finished, links, records, skipped, output
		 FROM harvest_run ORDER BY started DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var started, finished int64
		err = rows.Scan(
			&run.Id, &started, &finished,
			&run.Links, &run.Records, &run.Skipped, &run.Output,
		)
		if err != nil {
			return nil, err
		}
		run.Started = time.Unix(started, 0)
		run.Finished = time.Unix(finished, 0)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
