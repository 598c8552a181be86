package store

import (
	_ "github.com/mattn/go-sqlite3"
)

func init() {
	dialects["sqlite3"] = dialect{
		schema: `CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			model TEXT NOT NULL,
			seed INTEGER NOT NULL,
			status TEXT NOT NULL,
			invariant TEXT NOT NULL DEFAULT '',
			step_index INTEGER NOT NULL DEFAULT 0,
			steps INTEGER NOT NULL,
			trace TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
	}
}
