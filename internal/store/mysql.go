package store

import (
	_ "github.com/go-sql-driver/mysql"
)

// The MySQL DSN must carry parseTime=true so created_at scans into time.Time.
func init() {
	dialects["mysql"] = dialect{
		schema: `CREATE TABLE IF NOT EXISTS runs (
			id BIGINT PRIMARY KEY AUTO_INCREMENT,
			model VARCHAR(255) NOT NULL,
			seed BIGINT NOT NULL,
			status VARCHAR(32) NOT NULL,
			invariant VARCHAR(255) NOT NULL DEFAULT '',
			step_index INT NOT NULL DEFAULT 0,
			steps INT NOT NULL,
			trace MEDIUMTEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
	}
}
