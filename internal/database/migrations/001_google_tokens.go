package migrations

import (
	"database/sql"
)

func init() {
	Register(Migration{
		Version: 1,
		Name:    "google_tokens",
		Up:      googleTokens,
	})
}

// Single-user: one token row, keyed by a fixed id so the upsert stays trivial.
func googleTokens(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS google_tokens (
			id INTEGER PRIMARY KEY CHECK(id = 1),
			access_token_encrypted BLOB NOT NULL,
			refresh_token_encrypted BLOB NOT NULL,
			token_type TEXT NOT NULL DEFAULT 'Bearer',
			expiry DATETIME,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
