// Package testsupport provides shared fixtures for tfsmatch tests.
package testsupport

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// SeedTemplate is one corpus row for test databases.
type SeedTemplate struct {
	CLICommand string
	Content    string
}

// NewCorpusDB creates a throwaway SQLite corpus populated with the given
// templates and returns its path. The schema mirrors the external corpus:
// a templates table with a command label and a template definition.
func NewCorpusDB(t testing.TB, templates ...SeedTemplate) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "templates.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open corpus db: %v", err)
	}
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE templates (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        cli_command TEXT NOT NULL,
        textfsm_content TEXT NOT NULL
    )`)
	if err != nil {
		t.Fatalf("create templates table: %v", err)
	}

	for _, tmpl := range templates {
		if _, err := db.Exec(
			`INSERT INTO templates (cli_command, textfsm_content) VALUES (?, ?)`,
			tmpl.CLICommand, tmpl.Content,
		); err != nil {
			t.Fatalf("insert template %q: %v", tmpl.CLICommand, err)
		}
	}
	return path
}
