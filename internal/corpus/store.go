package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"tfsmatch/internal/textutil"
)

// Store is a read-only handle to a template corpus database.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to the corpus database at path. The file must already
// exist; tfsmatch never creates or migrates a corpus.
func Open(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat corpus %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("corpus path %q is a directory", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open corpus db: %w", err)
	}

	pragmas := []string{
		"PRAGMA query_only = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection. Safe on a nil store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the corpus database location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Templates returns candidate templates, optionally narrowed by a keyword
// filter. The filter is split into tokens on hyphen/underscore separators;
// tokens shorter than 3 characters are discarded, and each surviving token
// must appear in the command label as a case-sensitive substring. A filter
// whose tokens are all discarded behaves as no filter. A filter matching
// nothing returns an empty slice, not an error.
func (s *Store) Templates(ctx context.Context, filter string) ([]Template, error) {
	query := "SELECT id, cli_command, textfsm_content FROM templates"
	var args []any

	if tokens := textutil.FilterTokens(filter); len(tokens) > 0 {
		clauses := make([]string, len(tokens))
		args = make([]any, len(tokens))
		for i, token := range tokens {
			clauses[i] = "instr(cli_command, ?) > 0"
			args[i] = token
		}
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	var templates []Template
	for rows.Next() {
		var (
			id      int64
			command sql.NullString
			content sql.NullString
		)
		if err := rows.Scan(&id, &command, &content); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, Template{
			ID:         id,
			CLICommand: command.String,
			Content:    content.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	return templates, nil
}

// Count returns the number of templates the corpus holds.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM templates")
	if err := row.Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("count templates: %w", err)
	}
	return count, nil
}
