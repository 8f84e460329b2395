package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/calendlam/calendlam/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/calendlam/calendlam/internal/core/domain"
	"github.com/calendlam/calendlam/internal/core/ports/driven"
)

// DatabaseName is the file name of the database inside the data directory.
const DatabaseName = "layouts.db"

// Store is a SQLite-based storage that provides access to the
// store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.calendlam/data/layouts.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".calendlam", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseName)

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// LayoutStore returns a LayoutStore interface backed by this store.
func (s *Store) LayoutStore() driven.LayoutStore {
	return &layoutStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_layouts.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Layout Store ====================

// layoutStore implements driven.LayoutStore.
type layoutStore struct {
	store *Store
}

var _ driven.LayoutStore = (*layoutStore)(nil)

// Save stores or replaces a layout.
func (s *layoutStore) Save(ctx context.Context, layout domain.Layout) error {
	orderJSON, err := json.Marshal(layout.PrintOrder)
	if err != nil {
		return fmt.Errorf("marshalling print order: %w", err)
	}

	if layout.CreatedAt.IsZero() {
		layout.CreatedAt = time.Now().UTC()
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO layouts (id, year, pages_per_signature, content_pages, blank_pages,
			signatures, sheets, print_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			year = excluded.year,
			pages_per_signature = excluded.pages_per_signature,
			content_pages = excluded.content_pages,
			blank_pages = excluded.blank_pages,
			signatures = excluded.signatures,
			sheets = excluded.sheets,
			print_order = excluded.print_order,
			created_at = excluded.created_at
	`, layout.ID, layout.Year, layout.PagesPerSignature, layout.ContentPages, layout.BlankPages,
		layout.Signatures, layout.Sheets, string(orderJSON), layout.CreatedAt.UnixNano())

	if err != nil {
		return fmt.Errorf("saving layout: %w", err)
	}
	return nil
}

// Get retrieves a layout by ID.
func (s *layoutStore) Get(ctx context.Context, id string) (*domain.Layout, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, year, pages_per_signature, content_pages, blank_pages,
			signatures, sheets, print_order, created_at
		FROM layouts WHERE id = ?
	`, id)

	layout, err := scanLayout(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return layout, nil
}

// List returns layouts newest first.
func (s *layoutStore) List(ctx context.Context, limit int) ([]domain.Layout, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, year, pages_per_signature, content_pages, blank_pages,
			signatures, sheets, print_order, created_at
		FROM layouts ORDER BY created_at DESC, id ASC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying layouts: %w", err)
	}
	defer rows.Close()

	var layouts []domain.Layout
	for rows.Next() {
		layout, err := scanLayout(rows)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, *layout)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating layouts: %w", err)
	}
	return layouts, nil
}

// Delete removes a layout by ID.
func (s *layoutStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM layouts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting layout: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting layout: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLayout(row rowScanner) (*domain.Layout, error) {
	var layout domain.Layout
	var orderJSON string
	var createdAt int64
	if err := row.Scan(&layout.ID, &layout.Year, &layout.PagesPerSignature,
		&layout.ContentPages, &layout.BlankPages, &layout.Signatures, &layout.Sheets,
		&orderJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning layout: %w", err)
	}

	if err := json.Unmarshal([]byte(orderJSON), &layout.PrintOrder); err != nil {
		return nil, fmt.Errorf("unmarshaling print order: %w", err)
	}
	layout.CreatedAt = time.Unix(0, createdAt).UTC()

	return &layout, nil
}
