package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	appErrors "drawer/internal/errors"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
	CREATE TABLE IF NOT EXISTS apps (
		id          TEXT NOT NULL DEFAULT '',
		package     TEXT NOT NULL,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		exec        TEXT NOT NULL DEFAULT '',
		system      INTEGER NOT NULL DEFAULT 0
	);
`

// sqliteSource reads the apps table of a catalog database opened read-only.
type sqliteSource struct {
	path string
	dsn  string
}

// NewSQLiteSource returns a Source backed by the SQLite database at path.
func NewSQLiteSource(path string) Source {
	trimmed := strings.TrimSpace(path)
	return &sqliteSource{path: trimmed, dsn: buildSQLiteDSN(trimmed, true)}
}

// buildSQLiteDSN builds a file: DSN; readOnly selects mode=ro.
func buildSQLiteDSN(path string, readOnly bool) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(path),
	}
	q := url.Values{}
	if readOnly {
		q.Set("mode", "ro")
	}
	q.Add("_pragma", "busy_timeout(3000)")
	u.RawQuery = q.Encode()
	return u.String()
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping catalog db: %w", err)
	}
	return db, nil
}

func (s *sqliteSource) List(ctx context.Context) ([]App, error) {
	if err := requireFile(s.path); err != nil {
		return nil, err
	}
	db, err := openDB(ctx, s.dsn)
	if err != nil {
		return nil, unreadable(s.path, err)
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, `
		SELECT id, package, name, description, exec, system
		FROM apps
		ORDER BY rowid
	`)
	if err != nil {
		return nil, unreadable(s.path, fmt.Errorf("query apps: %w", err))
	}
	defer func() {
		_ = rows.Close()
	}()

	var apps []App
	for rows.Next() {
		var (
			app    App
			system int
		)
		if err := rows.Scan(&app.ID, &app.Package, &app.Name, &app.Description, &app.Exec, &system); err != nil {
			return nil, unreadable(s.path, fmt.Errorf("scan app: %w", err))
		}
		app.System = system != 0
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, unreadable(s.path, err)
	}
	return apps, nil
}

// WriteSQLite creates (or appends to) the catalog database at path and inserts apps
// in order inside one transaction.
func WriteSQLite(ctx context.Context, path string, apps []App) error {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return fmt.Errorf("sqlite path is empty")
	}
	db, err := openDB(ctx, buildSQLiteDSN(trimmed, false))
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO apps (id, package, name, description, exec, system) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, app := range apps {
		system := 0
		if app.System {
			system = 1
		}
		if _, err := stmt.ExecContext(ctx, app.ID, app.Package, app.Name, app.Description, app.Exec, system); err != nil {
			return fmt.Errorf("insert %s: %w", app.Package, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func requireFile(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return appErrors.New(appErrors.CodeCatalogNotFound, fmt.Sprintf("catalog not found: %s", path), err)
	}
	if err != nil {
		return unreadable(path, err)
	}
	if info.IsDir() {
		return appErrors.New(appErrors.CodeCatalogFormat, fmt.Sprintf("catalog path %s is a directory", path), nil)
	}
	return nil
}

func unreadable(path string, err error) error {
	return appErrors.Wrapf(appErrors.CodeCatalogUnreadable, err, "read catalog %s", path)
}
