// Package catalog enumerates the apps shown in the drawer.
//
// A Source lists raw entries (from SQLite, YAML or memory); Load applies the
// system-app filter and optional alphabetical ordering on top.
package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"drawer/internal/debug"
	appErrors "drawer/internal/errors"
)

// Source lists the apps available to the drawer.
type Source interface {
	List(ctx context.Context) ([]App, error)
}

// SourceForPath picks a Source by file extension.
// .db, .sqlite and .sqlite3 are read with SQLite; .yaml and .yml as YAML.
func SourceForPath(path string) (Source, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, appErrors.New(appErrors.CodeCatalogNotFound, "catalog path is empty", nil)
	}
	switch strings.ToLower(filepath.Ext(trimmed)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteSource(trimmed), nil
	case ".yaml", ".yml":
		return NewYAMLSource(trimmed), nil
	default:
		return nil, appErrors.New(appErrors.CodeCatalogFormat,
			fmt.Sprintf("unsupported catalog file %s (want .db, .sqlite or .yaml)", trimmed), nil)
	}
}

// Load lists src and applies opts. Entries without a package are dropped since
// they cannot be launched.
func Load(ctx context.Context, src Source, opts Options) ([]App, error) {
	if src == nil {
		return nil, fmt.Errorf("catalog source is nil")
	}
	raw, err := src.List(ctx)
	if err != nil {
		return nil, err
	}

	apps := make([]App, 0, len(raw))
	var skippedSystem, skippedBlank int
	for _, app := range raw {
		if strings.TrimSpace(app.Package) == "" {
			skippedBlank++
			continue
		}
		if app.System && !opts.IncludeSystem {
			skippedSystem++
			continue
		}
		apps = append(apps, app)
	}

	if opts.SortAlphabetically {
		slices.SortStableFunc(apps, func(a, b App) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	}

	debug.Logf("catalog: %d apps loaded (%d system skipped, %d without package)",
		len(apps), skippedSystem, skippedBlank)
	return apps, nil
}
