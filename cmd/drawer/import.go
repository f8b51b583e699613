package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"drawer/internal/catalog"
	appErrors "drawer/internal/errors"
)

// runImport copies a catalog into a new file, converting between SQLite and
// YAML by extension:
//
//	drawer import [-force] SRC DST
//
// SRC may be "demo" to seed a catalog with the built-in apps.
func runImport(ctx context.Context, args []string, out io.Writer) error {
	fset := flag.NewFlagSet("import", flag.ContinueOnError)
	fset.SetOutput(out)
	force := fset.Bool("force", false, "Replace DST if it already exists")
	fset.Usage = func() {
		fmt.Fprintln(out, "usage: drawer import [-force] SRC DST")
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() != 2 {
		fset.Usage()
		return fmt.Errorf("import needs a source and a destination")
	}
	srcPath, dstPath := fset.Arg(0), fset.Arg(1)

	write, err := writerFor(dstPath)
	if err != nil {
		return err
	}
	if err := checkDestination(dstPath, *force); err != nil {
		return err
	}

	src, err := sourceFor(srcPath)
	if err != nil {
		return err
	}
	apps, err := catalog.Load(ctx, src, catalog.Options{IncludeSystem: true})
	if err != nil {
		return fmt.Errorf("read %s: %w", srcPath, err)
	}

	if err := replaceCatalog(ctx, dstPath, apps, write); err != nil {
		return fmt.Errorf("write %s: %w", dstPath, err)
	}
	fmt.Fprintf(out, "Imported %d apps into %s\n", len(apps), dstPath)
	return nil
}

type catalogWriter func(ctx context.Context, path string, apps []catalog.App) error

// writerFor picks the catalog format from the destination's extension.
func writerFor(path string) (catalogWriter, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return catalog.WriteSQLite, nil
	case ".yaml", ".yml":
		return writeYAML, nil
	default:
		return nil, appErrors.New(appErrors.CodeCatalogFormat,
			fmt.Sprintf("unsupported catalog file %s (want .db, .sqlite or .yaml)", path), nil)
	}
}

func writeYAML(_ context.Context, path string, apps []catalog.App) error {
	data, err := catalog.MarshalYAML(apps)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func checkDestination(path string, force bool) error {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !force {
		return fmt.Errorf("%s already exists (use -force to replace it)", path)
	}
	return nil
}

// replaceCatalog writes apps to a temp file beside path and renames it into place,
// so path keeps its old contents if the write fails.
func replaceCatalog(ctx context.Context, path string, apps []catalog.App, write catalogWriter) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := write(ctx, tmpPath, apps); err != nil {
		return err
	}
	//nolint:gosec // G302: catalogs are not secret
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	renamed = true
	return nil
}
