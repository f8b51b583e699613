package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"drawer/internal/catalog"
	"drawer/internal/debug"
	"drawer/internal/launch"
	"drawer/internal/search"
	"drawer/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

// run loads the catalog and either prints ranked results or opens the drawer.
func run(ctx context.Context, opts runtimeOptions, out io.Writer, interactive bool, factory programFactory) error {
	apps, err := loadCatalog(ctx, opts)
	if err != nil {
		return err
	}
	if opts.printMode(interactive) {
		return printResults(out, apps, opts)
	}

	// Dry-run output is held until the alt screen is gone.
	var dryRunOut bytes.Buffer
	var launcher launch.Launcher = launch.NewExecLauncher()
	if opts.dryRun {
		launcher = launch.NewDryRunLauncher(&dryRunOut)
	}

	cfg := ui.Config{
		Apps:          apps,
		Launcher:      launcher,
		OutputFormat:  opts.outputFormat,
		Version:       Version,
		MaxCandidates: opts.maxCandidates,
		InitialQuery:  opts.query,
	}
	err = runProgram(cfg, ui.NewApp, factory)
	if _, copyErr := io.Copy(out, &dryRunOut); copyErr != nil && err == nil {
		err = fmt.Errorf("write dry run output: %w", copyErr)
	}
	return err
}

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		if errors.Is(err, ui.ErrNoApps) {
			return err
		}
		return fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

func loadCatalog(ctx context.Context, opts runtimeOptions) ([]catalog.App, error) {
	src, err := sourceFor(opts.catalogPath)
	if err != nil {
		return nil, err
	}
	return catalog.Load(ctx, src, catalog.Options{
		IncludeSystem:      opts.includeSystem,
		SortAlphabetically: opts.sortCatalog,
	})
}

// sourceFor resolves a catalog path; an empty path or "demo" means the built-in
// demo apps.
func sourceFor(path string) (catalog.Source, error) {
	if path == "" || path == demoCatalog {
		debug.Log("catalog: using demo apps")
		return catalog.NewStaticSource(catalog.DemoApps()...), nil
	}
	debug.Logf("catalog: reading %s", path)
	return catalog.SourceForPath(path)
}

const demoCatalog = "demo"

type printedResult struct {
	Name     string `json:"name"`
	Package  string `json:"package"`
	Score    *int   `json:"score,omitempty"`
	Strategy string `json:"strategy,omitempty"`
}

// printResults ranks apps for opts.query and writes one line per result, or a
// JSON array when opts.jsonOutput is set.
func printResults(w io.Writer, apps []catalog.App, opts runtimeOptions) error {
	candidates := apps
	if opts.maxCandidates > 0 && len(candidates) > opts.maxCandidates {
		candidates = candidates[:opts.maxCandidates]
	}
	results := search.Search(candidates, opts.query)
	if opts.limit > 0 && len(results) > opts.limit {
		results = results[:opts.limit]
	}
	debug.Logf("print: %q ranked %d of %d apps", opts.query, len(results), len(candidates))

	printed := make([]printedResult, len(results))
	for i, app := range results {
		printed[i] = printedResult{Name: app.Name, Package: app.Package}
		if opts.explain {
			match := search.Explain(app.Name, opts.query)
			score := match.Score
			printed[i].Score = &score
			printed[i].Strategy = match.Strategy
		}
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(printed); err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
		return nil
	}

	for _, r := range printed {
		var err error
		if opts.explain {
			_, err = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.Name, r.Package, *r.Score, r.Strategy)
		} else {
			_, err = fmt.Fprintf(w, "%s\t%s\n", r.Name, r.Package)
		}
		if err != nil {
			return fmt.Errorf("write results: %w", err)
		}
	}
	return nil
}
