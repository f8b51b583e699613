package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"drawer/internal/config"
	"drawer/internal/debug"
	"drawer/internal/ui"
	"drawer/internal/ui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "import" {
		if err := runImport(context.Background(), os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	catalogFlag := flag.String("catalog", config.GetPath(config.KeyCatalogPath), "Catalog file (.db/.sqlite or .yaml); demo apps when empty")
	includeSystemFlag := flag.Bool("include-system", config.GetBool(config.KeyCatalogIncludeSystem), "Include system apps")
	queryFlag := flag.String("query", "", "Rank apps for this query, print them and exit")
	jsonFlag := flag.Bool("json", config.GetBool(config.KeyOutputJSON), "Print results as JSON")
	explainFlag := flag.Bool("explain", false, "Include score and matching strategy in printed results")
	limitFlag := flag.Int("limit", config.GetInt(config.KeySearchMaxResults), "Maximum number of printed results (0 = all)")
	dryRunFlag := flag.Bool("dry-run", config.GetBool(config.KeyLaunchDryRun), "Report the launch instead of starting the app")
	themeFlag := flag.String("theme", config.GetString(config.KeyTheme), "UI theme ("+strings.Join(theme.Available(), ", ")+")")
	outputFormatFlag := flag.String("output-format", config.GetString(config.KeyOutputFormat), "Detail panel markdown style (rich, light, plain)")
	debugFlag := flag.Bool("debug", config.GetBool(config.KeyDebug), "Write a debug log to ~/.drawer/debug.log")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	opts := computeRuntimeOptions(runtimeFlags{
		catalogPath:   catalogFlag,
		includeSystem: includeSystemFlag,
		query:         queryFlag,
		jsonOutput:    jsonFlag,
		explain:       explainFlag,
		limit:         limitFlag,
		dryRun:        dryRunFlag,
		theme:         themeFlag,
		outputFormat:  outputFormatFlag,
		debug:         debugFlag,
	}, visited)

	if err := debug.Init(opts.debug); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
	}
	if !theme.Set(opts.theme) {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using %s\n", opts.theme, theme.CurrentName())
	}
	debug.Logf("startup: %+v", opts)

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	err := run(context.Background(), opts, os.Stdout, interactive, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen())
	})
	debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type runtimeFlags struct {
	catalogPath   *string
	includeSystem *bool
	query         *string
	jsonOutput    *bool
	explain       *bool
	limit         *int
	dryRun        *bool
	theme         *string
	outputFormat  *string
	debug         *bool
}

type runtimeOptions struct {
	catalogPath   string
	includeSystem bool
	sortCatalog   bool
	query         string
	queryGiven    bool
	jsonOutput    bool
	explain       bool
	limit         int
	maxCandidates int
	dryRun        bool
	theme         string
	outputFormat  string
	debug         bool
}

// printMode reports whether results are printed instead of opening the drawer.
func (o runtimeOptions) printMode(interactive bool) bool {
	return o.queryGiven || !interactive
}

func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	opts := runtimeOptions{
		catalogPath:   config.GetPath(config.KeyCatalogPath),
		includeSystem: config.GetBool(config.KeyCatalogIncludeSystem),
		sortCatalog:   config.GetBool(config.KeyCatalogSort),
		jsonOutput:    config.GetBool(config.KeyOutputJSON),
		limit:         config.GetInt(config.KeySearchMaxResults),
		maxCandidates: max(config.GetInt(config.KeySearchMaxCandidates), 0),
		dryRun:        config.GetBool(config.KeyLaunchDryRun),
		theme:         strings.TrimSpace(config.GetString(config.KeyTheme)),
		outputFormat:  strings.TrimSpace(config.GetString(config.KeyOutputFormat)),
		debug:         config.GetBool(config.KeyDebug),
	}

	if flagWasExplicitlySet("catalog", visited) {
		opts.catalogPath = strings.TrimSpace(*flags.catalogPath)
	}
	if flagWasExplicitlySet("include-system", visited) {
		opts.includeSystem = *flags.includeSystem
	}
	if flagWasExplicitlySet("query", visited) {
		opts.query = *flags.query
		opts.queryGiven = true
	}
	if flagWasExplicitlySet("json", visited) {
		opts.jsonOutput = *flags.jsonOutput
	}
	if flagWasExplicitlySet("explain", visited) {
		opts.explain = *flags.explain
	}
	if flagWasExplicitlySet("limit", visited) {
		opts.limit = *flags.limit
	}
	if flagWasExplicitlySet("dry-run", visited) {
		opts.dryRun = *flags.dryRun
	}
	if flagWasExplicitlySet("theme", visited) {
		opts.theme = strings.TrimSpace(*flags.theme)
	}
	if flagWasExplicitlySet("output-format", visited) {
		opts.outputFormat = strings.TrimSpace(*flags.outputFormat)
	}
	if flagWasExplicitlySet("debug", visited) {
		opts.debug = *flags.debug
	}

	opts.limit = max(opts.limit, 0)
	if opts.theme == "" {
		opts.theme = config.DefaultTheme
	}
	return opts
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}
