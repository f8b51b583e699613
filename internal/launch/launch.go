// Package launch starts apps picked in the drawer.
package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"drawer/internal/catalog"
	"drawer/internal/debug"
	appErrors "drawer/internal/errors"
)

// Launcher starts an app.
type Launcher interface {
	Launch(ctx context.Context, app catalog.App) error
}

// starter starts a process without waiting for it.
type starter func(name string, args ...string) error

type execLauncher struct {
	start starter
}

// ExecOption configures NewExecLauncher.
type ExecOption func(*execLauncher)

// WithStarter replaces the process starter. Tests use it to avoid spawning processes.
func WithStarter(fn func(name string, args ...string) error) ExecOption {
	return func(l *execLauncher) {
		if fn != nil {
			l.start = fn
		}
	}
}

// NewExecLauncher runs App.Exec as a detached process. The command line is split on
// whitespace; there is no shell and no quoting.
func NewExecLauncher(opts ...ExecOption) Launcher {
	l := &execLauncher{start: startDetached}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *execLauncher) Launch(ctx context.Context, app catalog.App) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fields := strings.Fields(app.Exec)
	if len(fields) == 0 {
		return appErrors.New(appErrors.CodeLaunchUnsupported,
			fmt.Sprintf("%s has no exec command", app.Package), nil)
	}
	if err := l.start(fields[0], fields[1:]...); err != nil {
		return classifyLaunchError(app, err)
	}
	debug.Logf("launch: started %s (%s)", app.Package, app.Exec)
	return nil
}

func startDetached(name string, args ...string) error {
	//nolint:gosec // G204: the exec line comes from the user's own catalog
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

func classifyLaunchError(app catalog.App, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return appErrors.New(appErrors.CodeLaunchFailed,
			fmt.Sprintf("launch %s: command not found in PATH", app.Package), err)
	}
	return appErrors.Wrapf(appErrors.CodeLaunchFailed, err, "launch %s", app.Package)
}

type dryRunLauncher struct {
	mu sync.Mutex
	w  io.Writer
}

// NewDryRunLauncher reports what would be launched instead of launching it.
func NewDryRunLauncher(w io.Writer) Launcher {
	if w == nil {
		w = io.Discard
	}
	return &dryRunLauncher{w: w}
}

func (l *dryRunLauncher) Launch(ctx context.Context, app catalog.App) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	debug.Logf("launch: dry run for %s", app.Package)
	if _, err := fmt.Fprintf(l.w, "would launch %s\n", app.Package); err != nil {
		return fmt.Errorf("write dry run: %w", err)
	}
	return nil
}
