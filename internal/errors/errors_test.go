package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorMessageFallbacks(t *testing.T) {
	cases := []struct {
		err  Error
		want string
	}{
		{New(CodeCatalogFormat, "bad row", nil), "bad row"},
		{New(CodeCatalogUnreadable, "", fs.ErrPermission), fs.ErrPermission.Error()},
		{New(CodeLaunchFailed, "", nil), "launch_failed"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
	}
}

func TestCodeOfWalksWrappedChain(t *testing.T) {
	inner := New(CodeCatalogNotFound, "missing", fs.ErrNotExist)
	wrapped := fmt.Errorf("load: %w", inner)

	if got := CodeOf(wrapped); got != CodeCatalogNotFound {
		t.Fatalf("CodeOf = %q, want %q", got, CodeCatalogNotFound)
	}
	if !IsCode(wrapped, CodeCatalogNotFound) {
		t.Fatalf("expected IsCode to match through wrapping")
	}
	if !errors.Is(wrapped, fs.ErrNotExist) {
		t.Fatalf("expected the cause to stay reachable")
	}
}

func TestCodeOfUnstructured(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != CodeUnknown {
		t.Fatalf("CodeOf = %q, want %q", got, CodeUnknown)
	}
	if IsCode(nil, CodeLaunchFailed) {
		t.Fatalf("nil error should not match a code")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("load: %w", New(CodeCatalogNotFound, "catalog not found: apps.db", fs.ErrNotExist))

	if !errors.Is(err, New(CodeCatalogNotFound, "", nil)) {
		t.Fatalf("expected errors.Is to match on code")
	}
	target := New(CodeCatalogNotFound, "", nil)
	if !errors.Is(err, &target) {
		t.Fatalf("expected errors.Is to match a pointer target")
	}
	if errors.Is(err, New(CodeCatalogFormat, "", nil)) {
		t.Fatalf("expected a different code not to match")
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(CodeLaunchFailed, fs.ErrPermission, "launch %s", "org.example.maps")
	if got, want := err.Error(), "launch org.example.maps: "+fs.ErrPermission.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected the cause to stay reachable")
	}

	if got := Wrapf(CodeConfigurationError, nil, "bad %s", "key").Error(); got != "bad key" {
		t.Fatalf("nil cause: got %q", got)
	}
}
