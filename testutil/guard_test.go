package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

func TestInternalImportForbiddenPredicate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"example.com/mod/internal/x", true},
		{"example.com/mod/pkg/x", false},
	}
	for _, c := range cases {
		if got := InternalImportForbidden(c.in); got != c.want {
			t.Fatalf("InternalImportForbidden(%q)=%v want %v", c.in, got, c.want)
		}
	}
}

func TestInfraImportForbiddenPredicate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"familytree/internal/infra/blob/s3", true},
		{"familytree/internal/infra", true},
		{"familytree/internal/infrastructure", false},
		{"familytree/internal/blob", false},
	}
	for _, c := range cases {
		if got := InfraImportForbidden(c.in); got != c.want {
			t.Fatalf("InfraImportForbidden(%q)=%v want %v", c.in, got, c.want)
		}
	}
}

// TestAssertNoDirectImports exercises the success path by creating a tiny temp package with safe imports.
func TestAssertNoDirectImports(t *testing.T) {
	dir := t.TempDir()
	src := []byte("package tmp\nimport \"fmt\"\nfunc X(){fmt.Println(1)}")
	if err := os.WriteFile(filepath.Join(dir, "x.go"), src, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	AssertNoDirectImports(t, dir, func(string) bool { return false }, "none")
}

func TestDirectImportViolationsReportsFile(t *testing.T) {
	dir := t.TempDir()
	src := []byte("package tmp\nimport _ \"example.com/mod/internal/secret\"\n")
	if err := os.WriteFile(filepath.Join(dir, "bad.go"), src, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad_test.go"), src, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	viols, err := directImportViolations(dir, InternalImportForbidden)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(viols) != 1 || !strings.Contains(viols[0], "bad.go") {
		t.Fatalf("expected one violation in bad.go, got %v", viols)
	}
	if _, err := directImportViolations(filepath.Join(dir, "missing"), InternalImportForbidden); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}

type recordingFatal struct{ msg string }

func (r *recordingFatal) Fatalf(format string, args ...any) { r.msg = fmt.Sprintf(format, args...) }

func TestFailHelpers(t *testing.T) {
	rec := &recordingFatal{}
	failIfDirectViolations(rec, "reason", nil)
	failIfTransitiveViolations(rec, "reason", nil)
	if rec.msg != "" {
		t.Fatalf("no violations must not fail: %q", rec.msg)
	}
	failIfTransitiveViolations(rec, "why", []string{"a/b"})
	if !strings.Contains(rec.msg, "why") || !strings.Contains(rec.msg, "a/b") {
		t.Fatalf("unexpected message %q", rec.msg)
	}
}

func TestTransitiveDependencyViolationsWalksGraph(t *testing.T) {
	orig := loadPackages
	t.Cleanup(func() { loadPackages = orig })

	leaf := &packages.Package{PkgPath: "familytree/internal/infra/blob/s3"}
	mid := &packages.Package{PkgPath: "familytree/internal/blob", Imports: map[string]*packages.Package{leaf.PkgPath: leaf}}
	root := &packages.Package{PkgPath: "familytree/internal/loader", Imports: map[string]*packages.Package{mid.PkgPath: mid, leaf.PkgPath: leaf}}
	loadPackages = func(string) ([]*packages.Package, error) { return []*packages.Package{root}, nil }

	viols, err := transitiveDependencyViolations("./...", InfraImportForbidden)
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if len(viols) != 1 || viols[0] != leaf.PkgPath {
		t.Fatalf("expected single infra violation, got %v", viols)
	}

	loadPackages = func(string) ([]*packages.Package, error) { return nil, errors.New("load failed") }
	if _, err := transitiveDependencyViolations("./...", InfraImportForbidden); err == nil {
		t.Fatalf("expected load error")
	}
}
