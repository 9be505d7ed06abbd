package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

func TestStackFixtureLayout(t *testing.T) {
	dir := t.TempDir()
	path := StackFixture(t, dir, "tool.cfg", "2", `<elt id="1"/>`, `<elt id="2"/>`)

	want := filepath.Join(dir, "bak", "tool.cfg", "tool.cfg_swinstall_stack")
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, `path="`+want+`"`) {
		t.Fatalf("root path attribute missing: %s", text)
	}
	if !strings.Contains(text, `schema="2"`) {
		t.Fatalf("schema attribute missing: %s", text)
	}
	if strings.Index(text, `id="1"`) > strings.Index(text, `id="2"`) {
		t.Fatalf("elements out of order: %s", text)
	}
}

func TestStackFixtureEscapesPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), `a&b"c<d`)
	path := StackFixture(t, dir, "tool.cfg", "1", `<elt id="1" version="20181220-090333"/>`)

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		t.Fatalf("fixture is not well-formed: %v", err)
	}
	if got := doc.Root().SelectAttrValue("path", ""); got != path {
		t.Fatalf("expected path %q, got %q", path, got)
	}
	if n := len(doc.Root().SelectElements("elt")); n != 1 {
		t.Fatalf("expected 1 elt, got %d", n)
	}
}

func TestStackFixtureWithoutSchema(t *testing.T) {
	path := StackFixture(t, t.TempDir(), "tool.cfg", "")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	if strings.Contains(string(data), "schema=") {
		t.Fatalf("expected no schema attribute: %s", data)
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c.txt")
	WriteFile(t, path, "hello")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("expected hello, got %q", data)
	}
}

func TestBoolPtr(t *testing.T) {
	ptr := BoolPtr(true)
	if ptr == nil {
		t.Fatal("expected non-nil pointer")
	}
	if !*ptr {
		t.Fatal("expected pointer value true")
	}
}

func TestWithWorkingDirRunsInTargetDirectoryAndRestoresOriginal(t *testing.T) {
	targetDir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd before test: %v", err)
	}

	var observedDir string
	WithWorkingDir(t, targetDir, func() {
		wd, innerErr := os.Getwd()
		if innerErr != nil {
			t.Fatalf("getwd inside callback: %v", innerErr)
		}
		observedDir = wd
	})

	targetReal, err := filepath.EvalSymlinks(targetDir)
	if err != nil {
		targetReal = targetDir
	}
	observedReal, err := filepath.EvalSymlinks(observedDir)
	if err != nil {
		observedReal = observedDir
	}
	if observedReal != targetReal {
		t.Fatalf("expected callback cwd %q, got %q", targetReal, observedReal)
	}

	finalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd after callback: %v", err)
	}
	if finalDir != origDir {
		t.Fatalf("expected cwd restored to %q, got %q", origDir, finalDir)
	}
}
