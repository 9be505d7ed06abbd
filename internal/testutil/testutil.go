// Package testutil holds fixtures shared by swinst package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

// StackFixture lays out a swinstall_stack manifest for fileName under dir,
// using the dir/bak/<file>/<file>_swinstall_stack convention, and returns its path.
// schema is written verbatim as the root schema attribute; an empty schema omits it.
// elts are raw <elt .../> elements in document order.
func StackFixture(t *testing.T, dir string, fileName string, schema string, elts ...string) string {
	t.Helper()
	stackDir := filepath.Join(dir, "bak", fileName)
	stackPath := filepath.Join(stackDir, fileName+"_swinstall_stack")

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("stack_history")
	root.CreateAttr("path", stackPath)
	if schema != "" {
		root.CreateAttr("schema", schema)
	}
	if len(elts) > 0 {
		fragment := etree.NewDocument()
		if err := fragment.ReadFromString("<elts>" + strings.Join(elts, "") + "</elts>"); err != nil {
			t.Fatalf("parse fixture elements: %v", err)
		}
		for _, el := range fragment.Root().ChildElements() {
			root.AddChild(el.Copy())
		}
	}
	doc.Indent(3)
	text, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("render fixture: %v", err)
	}
	WriteFile(t, stackPath, text)
	return stackPath
}

// WriteFile writes contents to path, creating parent directories.
func WriteFile(t *testing.T, path string, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool {
	return &v
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
