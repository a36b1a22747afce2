package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDirFiltersAndMerges(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"ui.yaml":    "- name: click\n  description: pointer click\n- name: view\n",
		"net.YML":    "- name: request\n",
		"notes.txt":  "- name: ignored\n",
		"dupes.yaml": "- name: click\n  description: duplicate, first wins\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	kinds, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(kinds) != 3 {
		t.Fatalf("expected 3 kinds got %d: %+v", len(kinds), kinds)
	}
	for _, want := range []string{"click", "view", "request"} {
		if !Declared(kinds, want) {
			t.Fatalf("kind %q not declared in %+v", want, kinds)
		}
	}
	if Declared(kinds, "ignored") {
		t.Fatalf("non-yaml file was scanned")
	}
}

func TestLoadDirSkipsNamelessEntries(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "k.yaml"), []byte("- description: no name\n- name: ok\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	kinds, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(kinds) != 1 || kinds[0].Name != "ok" {
		t.Fatalf("unexpected kinds: %+v", kinds)
	}
}

func TestLoadDirBadYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadDir(dir); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadDirMissingDir(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
