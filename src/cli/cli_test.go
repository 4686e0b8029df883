package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tabmarks/src/api/localstore"
	"tabmarks/src/cli"
	"tabmarks/src/transfer"
)

// run executes the CLI against a throwaway local store and returns stdout.
// HOME is pointed at the data dir so no real user config leaks in.
func run(t *testing.T, dataDir string, args ...string) string {
	t.Helper()
	t.Setenv("HOME", dataDir)
	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs(append(args, "--data-dir", dataDir))
	if _, err := cmd.ExecuteC(); err != nil {
		t.Fatalf("%v: %v; stderr=%s", args, err, errBuf.String())
	}
	return out.String()
}

func TestCLI_Version(t *testing.T) {
	out := run(t, t.TempDir(), "version")
	if strings.TrimSpace(out) == "" {
		t.Fatalf("empty version output")
	}
}

func TestCLI_AddListRemove(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "tab", "add", "main")
	run(t, dir, "group", "add", "Work", "--color", "#10b981", "--tab", "main")
	run(t, dir, "add", "https://example.com", "--name", "Test", "--tab", "main", "--group", "Work")

	out := run(t, dir, "list", "-o", "json")
	if !strings.Contains(out, "https://example.com") || !strings.Contains(out, "Test") {
		t.Fatalf("list output missing bookmark: %s", out)
	}

	run(t, dir, "remove", "Test", "--yes")
	out = run(t, dir, "list", "-o", "json")
	if strings.Contains(out, "Test") {
		t.Fatalf("bookmark still listed after remove: %s", out)
	}
}

func TestCLI_AddNormalizesURL(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "add", "example.com", "--name", "Bare")
	out := run(t, dir, "list", "-o", "json")
	if !strings.Contains(out, "https://example.com") {
		t.Fatalf("url not normalized: %s", out)
	}
}

func TestCLI_AddRejectsInvalidURL(t *testing.T) {
	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{"add", "://invalid-url", "--name", "x", "--data-dir", t.TempDir()})
	if _, err := cmd.ExecuteC(); err == nil {
		t.Fatalf("expected error for invalid url")
	}
}

func TestCLI_ExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "tab", "add", "main")
	run(t, dir, "group", "add", "Work", "--color", "#10b981", "--tab", "main")
	run(t, dir, "add", "https://example.com", "--name", "Test", "--tab", "main", "--group", "Work")

	exportPath := filepath.Join(t.TempDir(), "export.json")
	run(t, dir, "export", "-o", exportPath)

	raw, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var payload transfer.Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if len(payload.Bookmarks) != 1 || len(payload.Groups) != 1 {
		t.Fatalf("payload = %+v", payload)
	}
	if payload.Bookmarks[0].GroupIDs[0] != 0 {
		t.Fatalf("groupIds = %v, want [0]", payload.Bookmarks[0].GroupIDs)
	}

	// Import into a fresh store holding pre-existing data; the import must
	// replace it entirely.
	dst := t.TempDir()
	run(t, dst, "tab", "add", "main")
	run(t, dst, "group", "add", "Stale", "--color", "#000", "--tab", "main")
	run(t, dst, "add", "https://stale1.example", "--name", "stale1")
	run(t, dst, "add", "https://stale2.example", "--name", "stale2")

	out := run(t, dst, "import", exportPath, "--yes", "--tab", "main")
	if !strings.Contains(out, "Imported 1 groups and 1 bookmarks") {
		t.Fatalf("import output: %s", out)
	}

	store, err := localstore.Open(dst)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	bookmarks, err := store.ListBookmarks()
	if err != nil {
		t.Fatalf("list bookmarks: %v", err)
	}
	groups, err := store.ListGroups()
	if err != nil {
		t.Fatalf("list groups: %v", err)
	}
	if len(bookmarks) != 1 || len(groups) != 1 {
		t.Fatalf("after import: %d bookmarks, %d groups; want 1 and 1", len(bookmarks), len(groups))
	}
	if groups[0].Name != "Work" || groups[0].Color != "#10b981" {
		t.Fatalf("group = %+v", groups[0])
	}
	if len(bookmarks[0].GroupIDs) != 1 || bookmarks[0].GroupIDs[0] != groups[0].ID {
		t.Fatalf("bookmark group ref = %v, want [%s]", bookmarks[0].GroupIDs, groups[0].ID)
	}
}

func TestCLI_ImportDryRunChangesNothing(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "tab", "add", "main")
	run(t, dir, "add", "https://keep.example", "--name", "keep")

	payload := `{"bookmarks":[{"name":"new","url":"https://new.example"}],"groups":[]}`
	path := filepath.Join(t.TempDir(), "in.json")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	run(t, dir, "import", path, "--dry-run")

	out := run(t, dir, "list", "-o", "json")
	if !strings.Contains(out, "keep") || strings.Contains(out, "new.example") {
		t.Fatalf("dry-run mutated the store: %s", out)
	}
}

func TestCLI_ImportRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"bookmarks": {}, "groups": []}`), 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{"import", path, "--yes", "--data-dir", t.TempDir()})
	_, err := cmd.ExecuteC()
	if err == nil || !strings.Contains(err.Error(), `"bookmarks" must be an array`) {
		t.Fatalf("err = %v", err)
	}
}
