package localstore_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tabmarks/src/api"
	"tabmarks/src/api/localstore"
)

func TestStore_BookmarkCRUD(t *testing.T) {
	s := mustOpen(t)

	created, err := s.CreateBookmark(api.Bookmark{Name: "Test", URL: "https://example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set")
	}

	created.Name = "Renamed"
	updated, err := s.UpdateBookmark(created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("Name = %q", updated.Name)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("update must preserve CreatedAt")
	}

	list, err := s.ListBookmarks()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Renamed" {
		t.Fatalf("list = %+v", list)
	}

	if err := s.DeleteBookmark(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, err = s.ListBookmarks()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("got %d bookmarks after delete, want 0", len(list))
	}
}

func TestStore_DeleteMissingIsNotFound(t *testing.T) {
	s := mustOpen(t)
	err := s.DeleteBookmark("nope")
	var nf *api.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestStore_GroupNameConflictWithinTab(t *testing.T) {
	s := mustOpen(t)
	if _, err := s.CreateGroup(api.Group{Name: "Work", Color: "#10b981", TabID: "t1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := s.CreateGroup(api.Group{Name: "Work", Color: "#ef4444", TabID: "t1"})
	var conflict *api.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want ConflictError", err)
	}
	// Same name in a different tab is fine.
	if _, err := s.CreateGroup(api.Group{Name: "Work", Color: "#ef4444", TabID: "t2"}); err != nil {
		t.Fatalf("create in other tab: %v", err)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := localstore.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.CreateTab(api.Tab{Name: "main"}); err != nil {
		t.Fatalf("create tab: %v", err)
	}

	reopened, err := localstore.Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	tabs, err := reopened.ListTabs()
	if err != nil {
		t.Fatalf("list tabs: %v", err)
	}
	if len(tabs) != 1 || tabs[0].Name != "main" {
		t.Fatalf("tabs = %+v", tabs)
	}
}

func TestStore_OneFilePerResource(t *testing.T) {
	dir := t.TempDir()
	s, err := localstore.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.CreateBookmark(api.Bookmark{Name: "a", URL: "https://a.example"}); err != nil {
		t.Fatalf("create bookmark: %v", err)
	}
	if _, err := s.CreateGroup(api.Group{Name: "g", Color: "#fff"}); err != nil {
		t.Fatalf("create group: %v", err)
	}
	for _, name := range []string{"bookmarks.json", "groups.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
}

func mustOpen(t *testing.T) *localstore.Store {
	t.Helper()
	s, err := localstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}
