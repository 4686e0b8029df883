// Package localstore implements api.Client on top of plain JSON files.
// Each resource type lives in a single JSON-array file under the data
// directory, mirroring the one-blob-per-resource layout the backend's web
// client keeps in browser local storage. Files are rewritten whole on every
// change; the store is the offline backend and the fallback target when the
// remote backend is unreachable.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"tabmarks/src/api"
)

const (
	bookmarksFile = "bookmarks.json"
	groupsFile    = "groups.json"
	tabsFile      = "tabs.json"
)

// Store persists bookmarks, groups, and tabs as JSON files under dir.
type Store struct {
	dir string
}

// Open creates the data directory if needed and returns a Store over it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// load reads the JSON array at name. A missing file is an empty collection.
func load[T any](s *Store, name string) ([]T, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return out, nil
}

func save[T any](s *Store, name string, items []T) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), append(b, '\n'), 0o644)
}

func (s *Store) ListBookmarks() ([]api.Bookmark, error) {
	return load[api.Bookmark](s, bookmarksFile)
}

func (s *Store) CreateBookmark(b api.Bookmark) (api.Bookmark, error) {
	items, err := load[api.Bookmark](s, bookmarksFile)
	if err != nil {
		return api.Bookmark{}, err
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	for _, have := range items {
		if have.ID == b.ID {
			return api.Bookmark{}, &api.ConflictError{Resource: "bookmark", Name: b.ID}
		}
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	items = append(items, b)
	if err := save(s, bookmarksFile, items); err != nil {
		return api.Bookmark{}, err
	}
	return b, nil
}

func (s *Store) UpdateBookmark(b api.Bookmark) (api.Bookmark, error) {
	items, err := load[api.Bookmark](s, bookmarksFile)
	if err != nil {
		return api.Bookmark{}, err
	}
	for i, have := range items {
		if have.ID == b.ID {
			b.CreatedAt = have.CreatedAt
			b.UpdatedAt = time.Now().UTC()
			items[i] = b
			if err := save(s, bookmarksFile, items); err != nil {
				return api.Bookmark{}, err
			}
			return b, nil
		}
	}
	return api.Bookmark{}, &api.NotFoundError{Resource: "bookmark", ID: b.ID}
}

func (s *Store) DeleteBookmark(id string) error {
	items, err := load[api.Bookmark](s, bookmarksFile)
	if err != nil {
		return err
	}
	for i, have := range items {
		if have.ID == id {
			items = append(items[:i], items[i+1:]...)
			return save(s, bookmarksFile, items)
		}
	}
	return &api.NotFoundError{Resource: "bookmark", ID: id}
}

func (s *Store) ListGroups() ([]api.Group, error) {
	return load[api.Group](s, groupsFile)
}

func (s *Store) CreateGroup(g api.Group) (api.Group, error) {
	items, err := load[api.Group](s, groupsFile)
	if err != nil {
		return api.Group{}, err
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	for _, have := range items {
		if have.ID == g.ID {
			return api.Group{}, &api.ConflictError{Resource: "group", Name: g.ID}
		}
		if have.Name == g.Name && have.TabID == g.TabID {
			return api.Group{}, &api.ConflictError{Resource: "group", Name: g.Name}
		}
	}
	items = append(items, g)
	if err := save(s, groupsFile, items); err != nil {
		return api.Group{}, err
	}
	return g, nil
}

func (s *Store) UpdateGroup(g api.Group) (api.Group, error) {
	items, err := load[api.Group](s, groupsFile)
	if err != nil {
		return api.Group{}, err
	}
	for i, have := range items {
		if have.ID == g.ID {
			items[i] = g
			if err := save(s, groupsFile, items); err != nil {
				return api.Group{}, err
			}
			return g, nil
		}
	}
	return api.Group{}, &api.NotFoundError{Resource: "group", ID: g.ID}
}

func (s *Store) DeleteGroup(id string) error {
	items, err := load[api.Group](s, groupsFile)
	if err != nil {
		return err
	}
	for i, have := range items {
		if have.ID == id {
			items = append(items[:i], items[i+1:]...)
			return save(s, groupsFile, items)
		}
	}
	return &api.NotFoundError{Resource: "group", ID: id}
}

func (s *Store) ListTabs() ([]api.Tab, error) {
	return load[api.Tab](s, tabsFile)
}

func (s *Store) CreateTab(t api.Tab) (api.Tab, error) {
	items, err := load[api.Tab](s, tabsFile)
	if err != nil {
		return api.Tab{}, err
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	for _, have := range items {
		if have.ID == t.ID || have.Name == t.Name {
			return api.Tab{}, &api.ConflictError{Resource: "tab", Name: t.Name}
		}
	}
	items = append(items, t)
	if err := save(s, tabsFile, items); err != nil {
		return api.Tab{}, err
	}
	return t, nil
}

func (s *Store) UpdateTab(t api.Tab) (api.Tab, error) {
	items, err := load[api.Tab](s, tabsFile)
	if err != nil {
		return api.Tab{}, err
	}
	for i, have := range items {
		if have.ID == t.ID {
			items[i] = t
			if err := save(s, tabsFile, items); err != nil {
				return api.Tab{}, err
			}
			return t, nil
		}
	}
	return api.Tab{}, &api.NotFoundError{Resource: "tab", ID: t.ID}
}

func (s *Store) DeleteTab(id string) error {
	items, err := load[api.Tab](s, tabsFile)
	if err != nil {
		return err
	}
	for i, have := range items {
		if have.ID == id {
			items = append(items[:i], items[i+1:]...)
			return save(s, tabsFile, items)
		}
	}
	return &api.NotFoundError{Resource: "tab", ID: id}
}
