package api

import (
	"fmt"
	"sort"
	"time"
)

// Fake is an in-memory Client implementation for unit tests.
type Fake struct {
	BookmarksMap map[string]Bookmark
	GroupsMap    map[string]Group
	TabsMap      map[string]Tab

	nextID int
}

func NewFake() *Fake {
	return &Fake{
		BookmarksMap: map[string]Bookmark{},
		GroupsMap:    map[string]Group{},
		TabsMap:      map[string]Tab{},
	}
}

func (f *Fake) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%04d", prefix, f.nextID)
}

func (f *Fake) ListBookmarks() ([]Bookmark, error) {
	out := make([]Bookmark, 0, len(f.BookmarksMap))
	for _, b := range f.BookmarksMap {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *Fake) CreateBookmark(b Bookmark) (Bookmark, error) {
	if b.ID == "" {
		b.ID = f.newID("bm")
	} else if _, ok := f.BookmarksMap[b.ID]; ok {
		return Bookmark{}, &ConflictError{Resource: "bookmark", Name: b.ID}
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	f.BookmarksMap[b.ID] = b
	return b, nil
}

func (f *Fake) UpdateBookmark(b Bookmark) (Bookmark, error) {
	old, ok := f.BookmarksMap[b.ID]
	if !ok {
		return Bookmark{}, &NotFoundError{Resource: "bookmark", ID: b.ID}
	}
	b.CreatedAt = old.CreatedAt
	b.UpdatedAt = time.Now().UTC()
	f.BookmarksMap[b.ID] = b
	return b, nil
}

func (f *Fake) DeleteBookmark(id string) error {
	if _, ok := f.BookmarksMap[id]; !ok {
		return &NotFoundError{Resource: "bookmark", ID: id}
	}
	delete(f.BookmarksMap, id)
	return nil
}

func (f *Fake) ListGroups() ([]Group, error) {
	out := make([]Group, 0, len(f.GroupsMap))
	for _, g := range f.GroupsMap {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *Fake) CreateGroup(g Group) (Group, error) {
	if g.ID == "" {
		g.ID = f.newID("grp")
	} else if _, ok := f.GroupsMap[g.ID]; ok {
		return Group{}, &ConflictError{Resource: "group", Name: g.ID}
	}
	f.GroupsMap[g.ID] = g
	return g, nil
}

func (f *Fake) UpdateGroup(g Group) (Group, error) {
	if _, ok := f.GroupsMap[g.ID]; !ok {
		return Group{}, &NotFoundError{Resource: "group", ID: g.ID}
	}
	f.GroupsMap[g.ID] = g
	return g, nil
}

func (f *Fake) DeleteGroup(id string) error {
	if _, ok := f.GroupsMap[id]; !ok {
		return &NotFoundError{Resource: "group", ID: id}
	}
	delete(f.GroupsMap, id)
	return nil
}

func (f *Fake) ListTabs() ([]Tab, error) {
	out := make([]Tab, 0, len(f.TabsMap))
	for _, t := range f.TabsMap {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *Fake) CreateTab(t Tab) (Tab, error) {
	if t.ID == "" {
		t.ID = f.newID("tab")
	} else if _, ok := f.TabsMap[t.ID]; ok {
		return Tab{}, &ConflictError{Resource: "tab", Name: t.ID}
	}
	f.TabsMap[t.ID] = t
	return t, nil
}

func (f *Fake) UpdateTab(t Tab) (Tab, error) {
	if _, ok := f.TabsMap[t.ID]; !ok {
		return Tab{}, &NotFoundError{Resource: "tab", ID: t.ID}
	}
	f.TabsMap[t.ID] = t
	return t, nil
}

func (f *Fake) DeleteTab(id string) error {
	if _, ok := f.TabsMap[id]; !ok {
		return &NotFoundError{Resource: "tab", ID: id}
	}
	delete(f.TabsMap, id)
	return nil
}
