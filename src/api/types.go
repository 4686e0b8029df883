package api

import "time"

// Bookmark is a single saved link. Group membership is by group ID; the
// optional Positions map carries the bookmark's ordering index within each
// group it belongs to.
type Bookmark struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	URL       string         `json:"url"`
	TabIDs    []string       `json:"tabIds,omitempty"`
	GroupIDs  []string       `json:"groupIds,omitempty"`
	Positions map[string]int `json:"positions,omitempty"`
	CreatedAt time.Time      `json:"createdAt,omitempty"`
	UpdatedAt time.Time      `json:"updatedAt,omitempty"`
}

// Group is a named, color-coded bookmark category scoped to one tab.
type Group struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	TabID    string `json:"tabId,omitempty"`
	Position int    `json:"position,omitempty"`
}

// Tab is a top-level workspace partition scoping visible bookmarks and
// groups.
type Tab struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Client is a narrow interface over the bookmarks backend used by the CLI.
// Keep it small and focused on what we actually need so it stays mockable.
type Client interface {
	// Bookmarks
	ListBookmarks() ([]Bookmark, error)
	CreateBookmark(b Bookmark) (Bookmark, error)
	UpdateBookmark(b Bookmark) (Bookmark, error)
	DeleteBookmark(id string) error

	// Groups
	ListGroups() ([]Group, error)
	CreateGroup(g Group) (Group, error)
	UpdateGroup(g Group) (Group, error)
	DeleteGroup(id string) error

	// Tabs
	ListTabs() ([]Tab, error)
	CreateTab(t Tab) (Tab, error)
	UpdateTab(t Tab) (Tab, error)
	DeleteTab(id string) error
}

// NotFoundError reports a record that no backend implementation could find.
type NotFoundError struct{ Resource, ID string }

func (e *NotFoundError) Error() string { return e.Resource + " not found: " + e.ID }

// ConflictError reports a record that already exists.
type ConflictError struct{ Resource, Name string }

func (e *ConflictError) Error() string { return e.Resource + " conflict: " + e.Name }
