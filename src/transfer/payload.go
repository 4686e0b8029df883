// Package transfer implements the portable bookmark export format and the
// destructive import that applies it. The format is identity-free: group
// references are encoded as positions in the exported groups array rather
// than backend IDs, so a file survives re-import into a backend that
// reassigns identity. An index is only meaningful inside one export file.
package transfer

import (
	"encoding/json"
	"os"
	"time"

	"tabmarks/src/api"
)

// Payload is the top-level export document.
type Payload struct {
	Bookmarks []Bookmark `json:"bookmarks"`
	Groups    []Group    `json:"groups"`
}

// Bookmark is the identity-free export form of api.Bookmark. GroupIDs are
// positions in the payload's Groups slice.
type Bookmark struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	GroupIDs []int  `json:"groupIds,omitempty"`
}

// Group is the identity-free export form of api.Group.
type Group struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Build assembles the export payload from the backend's collections. Each
// bookmark's group references are translated through an ID→index table
// built from groups; references to groups missing from the table are
// dropped.
func Build(bookmarks []api.Bookmark, groups []api.Group) Payload {
	idx := make(map[string]int, len(groups))
	out := Payload{Bookmarks: []Bookmark{}, Groups: []Group{}}
	for i, g := range groups {
		idx[g.ID] = i
		out.Groups = append(out.Groups, Group{Name: g.Name, Color: g.Color})
	}
	for _, b := range bookmarks {
		eb := Bookmark{Name: b.Name, URL: b.URL}
		for _, gid := range b.GroupIDs {
			if i, ok := idx[gid]; ok {
				eb.GroupIDs = append(eb.GroupIDs, i)
			}
		}
		out.Bookmarks = append(out.Bookmarks, eb)
	}
	return out
}

// Filename returns the default export file name for the given date, e.g.
// bookmarks-export-2024-05-01.json.
func Filename(now time.Time) string {
	return "bookmarks-export-" + now.Format("2006-01-02") + ".json"
}

// WriteFile serializes the payload and writes it to path. Serialization
// happens fully before the file is touched, so a marshal failure never
// leaves a partial file behind.
func WriteFile(path string, p Payload) error {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
