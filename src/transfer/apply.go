package transfer

import (
	"fmt"

	"go.uber.org/zap"

	"tabmarks/src/api"
)

// Result summarizes a destructive import.
type Result struct {
	BookmarksDeleted int
	GroupsDeleted    int
	GroupsCreated    int
	BookmarksCreated int
	Failed           int
}

// Apply replaces the backend's bookmarks and groups with the payload's
// contents. The sequence is deliberately not transactional: it deletes all
// existing bookmarks, deletes all existing groups, recreates the imported
// groups in order (recording original positional index against the ID the
// backend assigns), then recreates the imported bookmarks with their group
// references translated through that mapping. Indices with no surviving
// group are dropped. Individual delete/create failures are logged and
// skipped, so a partially migrated result is possible and reported through
// Result.Failed. Only the final refetch is fatal.
func Apply(client api.Client, p Payload, tabID string, log *zap.Logger) (Result, error) {
	var res Result

	existingBookmarks, err := client.ListBookmarks()
	if err != nil {
		return res, fmt.Errorf("list bookmarks: %w", err)
	}
	for _, b := range existingBookmarks {
		if err := client.DeleteBookmark(b.ID); err != nil {
			log.Warn("delete bookmark failed, continuing",
				zap.String("id", b.ID), zap.Error(err))
			res.Failed++
			continue
		}
		res.BookmarksDeleted++
	}

	existingGroups, err := client.ListGroups()
	if err != nil {
		return res, fmt.Errorf("list groups: %w", err)
	}
	for _, g := range existingGroups {
		if err := client.DeleteGroup(g.ID); err != nil {
			log.Warn("delete group failed, continuing",
				zap.String("id", g.ID), zap.Error(err))
			res.Failed++
			continue
		}
		res.GroupsDeleted++
	}

	// Positional index in the payload -> ID assigned by the backend.
	newID := make(map[int]string, len(p.Groups))
	for i, g := range p.Groups {
		created, err := client.CreateGroup(api.Group{
			Name:     g.Name,
			Color:    g.Color,
			TabID:    tabID,
			Position: i,
		})
		if err != nil {
			log.Warn("create group failed, continuing",
				zap.String("name", g.Name), zap.Error(err))
			res.Failed++
			continue
		}
		newID[i] = created.ID
		res.GroupsCreated++
	}

	for _, b := range p.Bookmarks {
		nb := api.Bookmark{Name: b.Name, URL: b.URL}
		if tabID != "" {
			nb.TabIDs = []string{tabID}
		}
		for _, gi := range b.GroupIDs {
			if id, ok := newID[gi]; ok {
				nb.GroupIDs = append(nb.GroupIDs, id)
			}
		}
		if _, err := client.CreateBookmark(nb); err != nil {
			log.Warn("create bookmark failed, continuing",
				zap.String("name", b.Name), zap.Error(err))
			res.Failed++
			continue
		}
		res.BookmarksCreated++
	}

	// Resynchronize with the backend; a failure here is the one fatal path.
	if _, err := client.ListBookmarks(); err != nil {
		return res, fmt.Errorf("refetch bookmarks: %w", err)
	}
	if _, err := client.ListGroups(); err != nil {
		return res, fmt.Errorf("refetch groups: %w", err)
	}
	return res, nil
}
