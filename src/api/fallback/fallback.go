// Package fallback decorates a remote api.Client with a local substitute.
// Every operation tries the remote first; on any failure it logs a warning
// and serves the same logical operation from the local store instead, so a
// dead backend never fails a command. The cost is silent divergence between
// local and server state; the warning log is the only trace of it.
package fallback

import (
	"go.uber.org/zap"

	"tabmarks/src/api"
)

// Client implements api.Client over a remote/local pair.
type Client struct {
	remote api.Client
	local  api.Client
	log    *zap.Logger
}

// Wrap returns a Client that prefers remote and falls back to local.
func Wrap(remote, local api.Client, log *zap.Logger) *Client {
	return &Client{remote: remote, local: local, log: log}
}

func (c *Client) warn(op string, err error) {
	c.log.Warn("backend call failed, falling back to local store",
		zap.String("op", op), zap.Error(err))
}

func (c *Client) ListBookmarks() ([]api.Bookmark, error) {
	out, err := c.remote.ListBookmarks()
	if err == nil {
		return out, nil
	}
	c.warn("list bookmarks", err)
	return c.local.ListBookmarks()
}

func (c *Client) CreateBookmark(b api.Bookmark) (api.Bookmark, error) {
	out, err := c.remote.CreateBookmark(b)
	if err == nil {
		return out, nil
	}
	c.warn("create bookmark", err)
	return c.local.CreateBookmark(b)
}

func (c *Client) UpdateBookmark(b api.Bookmark) (api.Bookmark, error) {
	out, err := c.remote.UpdateBookmark(b)
	if err == nil {
		return out, nil
	}
	c.warn("update bookmark", err)
	return c.local.UpdateBookmark(b)
}

func (c *Client) DeleteBookmark(id string) error {
	if err := c.remote.DeleteBookmark(id); err != nil {
		c.warn("delete bookmark", err)
		return c.local.DeleteBookmark(id)
	}
	return nil
}

func (c *Client) ListGroups() ([]api.Group, error) {
	out, err := c.remote.ListGroups()
	if err == nil {
		return out, nil
	}
	c.warn("list groups", err)
	return c.local.ListGroups()
}

func (c *Client) CreateGroup(g api.Group) (api.Group, error) {
	out, err := c.remote.CreateGroup(g)
	if err == nil {
		return out, nil
	}
	c.warn("create group", err)
	return c.local.CreateGroup(g)
}

func (c *Client) UpdateGroup(g api.Group) (api.Group, error) {
	out, err := c.remote.UpdateGroup(g)
	if err == nil {
		return out, nil
	}
	c.warn("update group", err)
	return c.local.UpdateGroup(g)
}

func (c *Client) DeleteGroup(id string) error {
	if err := c.remote.DeleteGroup(id); err != nil {
		c.warn("delete group", err)
		return c.local.DeleteGroup(id)
	}
	return nil
}

func (c *Client) ListTabs() ([]api.Tab, error) {
	out, err := c.remote.ListTabs()
	if err == nil {
		return out, nil
	}
	c.warn("list tabs", err)
	return c.local.ListTabs()
}

func (c *Client) CreateTab(t api.Tab) (api.Tab, error) {
	out, err := c.remote.CreateTab(t)
	if err == nil {
		return out, nil
	}
	c.warn("create tab", err)
	return c.local.CreateTab(t)
}

func (c *Client) UpdateTab(t api.Tab) (api.Tab, error) {
	out, err := c.remote.UpdateTab(t)
	if err == nil {
		return out, nil
	}
	c.warn("update tab", err)
	return c.local.UpdateTab(t)
}

func (c *Client) DeleteTab(id string) error {
	if err := c.remote.DeleteTab(id); err != nil {
		c.warn("delete tab", err)
		return c.local.DeleteTab(id)
	}
	return nil
}
