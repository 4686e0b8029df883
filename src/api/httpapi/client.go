// Package httpapi implements api.Client against the bookmarks backend's
// JSON REST API: GET/POST/PUT/DELETE on /bookmarks, /groups, and /tabs.
package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tabmarks/src/api"
)

// Client talks to a bookmarks backend over HTTP.
type Client struct {
	base string
	hc   *http.Client
}

// New returns a Client for the given base URL, e.g. "http://localhost:3000".
func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// do runs one request. in (when non-nil) is marshaled as the JSON body;
// out (when non-nil) receives the decoded JSON response. Non-2xx responses
// become errors carrying the status text; 404 maps to api.NotFoundError.
func (c *Client) do(method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		resource, id, _ := strings.Cut(strings.Trim(path, "/"), "/")
		return &api.NotFoundError{Resource: strings.TrimSuffix(resource, "s"), ID: id}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) ListBookmarks() ([]api.Bookmark, error) {
	var out []api.Bookmark
	if err := c.do(http.MethodGet, "/bookmarks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBookmark(b api.Bookmark) (api.Bookmark, error) {
	var out api.Bookmark
	if err := c.do(http.MethodPost, "/bookmarks", b, &out); err != nil {
		return api.Bookmark{}, err
	}
	return out, nil
}

func (c *Client) UpdateBookmark(b api.Bookmark) (api.Bookmark, error) {
	var out api.Bookmark
	if err := c.do(http.MethodPut, "/bookmarks/"+b.ID, b, &out); err != nil {
		return api.Bookmark{}, err
	}
	return out, nil
}

func (c *Client) DeleteBookmark(id string) error {
	return c.do(http.MethodDelete, "/bookmarks/"+id, nil, nil)
}

func (c *Client) ListGroups() ([]api.Group, error) {
	var out []api.Group
	if err := c.do(http.MethodGet, "/groups", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateGroup(g api.Group) (api.Group, error) {
	var out api.Group
	if err := c.do(http.MethodPost, "/groups", g, &out); err != nil {
		return api.Group{}, err
	}
	return out, nil
}

func (c *Client) UpdateGroup(g api.Group) (api.Group, error) {
	var out api.Group
	if err := c.do(http.MethodPut, "/groups/"+g.ID, g, &out); err != nil {
		return api.Group{}, err
	}
	return out, nil
}

func (c *Client) DeleteGroup(id string) error {
	return c.do(http.MethodDelete, "/groups/"+id, nil, nil)
}

func (c *Client) ListTabs() ([]api.Tab, error) {
	var out []api.Tab
	if err := c.do(http.MethodGet, "/tabs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTab(t api.Tab) (api.Tab, error) {
	var out api.Tab
	if err := c.do(http.MethodPost, "/tabs", t, &out); err != nil {
		return api.Tab{}, err
	}
	return out, nil
}

func (c *Client) UpdateTab(t api.Tab) (api.Tab, error) {
	var out api.Tab
	if err := c.do(http.MethodPut, "/tabs/"+t.ID, t, &out); err != nil {
		return api.Tab{}, err
	}
	return out, nil
}

func (c *Client) DeleteTab(id string) error {
	return c.do(http.MethodDelete, "/tabs/"+id, nil, nil)
}
