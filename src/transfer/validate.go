package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Validate checks an arbitrary JSON document against the export format and
// stages it as a Payload. It fails fast: the first violation aborts with a
// single error naming the offending field or index. Group references are
// cleaned rather than validated — entries that don't parse as non-negative
// indices are silently dropped.
func Validate(raw []byte) (Payload, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Payload{}, fmt.Errorf("not valid JSON: %v", err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return Payload{}, errors.New("import file must be a JSON object")
	}
	rawGroups, ok := obj["groups"].([]any)
	if !ok {
		return Payload{}, errors.New(`"groups" must be an array`)
	}
	rawBookmarks, ok := obj["bookmarks"].([]any)
	if !ok {
		return Payload{}, errors.New(`"bookmarks" must be an array`)
	}

	p := Payload{
		Bookmarks: make([]Bookmark, 0, len(rawBookmarks)),
		Groups:    make([]Group, 0, len(rawGroups)),
	}
	for i, v := range rawGroups {
		m, ok := v.(map[string]any)
		if !ok {
			return Payload{}, fmt.Errorf("groups[%d]: not an object", i)
		}
		name, _ := m["name"].(string)
		if name == "" {
			return Payload{}, fmt.Errorf("groups[%d]: missing name", i)
		}
		color, _ := m["color"].(string)
		if color == "" {
			return Payload{}, fmt.Errorf("groups[%d]: missing color", i)
		}
		p.Groups = append(p.Groups, Group{Name: name, Color: color})
	}
	for i, v := range rawBookmarks {
		m, ok := v.(map[string]any)
		if !ok {
			return Payload{}, fmt.Errorf("bookmarks[%d]: not an object", i)
		}
		name, _ := m["name"].(string)
		if name == "" {
			return Payload{}, fmt.Errorf("bookmarks[%d]: missing name", i)
		}
		url, _ := m["url"].(string)
		if url == "" {
			return Payload{}, fmt.Errorf("bookmarks[%d]: missing url", i)
		}
		eb := Bookmark{Name: name, URL: url}
		if ids, ok := m["groupIds"].([]any); ok {
			eb.GroupIDs = cleanGroupIndices(ids)
		}
		p.Bookmarks = append(p.Bookmarks, eb)
	}
	return p, nil
}

// cleanGroupIndices keeps valid non-negative indices and drops everything
// else. Numbers are the current format; numeric strings are accepted for
// files written by older exports. Fractions truncate toward zero.
func cleanGroupIndices(raw []any) []int {
	var out []int
	for _, v := range raw {
		switch n := v.(type) {
		case float64:
			if math.IsNaN(n) || n < 0 {
				continue
			}
			out = append(out, int(n))
		case string:
			f, err := strconv.ParseFloat(n, 64)
			if err != nil || math.IsNaN(f) || f < 0 {
				continue
			}
			out = append(out, int(f))
		}
	}
	return out
}
