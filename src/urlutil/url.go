package urlutil

import (
	"fmt"
	"net/url"
	"strings"
)

// Normalize validates a user-supplied bookmark URL and returns its
// canonical form. Scheme-less input like "example.com" gets an https://
// prefix; input that already carries a scheme is kept as-is. Inputs that
// cannot parse into a URL with both scheme and host are rejected.
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("url must not be empty")
	}
	if strings.HasPrefix(s, "://") {
		return "", fmt.Errorf("invalid url %q: missing scheme", raw)
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %v", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid url %q: missing scheme or host", raw)
	}
	return u.String(), nil
}
