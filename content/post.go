// Package content supplies the posts and author profiles the site renders.
//
// Content comes from a Source (a markdown directory, a read-only SQLite
// posts table, or an in-memory set) and is held by a Library as an
// immutable Snapshot that is swapped wholesale on reload.
package content

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a requested post or author does not exist.
var ErrNotFound = errors.New("content: not found")

// Post is one published article.
type Post struct {
	Slug    string
	Date    string // ISO-8601, as written in the source
	Title   string
	Summary string
	Tags    []string
	Body    string // markdown
	Draft   bool
}

// Link returns the site path of the post.
func (p Post) Link() string {
	return "/posts/" + p.Slug + "/"
}

// Time returns the parsed publication date, or the zero time.
func (p Post) Time() time.Time {
	t, _ := ParseDate(p.Date)
	return t
}

// Author is a profile rendered on the about page.
type Author struct {
	Slug       string
	Name       string
	Avatar     string
	Occupation string
	Company    string
	Email      string
	Twitter    string
	Bluesky    string
	Linkedin   string
	Github     string
	Body       string
}

// Snapshot is one consistent view of the content store.
type Snapshot struct {
	Posts    []Post
	Authors  map[string]Author
	LoadedAt time.Time
}

var dateLayouts = []string{
	time.RFC3339,
	time.DateOnly,
	"2006-01-02 15:04",
	time.DateTime,
}

// ParseDate parses the date formats accepted in front matter and the
// posts table.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FilterEmpty trims every value and drops the blank ones.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
