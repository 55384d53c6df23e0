package content

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteSource reads published posts from a blog database posts table:
//
//	posts(slug, title, date, tags, summary, content, published)
//
// with tags stored comma-delimited and fenced (",go,web,"). The database is
// opened query-only; this site never writes to it.
type SQLiteSource struct {
	Path string
}

// Load returns every published row ordered by date descending.
func (s SQLiteSource) Load(ctx context.Context) (*Snapshot, error) {
	db, err := openReadOnly(s.Path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT slug, title, date, tags, summary, content FROM posts WHERE published = 1 ORDER BY date DESC, slug ASC`)
	if err != nil {
		return nil, fmt.Errorf("content: query posts: %w", err)
	}
	defer rows.Close()

	var ve ValidationError
	var posts []Post
	for rows.Next() {
		var slug, title, date, tags, summary, body string
		if err := rows.Scan(&slug, &title, &date, &tags, &summary, &body); err != nil {
			return nil, fmt.Errorf("content: scan post: %w", err)
		}
		if strings.TrimSpace(slug) == "" {
			ve.Add("posts", "row with title %q has an empty slug", title)
			continue
		}
		if _, err := ParseDate(date); err != nil {
			ve.Add("posts/"+slug, "date %q is not a valid timestamp", date)
		}
		posts = append(posts, Post{
			Slug:    slug,
			Date:    date,
			Title:   title,
			Summary: summary,
			Tags:    ParseTags(tags),
			Body:    body,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("content: read posts: %w", err)
	}
	if ve.HasAny() {
		return nil, &ve
	}
	// Dates are text, so ORDER BY only approximates chronology.
	SortPosts(posts)
	return &Snapshot{Posts: posts, Authors: map[string]Author{}, LoadedAt: time.Now()}, nil
}

func openReadOnly(path string) (*sql.DB, error) {
	dsn := "file:" + path + "?_pragma=query_only(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("content: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(2)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("content: open %s: %w", path, err)
	}
	return db, nil
}

// ParseTags splits a fenced tag string (e.g. ",go,web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	return FilterEmpty(strings.Split(tagString, ","))
}
