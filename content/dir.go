package content

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DirSource reads markdown files with YAML front matter:
//
//	<Root>/posts/**/*.md    one post per file
//	<Root>/authors/*.md     one author per file, keyed by file name
type DirSource struct {
	Root string
}

// Load walks the content tree and returns posts sorted newest first.
func (d DirSource) Load(ctx context.Context) (*Snapshot, error) {
	var ve ValidationError

	posts, err := d.loadPosts(ctx, &ve)
	if err != nil {
		return nil, err
	}
	authors, err := d.loadAuthors(ctx, &ve)
	if err != nil {
		return nil, err
	}
	if ve.HasAny() {
		return nil, &ve
	}

	SortPosts(posts)
	return &Snapshot{Posts: posts, Authors: authors, LoadedAt: time.Now()}, nil
}

func (d DirSource) loadPosts(ctx context.Context, ve *ValidationError) ([]Post, error) {
	dir := filepath.Join(d.Root, "posts")
	files, err := discoverMarkdown(dir)
	if err != nil {
		return nil, fmt.Errorf("content: discover posts: %w", err)
	}

	seen := make(map[string]string, len(files))
	posts := make([]Post, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", path, err)
		}
		var meta postMeta
		body, err := ParseFrontMatter(raw, &meta)
		if err != nil {
			ve.Add(path, "%v", err)
			continue
		}
		if meta.Draft {
			continue
		}

		slug := strings.TrimSpace(meta.Slug)
		if slug == "" {
			slug = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		title := strings.TrimSpace(meta.Title)
		if title == "" {
			ve.Add(path, "title is required")
		}
		if _, err := ParseDate(meta.Date); err != nil {
			ve.Add(path, "date %q is not a valid timestamp", meta.Date)
		}
		if prev, dup := seen[slug]; dup {
			ve.Add(path, "slug %q already used by %s", slug, prev)
			continue
		}
		seen[slug] = path

		posts = append(posts, Post{
			Slug:    slug,
			Date:    strings.TrimSpace(meta.Date),
			Title:   title,
			Summary: strings.TrimSpace(meta.Summary),
			Tags:    FilterEmpty(meta.Tags),
			Body:    string(body),
		})
	}
	return posts, nil
}

func (d DirSource) loadAuthors(ctx context.Context, ve *ValidationError) (map[string]Author, error) {
	dir := filepath.Join(d.Root, "authors")
	files, err := discoverMarkdown(dir)
	if err != nil {
		return nil, fmt.Errorf("content: discover authors: %w", err)
	}

	authors := make(map[string]Author, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", path, err)
		}
		var meta authorMeta
		body, err := ParseFrontMatter(raw, &meta)
		if err != nil {
			ve.Add(path, "%v", err)
			continue
		}
		if strings.TrimSpace(meta.Name) == "" {
			ve.Add(path, "name is required")
			continue
		}
		slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		authors[slug] = Author{
			Slug:       slug,
			Name:       strings.TrimSpace(meta.Name),
			Avatar:     strings.TrimSpace(meta.Avatar),
			Occupation: meta.Occupation,
			Company:    meta.Company,
			Email:      meta.Email,
			Twitter:    meta.Twitter,
			Bluesky:    meta.Bluesky,
			Linkedin:   meta.Linkedin,
			Github:     meta.Github,
			Body:       string(body),
		}
	}
	return authors, nil
}

// discoverMarkdown lists .md and .markdown files under root. A missing root
// yields no files.
func discoverMarkdown(root string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && os.IsNotExist(err) {
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := strings.ToLower(d.Name())
		if strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".markdown") {
			out = append(out, path)
		}
		return nil
	})
	sort.Strings(out)
	return out, err
}

// SortPosts orders posts newest first; equal dates fall back to slug order
// so the listing is stable across reloads.
func SortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		ti, tj := posts[i].Time(), posts[j].Time()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return posts[i].Slug < posts[j].Slug
	})
}
