package tags

import (
	"sort"

	"github.com/binarytrails/trails/content"
)

// Tag is one entry of the tag index.
type Tag struct {
	Slug  string
	Label string // first label seen for this slug
	Count int    // posts carrying the tag
}

// Link returns the site path of the tag page.
func (t Tag) Link() string {
	return "/tags/" + t.Slug + "/"
}

// BuildIndex groups the tags of posts by slug. A post counts once per slug
// even if it lists several labels that share it. Entries are ordered by
// count descending, then slug.
func BuildIndex(posts []content.Post) []Tag {
	bySlug := make(map[string]*Tag)
	for _, p := range posts {
		seen := make(map[string]struct{}, len(p.Tags))
		for _, label := range p.Tags {
			slug := Slugify(label)
			if slug == "" {
				continue
			}
			if _, dup := seen[slug]; dup {
				continue
			}
			seen[slug] = struct{}{}
			t, ok := bySlug[slug]
			if !ok {
				t = &Tag{Slug: slug, Label: label}
				bySlug[slug] = t
			}
			t.Count++
		}
	}

	out := make([]Tag, 0, len(bySlug))
	for _, t := range bySlug {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}

// Lookup returns the index entry for slug.
func Lookup(index []Tag, slug string) (Tag, bool) {
	for _, t := range index {
		if t.Slug == slug {
			return t, true
		}
	}
	return Tag{}, false
}

// Filter returns the posts carrying a tag whose slug is slug, in input
// order.
func Filter(posts []content.Post, slug string) []content.Post {
	var out []content.Post
	for _, p := range posts {
		for _, label := range p.Tags {
			if Slugify(label) == slug {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Collisions reports slugs claimed by labels with different canonical forms,
// e.g. "C++" and "C". Each value lists the distinct canonical labels in
// first-seen order.
func Collisions(posts []content.Post) map[string][]string {
	labels := make(map[string][]string)
	for _, p := range posts {
		for _, label := range p.Tags {
			slug := Slugify(label)
			if slug == "" {
				continue
			}
			canon := Canonical(label)
			known := false
			for _, l := range labels[slug] {
				if l == canon {
					known = true
					break
				}
			}
			if !known {
				labels[slug] = append(labels[slug], canon)
			}
		}
	}
	out := make(map[string][]string)
	for slug, ls := range labels {
		if len(ls) > 1 {
			out[slug] = ls
		}
	}
	return out
}
