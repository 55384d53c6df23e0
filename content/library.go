package content

import (
	"context"
	"sort"
	"sync/atomic"
)

// Source loads a full snapshot of the content store.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Library serves the most recent successfully loaded snapshot. Readers never
// block; Reload swaps in a new snapshot only when loading succeeds.
type Library struct {
	src  Source
	cur  atomic.Pointer[Snapshot]
	hook func(*Snapshot, error)
}

// NewLibrary creates an empty Library backed by src. Call Reload before
// serving.
func NewLibrary(src Source) *Library {
	return &Library{src: src}
}

// OnReload registers fn to be called after every reload attempt with the new
// snapshot or the load error.
func (l *Library) OnReload(fn func(*Snapshot, error)) {
	l.hook = fn
}

// Reload loads the source and, on success, replaces the current snapshot.
func (l *Library) Reload(ctx context.Context) error {
	snap, err := l.src.Load(ctx)
	if err == nil {
		l.cur.Store(snap)
	}
	if l.hook != nil {
		l.hook(snap, err)
	}
	return err
}

// Loaded reports whether a snapshot is available.
func (l *Library) Loaded() bool {
	return l.cur.Load() != nil
}

func (l *Library) snapshot() *Snapshot {
	if s := l.cur.Load(); s != nil {
		return s
	}
	return &Snapshot{}
}

// Posts returns the published posts, newest first. The slice is shared and
// must not be modified.
func (l *Library) Posts() []Post {
	return l.snapshot().Posts
}

// Post returns a single post by slug.
func (l *Library) Post(slug string) (Post, error) {
	for _, p := range l.snapshot().Posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

// Author returns the author profile stored under slug.
func (l *Library) Author(slug string) (Author, error) {
	a, ok := l.snapshot().Authors[slug]
	if !ok {
		return Author{}, ErrNotFound
	}
	return a, nil
}

// Authors returns every author sorted by slug.
func (l *Library) Authors() []Author {
	m := l.snapshot().Authors
	out := make([]Author, 0, len(m))
	for _, a := range m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}
