package content

import (
	"context"
	"time"
)

// Static is a Source over content held in memory. Posts are served in the
// order given.
type Static struct {
	Posts   []Post
	Authors []Author
}

func (s Static) Load(ctx context.Context) (*Snapshot, error) {
	authors := make(map[string]Author, len(s.Authors))
	for _, a := range s.Authors {
		authors[a.Slug] = a
	}
	posts := make([]Post, len(s.Posts))
	copy(posts, s.Posts)
	return &Snapshot{Posts: posts, Authors: authors, LoadedAt: time.Now()}, nil
}
