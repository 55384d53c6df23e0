// Package listing decides which posts a list page renders.
package listing

import "github.com/binarytrails/trails/content"

// DefaultMaxDisplay is the number of posts shown on the home page.
const DefaultMaxDisplay = 5

// DisplayBatch is the bounded set of posts one page renders.
type DisplayBatch struct {
	VisiblePosts []content.Post
	HasMore      bool // more posts exist beyond VisiblePosts
}

// Empty reports whether there is nothing to render.
func (b DisplayBatch) Empty() bool {
	return len(b.VisiblePosts) == 0
}

// SelectDisplayBatch returns the first min(len(posts), maxDisplay) posts in
// their given order; it never sorts. HasMore is true iff posts remain beyond
// the batch. A non-positive maxDisplay selects nothing.
func SelectDisplayBatch(posts []content.Post, maxDisplay int) DisplayBatch {
	n := min(len(posts), max(maxDisplay, 0))
	return DisplayBatch{
		VisiblePosts: posts[:n:n],
		HasMore:      len(posts) > n,
	}
}

// Page is one page of a paginated post list.
type Page struct {
	Posts  []content.Post
	Number int // 1-based
	Total  int // at least 1
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.Total }

// Paginate returns page number of posts split into pages of perPage. The
// first page always exists, even for no posts; any other out-of-range
// number reports false.
func Paginate(posts []content.Post, perPage, number int) (Page, bool) {
	if perPage < 1 {
		perPage = 1
	}
	total := max((len(posts)+perPage-1)/perPage, 1)
	if number < 1 || number > total {
		return Page{}, false
	}
	start := (number - 1) * perPage
	end := min(start+perPage, len(posts))
	return Page{
		Posts:  posts[start:end:end],
		Number: number,
		Total:  total,
	}, true
}
