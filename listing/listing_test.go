package listing

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/binarytrails/trails/content"
)

// makePosts returns n posts dated one day apart, newest first.
func makePosts(n int) []content.Post {
	posts := make([]content.Post, n)
	for i := range posts {
		posts[i] = content.Post{
			Slug:  fmt.Sprintf("post-%d", i+1),
			Date:  fmt.Sprintf("2024-01-%02d", 28-i),
			Title: fmt.Sprintf("Post %d", i+1),
		}
	}
	return posts
}

func TestSelectDisplayBatchScenarios(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		maxDisplay  int
		wantVisible int
		wantMore    bool
	}{
		{"more than max", 7, 5, 5, true},
		{"fewer than max", 3, 5, 3, false},
		{"empty", 0, 5, 0, false},
		{"exactly max", 5, 5, 5, false},
		{"one over", 6, 5, 5, true},
		{"max of one", 4, 1, 1, true},
	}
	for _, tt := range tests {
		posts := makePosts(tt.total)
		got := SelectDisplayBatch(posts, tt.maxDisplay)
		if len(got.VisiblePosts) != tt.wantVisible {
			t.Errorf("%s: len(VisiblePosts) = %d, want %d", tt.name, len(got.VisiblePosts), tt.wantVisible)
		}
		if got.HasMore != tt.wantMore {
			t.Errorf("%s: HasMore = %v, want %v", tt.name, got.HasMore, tt.wantMore)
		}
		if got.Empty() != (tt.wantVisible == 0) {
			t.Errorf("%s: Empty = %v", tt.name, got.Empty())
		}
	}
}

func TestSelectDisplayBatchProperties(t *testing.T) {
	for total := 0; total <= 12; total++ {
		posts := makePosts(total)
		for maxDisplay := 1; maxDisplay <= 12; maxDisplay++ {
			got := SelectDisplayBatch(posts, maxDisplay)

			want := min(total, maxDisplay)
			if len(got.VisiblePosts) != want {
				t.Fatalf("total=%d max=%d: len = %d, want %d", total, maxDisplay, len(got.VisiblePosts), want)
			}
			if got.HasMore != (total > maxDisplay) {
				t.Fatalf("total=%d max=%d: HasMore = %v", total, maxDisplay, got.HasMore)
			}
			if !reflect.DeepEqual(got.VisiblePosts, posts[:want]) {
				t.Fatalf("total=%d max=%d: VisiblePosts is not the input prefix", total, maxDisplay)
			}
			if again := SelectDisplayBatch(posts, maxDisplay); !reflect.DeepEqual(again, got) {
				t.Fatalf("total=%d max=%d: repeated call differs", total, maxDisplay)
			}
		}
	}
}

func TestSelectDisplayBatchDoesNotReorder(t *testing.T) {
	// Oldest first on purpose: ordering belongs to the content store.
	posts := []content.Post{
		{Slug: "a", Date: "2020-01-01"},
		{Slug: "b", Date: "2024-01-01"},
		{Slug: "c", Date: "2022-01-01"},
	}
	got := SelectDisplayBatch(posts, 2)
	if got.VisiblePosts[0].Slug != "a" || got.VisiblePosts[1].Slug != "b" {
		t.Errorf("VisiblePosts = %v, want input order a, b", got.VisiblePosts)
	}
}

func TestSelectDisplayBatchAppendDoesNotTouchInput(t *testing.T) {
	posts := makePosts(7)
	got := SelectDisplayBatch(posts, 5)
	_ = append(got.VisiblePosts, content.Post{Slug: "intruder"})
	if posts[5].Slug != "post-6" {
		t.Errorf("input mutated through batch: posts[5] = %q", posts[5].Slug)
	}
}

func TestSelectDisplayBatchNonPositiveMax(t *testing.T) {
	tests := []struct {
		total, maxDisplay int
		wantMore          bool
	}{
		{3, 0, true},
		{3, -1, true},
		{0, 0, false},
		{0, -1, false},
		{0, -100, false},
	}
	for _, tt := range tests {
		got := SelectDisplayBatch(makePosts(tt.total), tt.maxDisplay)
		if len(got.VisiblePosts) != 0 || got.HasMore != tt.wantMore {
			t.Errorf("total=%d max=%d: got %d visible, HasMore=%v, want 0 visible, HasMore=%v",
				tt.total, tt.maxDisplay, len(got.VisiblePosts), got.HasMore, tt.wantMore)
		}
	}
}

func TestPaginate(t *testing.T) {
	posts := makePosts(23)
	tests := []struct {
		number    int
		wantOK    bool
		wantLen   int
		wantFirst string
		prev      bool
		next      bool
	}{
		{1, true, 10, "post-1", false, true},
		{2, true, 10, "post-11", true, true},
		{3, true, 3, "post-21", true, false},
		{4, false, 0, "", false, false},
		{0, false, 0, "", false, false},
	}
	for _, tt := range tests {
		page, ok := Paginate(posts, 10, tt.number)
		if ok != tt.wantOK {
			t.Errorf("page %d: ok = %v, want %v", tt.number, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if len(page.Posts) != tt.wantLen || page.Posts[0].Slug != tt.wantFirst {
			t.Errorf("page %d: got %d posts starting %q", tt.number, len(page.Posts), page.Posts[0].Slug)
		}
		if page.Total != 3 {
			t.Errorf("page %d: Total = %d, want 3", tt.number, page.Total)
		}
		if page.HasPrev() != tt.prev || page.HasNext() != tt.next {
			t.Errorf("page %d: prev/next = %v/%v", tt.number, page.HasPrev(), page.HasNext())
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	page, ok := Paginate(nil, 10, 1)
	if !ok || page.Total != 1 || len(page.Posts) != 0 {
		t.Errorf("Paginate(nil) = %+v, %v", page, ok)
	}
	if _, ok := Paginate(nil, 10, 2); ok {
		t.Error("page 2 of nothing should not exist")
	}
}
