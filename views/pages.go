package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/binarytrails/trails/content"
	"github.com/binarytrails/trails/listing"
	"github.com/binarytrails/trails/markdown"
	"github.com/binarytrails/trails/tags"
)

const linkClass = "text-primary-600 hover:text-primary-700 dark:text-primary-500 dark:hover:text-primary-400"

// Home renders the latest posts. The "All Posts" link only appears when the
// batch was truncated.
func Home(site Site, batch listing.DisplayBatch) templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<div class="divide-y divide-gray-200 dark:divide-gray-700"><ul class="divide-y divide-gray-200 dark:divide-gray-700">`)
		if batch.Empty() {
			m.raw(`No posts found.`)
		}
		for _, post := range batch.VisiblePosts {
			if err := m.child(ctx, postSummary(site, post)); err != nil {
				return err
			}
		}
		m.raw(`</ul></div>`)
		if batch.HasMore {
			m.raw(`<div class="flex justify-end text-base leading-6 font-medium"><a href="/posts/" class="`, linkClass,
				` border-primary-600 dark:border-primary-500 inline-flex items-center rounded-md border px-4 py-2 text-base font-medium transition-colors duration-200" aria-label="All posts">All Posts &rarr;</a></div>`)
		}
		return nil
	})
}

func postSummary(site Site, post content.Post) templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<li class="py-12"><article><div class="space-y-2"><div class="space-y-5"><div class="space-y-4"><div>`,
			`<h2 class="text-2xl leading-8 font-bold tracking-tight"><a href="`)
		m.url(post.Link())
		m.raw(`" class="text-gray-900 dark:text-gray-100">`)
		m.text(post.Title)
		m.raw(`</a></h2><div class="mt-2 flex flex-col space-y-2"><span class="text-sm font-medium text-gray-500 dark:text-gray-400">`)
		writeTime(m, post.Date, site.Locale)
		m.raw(`</span><div class="-ml-0 flex flex-wrap">`)
		for _, t := range post.Tags {
			if err := m.child(ctx, Tag(t)); err != nil {
				return err
			}
		}
		m.raw(`</div></div></div><div class="prose max-w-none text-gray-500 dark:text-gray-400">`)
		m.text(post.Summary)
		m.raw(`</div></div><div class="text-base leading-6 font-medium"><a href="`)
		m.url(post.Link())
		m.raw(`" class="`, linkClass, ` inline-flex items-center font-medium" aria-label="`)
		m.text(`Read more: "` + post.Title + `"`)
		m.raw(`">Read more &rarr;</a></div></div></div></article></li>`)
		return nil
	})
}

func writeTime(m *markup, date, locale string) {
	m.raw(`<time datetime="`)
	m.text(date)
	m.raw(`">`)
	m.text(FormatDate(date, locale))
	m.raw(`</time>`)
}

// PostList renders one page of the archive. Pagination links are built
// from basePath: page 1 lives at basePath, page n at basePath+"page/n/".
func PostList(site Site, title string, page listing.Page, basePath string) templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<div class="space-y-2 pt-6 pb-8 md:space-y-5">`)
		if err := m.child(ctx, PageTitle(title)); err != nil {
			return err
		}
		m.raw(`</div><ul class="divide-y divide-gray-200 dark:divide-gray-700">`)
		if len(page.Posts) == 0 {
			m.raw(`No posts found.`)
		}
		for _, post := range page.Posts {
			if err := m.child(ctx, postSummary(site, post)); err != nil {
				return err
			}
		}
		m.raw(`</ul>`)
		if page.Total > 1 {
			m.raw(`<nav class="flex justify-between space-y-2 pt-6 pb-8 md:space-y-5" aria-label="Pagination">`)
			if page.HasPrev() {
				m.raw(`<a rel="prev" class="`, linkClass, `" href="`)
				m.url(pageHref(basePath, page.Number-1))
				m.raw(`">Previous</a>`)
			} else {
				m.raw(`<span class="cursor-auto disabled:opacity-50">Previous</span>`)
			}
			m.raw(`<span>`, strconv.Itoa(page.Number), ` of `, strconv.Itoa(page.Total), `</span>`)
			if page.HasNext() {
				m.raw(`<a rel="next" class="`, linkClass, `" href="`)
				m.url(pageHref(basePath, page.Number+1))
				m.raw(`">Next</a>`)
			} else {
				m.raw(`<span class="cursor-auto disabled:opacity-50">Next</span>`)
			}
			m.raw(`</nav>`)
		}
		return nil
	})
}

func pageHref(basePath string, n int) string {
	if n <= 1 {
		return basePath
	}
	return basePath + "page/" + strconv.Itoa(n) + "/"
}

// PostPage renders a full article.
func PostPage(site Site, post content.Post) templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<article><div class="xl:divide-y xl:divide-gray-200 xl:dark:divide-gray-700">`,
			`<header class="pt-6 xl:pb-6"><div class="space-y-1 text-center"><dl class="space-y-10"><div><dt class="sr-only">Published on</dt>`,
			`<dd class="text-base leading-6 font-medium text-gray-500 dark:text-gray-400">`)
		writeTime(m, post.Date, site.Locale)
		m.raw(`</dd></div></dl><div>`)
		if err := m.child(ctx, PageTitle(post.Title)); err != nil {
			return err
		}
		m.raw(`</div><div class="flex flex-wrap justify-center pt-4">`)
		for _, t := range post.Tags {
			if err := m.child(ctx, Tag(t)); err != nil {
				return err
			}
		}
		m.raw(`</div></div></header><div class="prose dark:prose-invert max-w-none pt-10 pb-8">`)
		if err := m.child(ctx, markdown.Markdown(post.Body)); err != nil {
			return err
		}
		m.raw(`</div><footer class="pt-4 xl:pt-8"><a href="/posts/" class="`, linkClass, `" aria-label="Back to the blog">&larr; Back to the blog</a></footer></div></article>`)
		return nil
	})
}

// TagsPage lists every tag with its post count.
func TagsPage(site Site, index []tags.Tag) templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<div class="flex flex-col items-start justify-start divide-y divide-gray-200 md:mt-24 md:flex-row md:items-center md:justify-center md:space-x-6 md:divide-y-0 dark:divide-gray-700">`,
			`<div class="space-x-2 pt-6 pb-8 md:space-y-5">`)
		if err := m.child(ctx, PageTitle("Tags")); err != nil {
			return err
		}
		m.raw(`</div><div class="flex max-w-lg flex-wrap">`)
		if len(index) == 0 {
			m.raw(`No tags found.`)
		}
		for _, t := range index {
			m.raw(`<div class="mt-2 mr-5 mb-2">`)
			if err := m.child(ctx, Tag(t.Label)); err != nil {
				return err
			}
			m.raw(`<a href="`)
			m.url(t.Link())
			m.raw(`" class="-ml-2 text-sm font-semibold text-gray-600 uppercase dark:text-gray-300" aria-label="`)
			m.text("View posts tagged " + t.Label)
			m.raw(`"> (`, strconv.Itoa(t.Count), `)</a></div>`)
		}
		m.raw(`</div></div>`)
		return nil
	})
}

// TagPage lists the posts carrying one tag.
func TagPage(site Site, tag tags.Tag, posts []content.Post) templ.Component {
	page := listing.Page{Posts: posts, Number: 1, Total: 1}
	return PostList(site, tags.DisplayForm(tag.Label), page, tag.Link())
}

// About renders an author profile with the author's markdown body.
func About(site Site, author content.Author) templ.Component {
	return AuthorLayout(author, AvatarURL(author), markdown.Markdown(author.Body))
}

// AvatarURL is the resized avatar route for author, or "" when the author
// has no avatar.
func AvatarURL(author content.Author) string {
	if author.Avatar == "" || author.Slug == "" {
		return ""
	}
	return "/avatars/" + author.Slug + ".jpg"
}

// NotFound is the body of the 404 page.
func NotFound(site Site) templ.Component {
	return errorPage("404", "Sorry we couldn't find this page.", "But dont worry, you can find plenty of other things on our homepage.")
}

// ServerError is the body of the 5xx page.
func ServerError(site Site) templ.Component {
	return errorPage("500", "Something went wrong on our side.", "Please try again in a moment.")
}

func errorPage(code, headline, detail string) templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<div class="flex flex-col items-start justify-start md:mt-24 md:flex-row md:items-center md:justify-center md:space-x-6">`,
			`<div class="space-x-2 pt-6 pb-8 md:space-y-5"><h1 class="text-6xl leading-9 font-extrabold tracking-tight text-gray-900 md:border-r-2 md:px-6 md:text-8xl md:leading-14 dark:text-gray-100">`)
		m.text(code)
		m.raw(`</h1></div><div class="max-w-md"><p class="mb-4 text-xl leading-normal font-bold md:text-2xl">`)
		m.text(headline)
		m.raw(`</p><p class="mb-8">`)
		m.text(detail)
		m.raw(`</p><a href="/" class="focus:shadow-outline-blue inline rounded-lg border border-transparent bg-blue-600 px-4 py-2 text-sm leading-5 font-medium text-white shadow-xs transition-colors duration-150 hover:bg-blue-700 focus:outline-hidden dark:hover:bg-blue-500">Back to homepage</a></div></div>`)
		return nil
	})
}
