package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/binarytrails/trails/tags"
)

// Layout wraps body in the document shell: head metadata, header, footer.
func Layout(site Site, meta PageMeta, body templ.Component) templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		title := site.Title
		if meta.Title != "" && meta.Title != site.Title {
			title = meta.Title + " | " + site.Title
		}
		description := meta.Description
		if description == "" {
			description = site.Description
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}
		canonical := BuildURL(site.URL, meta.Path)
		if meta.Path == "" || meta.Path == "/" {
			canonical = BuildURL(site.URL)
		}
		lang := site.Locale
		if lang == "" {
			lang = "en-US"
		}

		m.raw(`<!DOCTYPE html><html lang="`)
		m.text(lang)
		m.raw(`" class="scroll-smooth"><head><meta charset="utf-8"/>`,
			`<meta name="viewport" content="width=device-width, initial-scale=1"/><title>`)
		m.text(title)
		m.raw(`</title><meta name="description" content="`)
		m.text(description)
		m.raw(`"/><link rel="canonical" href="`)
		m.url(canonical)
		m.raw(`"/><meta property="og:title" content="`)
		m.text(title)
		m.raw(`"/><meta property="og:description" content="`)
		m.text(description)
		m.raw(`"/><meta property="og:url" content="`)
		m.url(canonical)
		m.raw(`"/><meta property="og:type" content="`)
		m.text(ogType)
		m.raw(`"/><meta property="og:site_name" content="`)
		m.text(site.Title)
		m.raw(`"/><link rel="alternate" type="application/rss+xml" title="`)
		m.text(site.Title)
		m.raw(`" href="/feed.xml"/>`,
			`<link rel="icon" type="image/svg+xml" href="/static/logo.svg"/>`,
			`<link rel="stylesheet" href="/static/css/tailwind.css"/>`,
			`<link rel="stylesheet" href="/theme.css"/>`)
		jsonLD := meta.JSONLD
		if jsonLD == "" {
			jsonLD = WebsiteJsonLD(site)
		}
		m.raw(`<script type="application/ld+json">`, jsonLD, `</script>`)
		m.raw(`</head><body class="bg-white pl-[calc(100vw-100%)] text-black antialiased dark:bg-gray-950 dark:text-white">`,
			`<section class="mx-auto max-w-3xl px-4 sm:px-6 xl:max-w-5xl xl:px-0"><div class="flex h-screen flex-col justify-between font-sans">`)
		if err := m.child(ctx, Header(site)); err != nil {
			return err
		}
		m.raw(`<main class="mb-auto">`)
		if err := m.child(ctx, body); err != nil {
			return err
		}
		m.raw(`</main>`)
		if err := m.child(ctx, Footer(site)); err != nil {
			return err
		}
		m.raw(`</div></section></body></html>`)
		return nil
	})
}

// Header renders the logo, the site title and the navigation links other
// than the home link.
func Header(site Site) templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		headerTitle := site.HeaderTitle
		if headerTitle == "" {
			headerTitle = site.Title
		}
		m.raw(`<header class="`)
		m.text(headerClass(site.StickyNav))
		m.raw(`"><a href="/" aria-label="`)
		m.text(headerTitle)
		m.raw(`"><div class="flex items-center justify-between"><div class="mr-3">`,
			`<img src="/static/logo.svg" alt="" width="40" height="40"/></div>`,
			`<div class="font-space-grotesk text-primary-700 dark:text-primary-400 h-6 text-xl font-bold tracking-tight sm:h-8 sm:text-2xl md:text-3xl">`)
		m.text(headerTitle)
		m.raw(`</div></div></a>`,
			`<div class="flex items-center space-x-4 leading-5 sm:-mr-6 sm:space-x-6">`,
			`<nav class="no-scrollbar hidden max-w-40 items-center gap-x-4 overflow-x-auto sm:flex md:max-w-72 lg:max-w-96">`)
		for _, link := range VisibleNavLinks(site.NavLinks) {
			m.raw(`<a href="`)
			m.url(link.Href)
			m.raw(`" class="group relative m-1 px-3 py-1 font-medium text-gray-700 dark:text-gray-200">`,
				`<span class="group-hover:text-primary-600 dark:group-hover:text-primary-400 relative z-10 transition-colors duration-200">`)
			m.text(link.Title)
			m.raw(`</span><span class="bg-primary-600 dark:bg-primary-400 absolute bottom-0 left-0 h-0.5 w-0 transition-all duration-300 group-hover:w-full"></span></a>`)
		}
		m.raw(`</nav></div></header>`)
		return nil
	})
}

// Footer renders social links, the author, the copyright year and the
// site title.
func Footer(site Site) templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<footer class="border-t border-gray-200 dark:border-gray-700"><div class="mt-8 flex flex-col items-center">`,
			`<div class="mb-4 flex space-x-4">`)
		if err := m.child(ctx, SocialIcon("github", site.Github, 6)); err != nil {
			return err
		}
		if err := m.child(ctx, SocialIcon("linkedin", site.Linkedin, 6)); err != nil {
			return err
		}
		m.raw(`</div><div class="mb-2 flex space-x-2 text-sm text-gray-500 dark:text-gray-400"><div>`)
		m.text(site.Author)
		m.raw(`</div><div> • </div><div>© `, strconv.Itoa(site.Year), `</div><div> • </div><a href="/">`)
		m.text(site.Title)
		m.raw(`</a></div><div class="mb-8 text-sm text-gray-500 dark:text-gray-400"><a href="/">`)
		m.text(site.Title)
		m.raw(`</a></div></div></footer>`)
		return nil
	})
}

// PageTitle renders the page heading.
func PageTitle(title string) templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<h1 class="text-3xl font-bold leading-9 tracking-tight text-blue-900 dark:text-blue-100 sm:text-2xl sm:leading-10 md:text-4xl md:leading-12">`)
		m.text(title)
		m.raw(`</h1>`)
		return nil
	})
}

// Tag renders a tag chip linking to its tag page. The href uses the slug;
// the visible text keeps the label's case with spaces hyphenated.
func Tag(text string) templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<a href="/tags/`)
		m.text(tags.Slugify(text))
		m.raw(`/" class="bg-gray-100 hover:bg-primary-100 text-gray-600 hover:text-primary-700 dark:bg-gray-800 dark:text-gray-300 dark:hover:bg-primary-900 dark:hover:text-primary-300 mr-2 mb-2 px-2 py-0.5 text-xs rounded-md transition-colors duration-200 inline-block">`)
		m.text(tags.DisplayForm(text))
		m.raw(`</a>`)
		return nil
	})
}

// SocialIcon renders a link with an icon from the embedded sprite. Nothing
// is rendered when href is empty; mail links must carry their mailto: prefix.
func SocialIcon(kind, href string, size int) templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		if href == "" {
			return nil
		}
		dim := strconv.Itoa(size)
		m.raw(`<a class="text-sm text-gray-500 transition hover:text-gray-600" target="_blank" rel="noopener noreferrer" href="`)
		m.url(href)
		m.raw(`"><span class="sr-only">`)
		m.text(kind)
		m.raw(`</span><svg class="fill-current text-gray-700 hover:text-primary-500 dark:text-gray-200 dark:hover:text-primary-400 h-`, dim, ` w-`, dim, `" aria-hidden="true"><use href="/static/icons.svg#`)
		m.text(kind)
		m.raw(`"></use></svg></a>`)
		return nil
	})
}
