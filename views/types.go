package views

// Site holds the site-wide settings every component may read. Handlers
// build it once from the loaded configuration; Year is filled per request.
type Site struct {
	Title       string
	HeaderTitle string
	Description string
	Author      string
	Locale      string
	URL         string // canonical base, no trailing slash
	Email       string
	Github      string
	Linkedin    string
	Twitter     string
	Bluesky     string
	StickyNav   bool
	NavLinks    []NavLink
	Year        int
}

// NavLink is one header navigation entry.
type NavLink struct {
	Title string
	Href  string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	Path        string // site-relative, used for canonical + og:url
	OGType      string // "website" or "article"
	JSONLD      string
}
