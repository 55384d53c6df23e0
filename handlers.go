package trails

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"

	"github.com/binarytrails/trails/content"
	"github.com/binarytrails/trails/listing"
	"github.com/binarytrails/trails/tags"
	"github.com/binarytrails/trails/views"
)

func (a *App) handleHome(c echo.Context) error {
	batch := listing.SelectDisplayBatch(a.Library.Posts(), a.Config.MaxDisplay)
	meta := views.PageMeta{Title: a.Config.Title, Description: a.Config.Description, Path: "/"}
	return a.renderPage(c, http.StatusOK, "home", meta, func(site views.Site) templ.Component {
		return views.Home(site, batch)
	})
}

func (a *App) handlePostList(c echo.Context) error {
	number := 1
	if raw := c.Param("n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.ErrNotFound
		}
		if n == 1 {
			return c.Redirect(http.StatusMovedPermanently, "/posts/")
		}
		number = n
	}
	page, ok := listing.Paginate(a.Library.Posts(), a.Config.PostsPerPage, number)
	if !ok {
		return echo.ErrNotFound
	}
	meta := views.PageMeta{Title: "All Posts"}
	return a.renderPage(c, http.StatusOK, "posts", meta, func(site views.Site) templ.Component {
		return views.PostList(site, "All Posts", page, "/posts/")
	})
}

func (a *App) handlePost(c echo.Context) error {
	post, err := a.Library.Post(c.Param("slug"))
	if errors.Is(err, content.ErrNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	meta := views.PageMeta{
		Title:       post.Title,
		Description: post.Summary,
		Path:        post.Link(),
		OGType:      "article",
		JSONLD:      views.BlogPostingJsonLD(a.site(), post),
	}
	return a.renderPage(c, http.StatusOK, "post", meta, func(site views.Site) templ.Component {
		return views.PostPage(site, post)
	})
}

func (a *App) handleTags(c echo.Context) error {
	index := tags.BuildIndex(a.Library.Posts())
	meta := views.PageMeta{Title: "Tags", Description: "Things I blog about"}
	return a.renderPage(c, http.StatusOK, "tags", meta, func(site views.Site) templ.Component {
		return views.TagsPage(site, index)
	})
}

func (a *App) handleTag(c echo.Context) error {
	posts := a.Library.Posts()
	tag, ok := tags.Lookup(tags.BuildIndex(posts), c.Param("slug"))
	if !ok {
		return echo.ErrNotFound
	}
	tagged := tags.Filter(posts, tag.Slug)
	meta := views.PageMeta{
		Title:       tag.Label,
		Description: a.Config.Title + " " + tag.Label + " tagged content",
		Path:        tag.Link(),
	}
	return a.renderPage(c, http.StatusOK, "tag", meta, func(site views.Site) templ.Component {
		return views.TagPage(site, tag, tagged)
	})
}

func (a *App) handleAbout(c echo.Context) error {
	author := a.aboutAuthor()
	meta := views.PageMeta{
		Title:  "About",
		Path:   "/about/",
		OGType: "profile",
		JSONLD: views.PersonJsonLD(a.site(), author),
	}
	return a.renderPage(c, http.StatusOK, "about", meta, func(site views.Site) templ.Component {
		return views.About(site, author)
	})
}

func (a *App) handleSitemap(c echo.Context) error {
	posts := a.Library.Posts()
	return a.renderSitemap(c, posts, tags.BuildIndex(posts))
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Library.Posts())
}

func (a *App) handleTheme(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", []byte(a.Theme.CSS()))
}

func (a *App) handleRobots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n\n")
	b.WriteString("Sitemap: " + a.Config.URL + "/sitemap.xml\n")
	return c.String(http.StatusOK, b.String())
}

func (a *App) handleEmbedded(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := EmbeddedAssets.ReadFile("embedded/" + name)
		if err != nil {
			return echo.ErrNotFound
		}
		return c.Blob(http.StatusOK, "image/svg+xml", data)
	}
}

func (a *App) handleMetrics() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: a.Registry})
}

func handleBlogRedirect(c echo.Context) error {
	if slug := c.Param("slug"); slug != "" {
		return c.Redirect(http.StatusMovedPermanently, "/posts/"+slug+"/")
	}
	return c.Redirect(http.StatusMovedPermanently, "/posts/")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderPage(c, http.StatusNotFound, "not_found", views.PageMeta{Title: "Page not found"}, views.NotFound)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Errorw("server error", "uri", c.Request().RequestURI, "err", err)
		_ = a.renderPage(c, code, "server_error", views.PageMeta{Title: "Server error"}, views.ServerError)
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
