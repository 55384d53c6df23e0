package trails

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/binarytrails/trails/content"
	"github.com/binarytrails/trails/tags"
	"github.com/binarytrails/trails/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (a *App) renderSitemap(c echo.Context, posts []content.Post, index []tags.Tag) error {
	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: views.BuildURL(base)},
		{Loc: views.BuildURL(base, "posts")},
		{Loc: views.BuildURL(base, "tags")},
		{Loc: views.BuildURL(base, "about")},
	}
	for _, p := range posts {
		u := sitemapURL{Loc: views.BuildURL(base, "posts", p.Slug)}
		if t := p.Time(); !t.IsZero() {
			u.LastMod = t.Format(time.DateOnly)
		}
		urls = append(urls, u)
	}
	for _, t := range index {
		urls = append(urls, sitemapURL{Loc: views.BuildURL(base, "tags", t.Slug)})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
