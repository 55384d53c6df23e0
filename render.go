package trails

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/binarytrails/trails/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// renderPage wraps body in the site layout, counts the render under kind,
// and writes it with code.
func (a *App) renderPage(c echo.Context, code int, kind string, meta views.PageMeta, body func(site views.Site) templ.Component) error {
	site := a.site()
	if meta.Path == "" {
		meta.Path = c.Request().URL.Path
	}
	a.metrics.pageRenders.WithLabelValues(kind).Inc()
	return RenderStatus(c, code, views.Layout(site, meta, body(site)))
}

func (a *App) site() views.Site {
	return a.Config.Site(a.now())
}
