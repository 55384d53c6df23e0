package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"golang.org/x/text/language"

	"github.com/binarytrails/trails/content"
)

// BuildURL joins path segments onto a base URL, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// VisibleNavLinks drops the home link; the logo already points there.
func VisibleNavLinks(links []NavLink) []NavLink {
	out := make([]NavLink, 0, len(links))
	for _, l := range links {
		if l.Href == "/" {
			continue
		}
		out = append(out, l)
	}
	return out
}

// FormatDate renders an ISO date the way the site's locale expects:
// "January 2, 2006" for US English, "2 January 2006" for other locales.
// Dates that do not parse are returned unchanged.
func FormatDate(date, locale string) string {
	t, err := content.ParseDate(date)
	if err != nil {
		return date
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	base, _ := tag.Base()
	region, _ := tag.Region()
	if base.String() == "en" && (region.String() == "US" || region.String() == "ZZ") {
		return t.Format("January 2, 2006")
	}
	return t.Format("2 January 2006")
}

// headerClass is the header bar class list, made sticky on request.
func headerClass(sticky bool) string {
	c := "flex items-center w-full bg-white/90 dark:bg-gray-950/90 justify-between py-6 backdrop-blur-md border-b border-gray-200 dark:border-gray-800"
	if sticky {
		c += " sticky top-0 z-50"
	}
	return c
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using site values.
func WebsiteJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Title,
		"url":      BuildURL(site.URL),
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	return marshalJsonLD(data)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(site Site, post content.Post) string {
	postURL := BuildURL(site.URL, "posts", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Summary,
		"datePublished": post.Date,
		"url":           postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  site.Title,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	return marshalJsonLD(data)
}

// PersonJsonLD produces a Schema.org Person block for the about page.
func PersonJsonLD(site Site, a content.Author) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     a.Name,
		"url":      BuildURL(site.URL, "about"),
	}
	if a.Occupation != "" {
		data["jobTitle"] = a.Occupation
	}
	if a.Company != "" {
		data["worksFor"] = map[string]string{"@type": "Organization", "name": a.Company}
	}
	var same []string
	for _, u := range []string{a.Github, a.Linkedin, a.Twitter, a.Bluesky} {
		if u != "" {
			same = append(same, u)
		}
	}
	if len(same) > 0 {
		data["sameAs"] = same
	}
	return marshalJsonLD(data)
}

func marshalJsonLD(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
