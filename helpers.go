package trails

import (
	"github.com/binarytrails/trails/content"
)

// defaultAuthor is the profile slug shown on /about/ when present.
const defaultAuthor = "default"

// aboutAuthor picks the profile for the about page: the "default" author,
// else the first author by slug, else one built from the site config.
func (a *App) aboutAuthor() content.Author {
	if author, err := a.Library.Author(defaultAuthor); err == nil {
		return author
	}
	if all := a.Library.Authors(); len(all) > 0 {
		return all[0]
	}
	return content.Author{
		Name:     a.Config.Author,
		Email:    a.Config.Email,
		Github:   a.Config.Github,
		Linkedin: a.Config.Linkedin,
		Twitter:  a.Config.Twitter,
		Bluesky:  a.Config.Bluesky,
		Body:     a.Config.Description,
	}
}
