package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/binarytrails/trails/content"
)

// AuthorLayout renders the profile card next to children. avatarURL is
// the resized avatar route; an empty value omits the image.
func AuthorLayout(author content.Author, avatarURL string, children templ.Component) templ.Component {
	return component(func(ctx context.Context, m *markup) error {
		m.raw(`<div class="pointer-events-none fixed inset-0 -z-10 overflow-hidden">`,
			`<div class="animate-blob absolute top-1/4 left-1/4 h-96 w-96 rounded-full bg-accent-200 opacity-20 mix-blend-multiply blur-3xl filter dark:bg-accent-900 dark:opacity-10 dark:mix-blend-soft-light"></div>`,
			`<div class="animate-blob animation-delay-2000 absolute top-3/4 right-1/4 h-96 w-96 rounded-full bg-accent-100 opacity-20 mix-blend-multiply blur-3xl filter dark:bg-accent-800 dark:opacity-10 dark:mix-blend-soft-light"></div>`,
			`<div class="animate-blob animation-delay-4000 absolute bottom-1/4 left-1/2 h-96 w-96 rounded-full bg-accent-300 opacity-20 mix-blend-multiply blur-3xl filter dark:bg-accent-700 dark:opacity-10 dark:mix-blend-soft-light"></div>`,
			`<div class="bg-grid-pattern-light dark:bg-grid-pattern-dark bg-grid-pattern absolute inset-0 opacity-[0.015] dark:opacity-[0.03]"></div>`,
			`<div class="bg-dots-pattern-light dark:bg-dots-pattern-dark bg-dots-pattern absolute top-0 right-0 left-0 h-screen opacity-[0.02] dark:opacity-[0.025]"></div>`,
			`</div>`)
		m.raw(`<div class="relative mx-auto max-w-7xl"><div class="items-start space-y-8 pt-8 xl:grid xl:grid-cols-12 xl:space-y-0 xl:gap-x-8">`,
			`<div class="relative flex transform flex-col items-center justify-center overflow-hidden bg-white/80 p-6 pt-8 text-center shadow-xl backdrop-blur-sm transition-all duration-300 hover:shadow-2xl xl:col-span-3 dark:bg-gray-900/80">`,
			`<div class="absolute -top-12 -right-12 h-24 w-24 rounded-full bg-accent-100 opacity-20 dark:bg-accent-900"></div>`,
			`<div class="absolute -bottom-12 -left-12 h-24 w-24 rounded-full bg-accent-200 opacity-20 dark:bg-accent-700"></div>`,
			`<div class="relative flex w-full justify-center">`)
		if avatarURL != "" {
			m.raw(`<img src="`)
			m.url(avatarURL)
			m.raw(`" alt="avatar" width="128" height="128" class="h-32 w-32 object-cover shadow-lg"/>`)
		}
		m.raw(`</div><h3 class="w-full pt-4 pb-1 text-center text-xl leading-8 font-bold tracking-tight text-black dark:text-white">`)
		m.text(author.Name)
		m.raw(`</h3><div class="w-full text-center text-sm font-medium text-gray-700 dark:text-gray-300">`)
		m.text(author.Occupation)
		m.raw(`</div><div class="w-full text-center text-sm text-gray-500 dark:text-gray-400">`)
		m.text(author.Company)
		m.raw(`</div><div class="flex w-full items-center justify-center space-x-3 pt-6">`)

		mail := ""
		if author.Email != "" {
			mail = "mailto:" + author.Email
		}
		for _, link := range []struct{ kind, href string }{
			{"mail", mail},
			{"github", author.Github},
			{"linkedin", author.Linkedin},
			{"x", author.Twitter},
			{"bluesky", author.Bluesky},
		} {
			if err := m.child(ctx, SocialIcon(link.kind, link.href, 5)); err != nil {
				return err
			}
		}
		m.raw(`</div></div>`,
			`<div class="prose dark:prose-invert relative max-w-none overflow-hidden bg-white/80 p-8 pt-8 pb-8 shadow-xl backdrop-blur-sm xl:col-span-9 dark:bg-gray-900/80">`,
			`<div class="absolute top-1/4 -right-12 h-24 w-24 rounded-full bg-accent-100 opacity-10 dark:bg-accent-900"></div>`,
			`<div class="absolute top-3/4 -left-12 h-24 w-24 rounded-full bg-accent-200 opacity-10 dark:bg-accent-700"></div>`)
		if err := m.child(ctx, children); err != nil {
			return err
		}
		m.raw(`</div></div></div>`)
		return nil
	})
}
