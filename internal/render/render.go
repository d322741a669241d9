// Package render turns result pages into HTML fragments. Every function is a
// pure function of its inputs: identical inputs produce byte-identical
// output, no state is registered or retained, so the pipeline can re-run on
// every filter change without accumulating side effects.
//
// All text is escaped against the five reserved markup characters; all URLs
// pass SanitizeURL.
package render

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/jordibmorey/nauticards/internal/catalog"
	"github.com/jordibmorey/nauticards/internal/domain"
	"github.com/jordibmorey/nauticards/internal/i18n"
	"github.com/jordibmorey/nauticards/internal/pagination"
	"github.com/jordibmorey/nauticards/internal/urlstate"
)

func esc(s string) string { return html.EscapeString(s) }

// Cards renders the result list for one page of companies.
func Cards(items []domain.Company, cats *catalog.Catalogs, dict *i18n.Dict, lang string) string {
	if len(items) == 0 {
		return `<p class="empty">` + esc(dict.T(lang, "results.empty")) + `</p>`
	}
	var b strings.Builder
	b.WriteString(`<ul class="cards">`)
	for _, c := range items {
		b.WriteString(Card(c, cats, dict, lang))
	}
	b.WriteString(`</ul>`)
	return b.String()
}

// Card renders one company card.
func Card(c domain.Company, cats *catalog.Catalogs, dict *i18n.Dict, lang string) string {
	var b strings.Builder
	b.WriteString(`<li class="card">`)

	if c.Logo != nil {
		if u := SanitizeURL(*c.Logo); u != "" {
			fmt.Fprintf(&b, `<img class="card-logo" src="%s" alt="">`, esc(u))
		}
	}

	fmt.Fprintf(&b, `<h3><a href="%s">%s</a></h3>`, esc(detailPath(c)), esc(c.Name))
	if c.Featured {
		b.WriteString(`<span class="badge">` + esc(dict.T(lang, "card.featured")) + `</span>`)
	}
	if c.Description != nil && *c.Description != "" {
		b.WriteString(`<p>` + esc(*c.Description) + `</p>`)
	}

	if names := serviceNames(c, cats); len(names) > 0 {
		b.WriteString(`<ul class="card-services">`)
		for _, n := range names {
			b.WriteString(`<li>` + esc(n) + `</li>`)
		}
		b.WriteString(`</ul>`)
	}
	if name := cats.PortName(c.Port); name != "" {
		b.WriteString(`<span class="card-port">` + esc(name) + `</span>`)
	}
	if c.Website != nil {
		if u := SanitizeURL(*c.Website); u != "" {
			fmt.Fprintf(&b, `<a class="card-web" href="%s" rel="nofollow">%s</a>`, esc(u), esc(dict.T(lang, "card.website")))
		}
	}

	b.WriteString(`</li>`)
	return b.String()
}

// Pagination renders the page controls for a computed window. Hrefs are
// built from the current query so every other filter survives a page change.
// Renders nothing when the window says pagination is not needed.
func Pagination(w pagination.Window, path string, query url.Values, dict *i18n.Dict, lang string) string {
	if !w.Needed() {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<nav class="pagination">`)

	writeStep := func(page int, key string, enabled bool) {
		label := esc(dict.T(lang, key))
		if enabled {
			fmt.Fprintf(&b, `<a class="page-step" href="%s">%s</a>`, pageHref(path, query, page), label)
		} else {
			fmt.Fprintf(&b, `<span class="page-step disabled">%s</span>`, label)
		}
	}

	writeStep(w.Current-1, "pagination.prev", w.HasPrev)
	for _, e := range w.Pages {
		switch {
		case e.Ellipsis:
			b.WriteString(`<span class="page-gap">&hellip;</span>`)
		case e.Page == w.Current:
			fmt.Fprintf(&b, `<span class="page-num current">%d</span>`, e.Page)
		default:
			fmt.Fprintf(&b, `<a class="page-num" href="%s">%d</a>`, pageHref(path, query, e.Page), e.Page)
		}
	}
	writeStep(w.Current+1, "pagination.next", w.HasNext)

	b.WriteString(`</nav>`)
	return b.String()
}

// Detail renders the company detail page body.
func Detail(c domain.Company, cats *catalog.Catalogs, dict *i18n.Dict, lang string) string {
	var b strings.Builder
	b.WriteString(`<article class="company">`)
	fmt.Fprintf(&b, `<h1>%s</h1>`, esc(c.Name))
	if c.Logo != nil {
		if u := SanitizeURL(*c.Logo); u != "" {
			fmt.Fprintf(&b, `<img class="company-logo" src="%s" alt="">`, esc(u))
		}
	}
	if c.Description != nil && *c.Description != "" {
		b.WriteString(`<p>` + esc(*c.Description) + `</p>`)
	}

	if names := serviceNames(c, cats); len(names) > 0 {
		b.WriteString(`<h2>` + esc(dict.T(lang, "detail.services")) + `</h2><ul>`)
		for _, n := range names {
			b.WriteString(`<li>` + esc(n) + `</li>`)
		}
		b.WriteString(`</ul>`)
	}
	if name := cats.PortName(c.Port); name != "" {
		fmt.Fprintf(&b, `<p class="company-port">%s: %s</p>`, esc(dict.T(lang, "detail.port")), esc(name))
	}

	b.WriteString(`<section class="contact"><h2>` + esc(dict.T(lang, "detail.contact")) + `</h2>`)
	if c.Address != nil && *c.Address != "" {
		b.WriteString(`<p>` + esc(*c.Address) + `</p>`)
	}
	if c.Phone != nil && *c.Phone != "" {
		b.WriteString(`<p>` + esc(*c.Phone) + `</p>`)
	}
	if c.Email != nil && *c.Email != "" {
		b.WriteString(`<p>` + esc(*c.Email) + `</p>`)
	}
	if c.Website != nil {
		if u := SanitizeURL(*c.Website); u != "" {
			fmt.Fprintf(&b, `<p><a href="%s" rel="nofollow">%s</a></p>`, esc(u), esc(u))
		}
	}
	b.WriteString(`</section>`)

	if len(c.Gallery) > 0 {
		b.WriteString(`<section class="gallery">`)
		for _, img := range c.Gallery {
			if u := SanitizeURL(img); u != "" {
				fmt.Fprintf(&b, `<img src="%s" alt="">`, esc(u))
			}
		}
		b.WriteString(`</section>`)
	}

	b.WriteString(`</article>`)
	return b.String()
}

// Guidance renders the under-threshold hint shown instead of results.
func Guidance(dict *i18n.Dict, lang string) string {
	return `<p class="guidance">` + esc(dict.T(lang, "results.guidance")) + `</p>`
}

// ErrorState renders the localized load-failure message. The page stays
// interactive around it.
func ErrorState(dict *i18n.Dict, lang string) string {
	return `<p class="error">` + esc(dict.T(lang, "results.error")) + `</p>`
}

// NotFound renders the detail page's terminal not-found state.
func NotFound(dict *i18n.Dict, lang string) string {
	return `<p class="notfound">` + esc(dict.T(lang, "detail.notfound")) + `</p>`
}

// Page wraps a body fragment in the document shell.
func Page(title, body string) string {
	return `<!doctype html><html><head><meta charset="utf-8"><title>` + esc(title) +
		`</title><link rel="stylesheet" href="/static/site.css"></head><body>` +
		body + `</body></html>`
}

func pageHref(path string, query url.Values, page int) string {
	q := urlstate.Write(query, map[string]any{urlstate.ParamPage: page})
	return esc(path + "?" + q.Encode())
}

func serviceNames(c domain.Company, cats *catalog.Catalogs) []string {
	names := make([]string, 0, len(c.Services))
	for _, id := range c.Services {
		if n := cats.ServiceName(id); n != "" {
			names = append(names, n)
		}
	}
	return names
}

func detailPath(c domain.Company) string {
	if c.Slug != nil && *c.Slug != "" {
		return "/empresa/" + *c.Slug
	}
	return "/empresa/" + c.ID.String()
}
