// Package sitemap generates the sitemap.xml: the static site URLs plus one
// entry per company record.
package sitemap

import (
	"context"
	"encoding/xml"
	"time"

	"github.com/jordibmorey/nauticards/internal/domain"
	"github.com/jordibmorey/nauticards/internal/ports"
)

// staticPaths are the always-present site URLs.
var staticPaths = []string{"/", "/directorio", "/contacto"}

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// Generator builds the sitemap from the upstream catalog.
type Generator struct {
	siteURL string
	lang    string
	source  ports.CatalogSource
	now     func() time.Time
}

// New builds a generator rooted at siteURL (scheme + host, no trailing
// slash).
func New(siteURL, lang string, source ports.CatalogSource) *Generator {
	return &Generator{siteURL: siteURL, lang: lang, source: source, now: time.Now}
}

// Generate renders the sitemap document. A missing site URL is a
// ConfigError; an unreachable upstream surfaces as the load error so the
// caller can answer 500 with a plain-text body.
func (g *Generator) Generate(ctx context.Context) ([]byte, error) {
	if g.siteURL == "" {
		return nil, &domain.ConfigError{Setting: "SITE_URL"}
	}

	cats, err := g.source.LoadCatalogs(ctx, g.lang)
	if err != nil {
		return nil, err
	}

	generated := g.now().UTC().Format("2006-01-02")
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range staticPaths {
		set.URLs = append(set.URLs, urlEntry{Loc: g.siteURL + p, LastMod: generated})
	}
	for _, c := range cats.Companies {
		key := c.ID.String()
		if c.Slug != nil && *c.Slug != "" {
			key = *c.Slug
		}
		if key == "" {
			continue
		}
		lastmod := generated
		if c.UpdatedAt != nil {
			lastmod = c.UpdatedAt.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, urlEntry{Loc: g.siteURL + "/empresa/" + key, LastMod: lastmod})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
