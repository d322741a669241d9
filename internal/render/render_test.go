package render

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/jordibmorey/nauticards/internal/catalog"
	"github.com/jordibmorey/nauticards/internal/domain"
	"github.com/jordibmorey/nauticards/internal/i18n"
	"github.com/jordibmorey/nauticards/internal/pagination"
)

func strPtr(s string) *string { return &s }

func testCatalogs() *catalog.Catalogs {
	return catalog.New(
		[]domain.Service{{ID: "5", Name: "Mecánica"}, {ID: "7", Name: "Velería"}},
		nil,
		[]domain.Port{{ID: "1", Name: "Palma", AreaID: "3"}},
		nil, nil, nil,
	)
}

func testDict(t *testing.T) *i18n.Dict {
	t.Helper()
	d, err := i18n.Load("es")
	require.NoError(t, err)
	return d
}

// collect returns all nodes matching the tag in rendered HTML.
func collect(t *testing.T, rendered, tag string) []*html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(rendered))
	require.NoError(t, err)
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestSanitizeURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"javascript:alert(1)", ""},
		{"JAVASCRIPT:alert(1)", ""},
		{"data:text/html;base64,x", ""},
		{"/pages/x", "/pages/x"},
		{"//evil.example/x", ""},
		{"http://example.com", "http://example.com"},
		{"https://example.com/logo.png", "https://example.com/logo.png"},
		{"  https://example.com ", "https://example.com"},
		{"ht tp://broken", ""},
		{"example.com/no-scheme", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeURL(tc.in), "input %q", tc.in)
	}
}

func TestCardsEscapesText(t *testing.T) {
	cats := testCatalogs()
	dict := testDict(t)
	items := []domain.Company{{
		ID:          "1",
		Name:        `<script>alert("x")</script> & Co`,
		Description: strPtr("'quoted' <desc>"),
	}}

	out := Cards(items, cats, dict, "es")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&amp; Co")
	assert.Contains(t, out, "&#39;quoted&#39;")
}

func TestCardsSanitizesEveryURL(t *testing.T) {
	cats := testCatalogs()
	dict := testDict(t)
	items := []domain.Company{{
		ID:      "1",
		Name:    "Náutica Test",
		Logo:    strPtr("javascript:alert(1)"),
		Website: strPtr("javascript:alert(2)"),
	}}

	out := Cards(items, cats, dict, "es")
	assert.NotContains(t, out, "javascript:")
	// the rejected logo renders no img at all
	assert.Empty(t, collect(t, out, "img"))
}

func TestCardsResolvesLookups(t *testing.T) {
	cats := testCatalogs()
	dict := testDict(t)
	items := []domain.Company{{
		ID:       "1",
		Name:     "Náutica Test",
		Services: []domain.ID{"5", "7"},
		Port:     "1",
	}}

	out := Cards(items, cats, dict, "es")
	assert.Contains(t, out, "Mecánica")
	assert.Contains(t, out, "Velería")
	assert.Contains(t, out, "Palma")
	// service order follows the company record, not map iteration
	assert.Less(t, strings.Index(out, "Mecánica"), strings.Index(out, "Velería"))
}

func TestRenderIsIdempotent(t *testing.T) {
	cats := testCatalogs()
	dict := testDict(t)
	items := []domain.Company{
		{ID: "1", Name: "Náutica Test", Services: []domain.ID{"5"}, Port: "1", Featured: true},
		{ID: "2", Name: "Otra", Website: strPtr("https://example.com")},
	}

	first := Cards(items, cats, dict, "es")
	second := Cards(items, cats, dict, "es")
	assert.Equal(t, first, second, "identical inputs must render byte-identical output")

	w := pagination.ComputeWindow(100, 8, 7)
	q := url.Values{"servicio": {"5"}, "page": {"7"}}
	assert.Equal(t,
		Pagination(w, "/directorio", q, dict, "es"),
		Pagination(w, "/directorio", q, dict, "es"),
	)
}

func TestPaginationControls(t *testing.T) {
	dict := testDict(t)
	q := url.Values{"servicio": {"5"}}

	// single page renders nothing
	assert.Empty(t, Pagination(pagination.ComputeWindow(5, 8, 1), "/directorio", q, dict, "es"))

	out := Pagination(pagination.ComputeWindow(100, 8, 1), "/directorio", q, dict, "es")

	links := collect(t, out, "a")
	require.NotEmpty(t, links)
	for _, a := range links {
		href := attr(a, "href")
		assert.Contains(t, href, "servicio=5", "filters survive page changes: %s", href)
	}

	// prev disabled on page one, next enabled
	assert.Contains(t, out, `<span class="page-step disabled">Anterior</span>`)
	assert.Contains(t, out, `>Siguiente</a>`)
	// current page is a span, not a link
	assert.Contains(t, out, `<span class="page-num current">1</span>`)
	// last page reachable through the trailing entry
	assert.Contains(t, out, ">13</a>")
}

func TestDetailGallerySanitized(t *testing.T) {
	cats := testCatalogs()
	dict := testDict(t)
	c := domain.Company{
		ID:      "1",
		Name:    "Náutica Test",
		Gallery: []string{"https://cdn.example/1.jpg", "javascript:alert(1)", "/img/2.jpg"},
	}

	out := Detail(c, cats, dict, "es")
	imgs := collect(t, out, "img")
	require.Len(t, imgs, 2)
	assert.Equal(t, "https://cdn.example/1.jpg", attr(imgs[0], "src"))
	assert.Equal(t, "/img/2.jpg", attr(imgs[1], "src"))
}

func TestStateFragments(t *testing.T) {
	dict := testDict(t)
	assert.Contains(t, Guidance(dict, "en"), "at least 3 letters")
	assert.Contains(t, ErrorState(dict, "en"), "Error loading data")
	assert.Contains(t, NotFound(dict, "en"), "Company not found")
}
