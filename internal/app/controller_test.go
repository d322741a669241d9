package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jordibmorey/nauticards/internal/catalog"
	"github.com/jordibmorey/nauticards/internal/domain"
	"github.com/jordibmorey/nauticards/internal/i18n"
	"github.com/jordibmorey/nauticards/internal/services/directory"
	"github.com/jordibmorey/nauticards/internal/urlstate"
)

type stubSource struct {
	cats *catalog.Catalogs
	err  error
}

func (s *stubSource) LoadCatalogs(ctx context.Context, lang string) (*catalog.Catalogs, error) {
	return s.cats, s.err
}

// fnSearcher lets a test interleave controller actions with an in-flight
// search, mimicking a user acting before a slow response lands.
type fnSearcher struct {
	fn func(f domain.Filters, pageSize int) (domain.PagedResult, error)
}

func (s *fnSearcher) SearchCompanies(ctx context.Context, lang string, f domain.Filters, pageSize int) (domain.PagedResult, error) {
	if !f.Active() {
		return domain.EmptyPage(pageSize), nil
	}
	return s.fn(f, pageSize)
}

func testCatalogs() *catalog.Catalogs {
	return catalog.New(
		[]domain.Service{{ID: "5", Name: "Mecánica"}},
		nil,
		[]domain.Port{{ID: "1", Name: "Palma", AreaID: "3"}},
		nil, nil,
		[]domain.Company{{ID: "1", Name: "Náutica Test", Services: []domain.ID{"5"}, Port: "1"}},
	)
}

func page(items []domain.Company, total, pageNum, pageSize int) domain.PagedResult {
	return domain.PagedResult{Items: items, Total: total, Page: pageNum, PageSize: pageSize}
}

func newController(t *testing.T, initial string, searcher *fnSearcher) (*Controller, *urlstate.History) {
	t.Helper()
	dict, err := i18n.Load("es")
	require.NoError(t, err)
	hist := urlstate.NewHistory(initial)
	svc := directory.New(&stubSource{cats: testCatalogs()}, searcher, 8, zap.NewNop())
	return NewController(urlstate.NewStore(hist), svc, dict, "es", zap.NewNop()), hist
}

func okSearcher(cats *catalog.Catalogs) *fnSearcher {
	return &fnSearcher{fn: func(f domain.Filters, pageSize int) (domain.PagedResult, error) {
		return page(cats.Companies, 30, f.Page, pageSize), nil
	}}
}

func TestInitRendersGuidanceWithoutFilters(t *testing.T) {
	c, _ := newController(t, "/directorio", okSearcher(testCatalogs()))
	require.NoError(t, c.Init(context.Background()))

	assert.Equal(t, StateRendered, c.State())
	assert.Contains(t, c.Output(), "guidance")
}

func TestInitRendersResultsFromURLState(t *testing.T) {
	c, _ := newController(t, "/directorio?servicio=5", okSearcher(testCatalogs()))
	require.NoError(t, c.Init(context.Background()))

	assert.Equal(t, StateRendered, c.State())
	assert.Contains(t, c.Output(), "Náutica Test")
	assert.Contains(t, c.Output(), "pagination")
}

func TestBindIsIdempotentAcrossReInit(t *testing.T) {
	attaches := 0
	c, _ := newController(t, "/directorio?servicio=5", okSearcher(testCatalogs()))
	c.Binder().Bind("results", func() { attaches++ })

	require.NoError(t, c.Init(context.Background()))
	first := c.Output()

	// the init routine re-runs after a re-render; binding must not repeat
	require.NoError(t, c.Init(context.Background()))
	assert.False(t, c.Binder().Bind("results", func() { attaches++ }))
	assert.Equal(t, 1, attaches)
	assert.Equal(t, first, c.Output(), "identical state renders identical output")
}

func TestSubmitPushesAndResetsPage(t *testing.T) {
	c, hist := newController(t, "/directorio?servicio=5&page=3", okSearcher(testCatalogs()))
	require.NoError(t, c.Init(context.Background()))
	require.Equal(t, 1, hist.Len())

	c.Submit(context.Background(), map[string]any{urlstate.ParamQuery: "motor"})
	assert.Equal(t, 2, hist.Len(), "submit is navigational")

	f := urlstate.NewStore(hist).Read()
	assert.Equal(t, "motor", f.Query)
	assert.Equal(t, 1, f.Page, "submit resets the page")
}

func TestSetFilterReplacesInPlace(t *testing.T) {
	c, hist := newController(t, "/directorio?servicio=5", okSearcher(testCatalogs()))
	require.NoError(t, c.Init(context.Background()))

	c.SetFilter(context.Background(), map[string]any{urlstate.ParamArea: "3"})
	assert.Equal(t, 1, hist.Len(), "incidental changes must not pollute history")
	assert.Equal(t, "3", urlstate.NewStore(hist).Read().Area)
}

func TestPopStateReRendersOlderEntry(t *testing.T) {
	c, hist := newController(t, "/directorio?servicio=5", okSearcher(testCatalogs()))
	require.NoError(t, c.Init(context.Background()))

	c.GoToPage(context.Background(), 2)
	require.Equal(t, 2, hist.Len())

	require.True(t, hist.Back())
	c.PopState(context.Background())
	assert.Equal(t, StateRendered, c.State())
	assert.Contains(t, c.Output(), `<span class="page-num current">1</span>`)
}

func TestSearchFailureKeepsPageInteractive(t *testing.T) {
	failing := &fnSearcher{fn: func(domain.Filters, int) (domain.PagedResult, error) {
		return domain.PagedResult{}, errors.New("down")
	}}
	c, _ := newController(t, "/directorio?servicio=5", failing)
	require.NoError(t, c.Init(context.Background()))
	assert.Equal(t, StateError, c.State())
	assert.Contains(t, c.Output(), "error")

	// next user action retries and recovers
	cats := testCatalogs()
	failing.fn = okSearcher(cats).fn
	c.Submit(context.Background(), map[string]any{urlstate.ParamQuery: "motor"})
	assert.Equal(t, StateRendered, c.State())
	assert.Contains(t, c.Output(), "Náutica Test")
}

func TestCatalogLoadFailureRendersErrorState(t *testing.T) {
	dict, err := i18n.Load("es")
	require.NoError(t, err)
	hist := urlstate.NewHistory("/directorio?servicio=5")
	svc := directory.New(&stubSource{err: errors.New("down")}, okSearcher(testCatalogs()), 8, zap.NewNop())
	c := NewController(urlstate.NewStore(hist), svc, dict, "es", zap.NewNop())

	require.Error(t, c.Init(context.Background()))
	assert.Equal(t, StateError, c.State())
	assert.Contains(t, c.Output(), "error")
}

func TestControllerDiscardsStaleResults(t *testing.T) {
	cats := testCatalogs()
	var c *Controller

	stale := []domain.Company{{ID: "9", Name: "Resultado Viejo"}}
	searcher := &fnSearcher{}
	first := true
	searcher.fn = func(f domain.Filters, pageSize int) (domain.PagedResult, error) {
		if first {
			first = false
			// the user pages forward before this response arrives; the
			// nested action completes with the fresh result
			c.GoToPage(context.Background(), 2)
			return page(stale, 30, f.Page, pageSize), nil
		}
		return page(cats.Companies, 30, f.Page, pageSize), nil
	}

	c, _ = newController(t, "/directorio?servicio=5", searcher)
	require.NoError(t, c.Init(context.Background()))

	assert.Equal(t, StateRendered, c.State())
	assert.Contains(t, c.Output(), "Náutica Test")
	assert.NotContains(t, c.Output(), "Resultado Viejo", "out-of-order result must not overwrite the newer one")
	assert.Contains(t, c.Output(), `<span class="page-num current">2</span>`)
}
