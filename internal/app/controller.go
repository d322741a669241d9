// Package app is the page engine: one Controller per interactive session,
// driving the URL state store, the remote query and the render pipeline
// through the page's state machine. All methods run on a single
// event-processing goroutine; no locking is needed.
package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/jordibmorey/nauticards/internal/catalog"
	"github.com/jordibmorey/nauticards/internal/i18n"
	"github.com/jordibmorey/nauticards/internal/pagination"
	"github.com/jordibmorey/nauticards/internal/render"
	"github.com/jordibmorey/nauticards/internal/services/directory"
	"github.com/jordibmorey/nauticards/internal/urlstate"
)

// State is the page-level machine: Idle → Loading → Rendered ⇄ Loading, with
// Loading → Error on fetch failure and Error → Loading on the next action.
// There is no terminal state; the page stays interactive.
type State string

const (
	StateIdle     State = "idle"
	StateLoading  State = "loading"
	StateRendered State = "rendered"
	StateError    State = "error"
)

// Interactive regions whose handlers are bound once per session.
const (
	regionSearchForm = "search-form"
	regionPagination = "pagination"
)

type Controller struct {
	store *urlstate.Store
	svc   *directory.Service
	dict  *i18n.Dict
	lang  string
	log   *zap.Logger

	binder *Binder
	cats   *catalog.Catalogs
	state  State
	output string

	// generation stamps each remote search; results arriving for an older
	// generation are discarded so a fast double filter change can never
	// apply an out-of-order result.
	generation uint64
}

func NewController(store *urlstate.Store, svc *directory.Service, dict *i18n.Dict, lang string, logger *zap.Logger) *Controller {
	return &Controller{
		store:  store,
		svc:    svc,
		dict:   dict,
		lang:   lang,
		log:    logger,
		binder: NewBinder(),
		state:  StateIdle,
	}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Output() string { return c.output }

func (c *Controller) Binder() *Binder { return c.binder }

// Init binds the interactive regions and performs the initial load and
// render. Re-invoking it after a re-render is a no-op for already-bound
// regions. A catalog load failure renders the error state and is returned;
// the page stays interactive for a retry.
func (c *Controller) Init(ctx context.Context) error {
	c.binder.Bind(regionSearchForm, nil)
	c.binder.Bind(regionPagination, nil)

	c.state = StateLoading
	cats, err := c.svc.Load(ctx, c.lang)
	if err != nil {
		c.state = StateError
		c.output = render.ErrorState(c.dict, c.lang)
		return err
	}
	c.cats = cats
	c.refresh(ctx)
	return nil
}

// Submit is the intentional search action: pushed onto history, page reset.
func (c *Controller) Submit(ctx context.Context, changes map[string]any) {
	merged := map[string]any{urlstate.ParamPage: nil}
	for k, v := range changes {
		merged[k] = v
	}
	c.store.Write(merged, false)
	c.refresh(ctx)
}

// SetFilter is an incidental change (typing, toggling a filter): the history
// entry is replaced in place, no new entry is pushed.
func (c *Controller) SetFilter(ctx context.Context, changes map[string]any) {
	c.store.Write(changes, true)
	c.refresh(ctx)
}

// GoToPage navigates to a results page: a new history entry.
func (c *Controller) GoToPage(ctx context.Context, page int) {
	c.store.Write(map[string]any{urlstate.ParamPage: page}, false)
	c.refresh(ctx)
}

// PopState re-derives the filter set from the URL after external history
// movement (back/forward) and re-renders.
func (c *Controller) PopState(ctx context.Context) {
	c.refresh(ctx)
}

// refresh re-reads the URL state, queries, and re-renders. Stale responses
// (a newer refresh started while this one was in flight) are dropped.
func (c *Controller) refresh(ctx context.Context) {
	c.generation++
	gen := c.generation

	f := c.store.Read()
	if !f.Active() {
		c.state = StateRendered
		c.output = render.Guidance(c.dict, c.lang)
		return
	}

	c.state = StateLoading
	if c.cats == nil {
		// a user action after a failed initial load retries the catalogs
		cats, err := c.svc.Load(ctx, c.lang)
		if err != nil {
			c.state = StateError
			c.output = render.ErrorState(c.dict, c.lang)
			return
		}
		c.cats = cats
	}
	res, err := c.svc.Search(ctx, c.lang, f)
	if gen != c.generation {
		c.log.Debug("discarding stale search result", zap.Uint64("generation", gen))
		return
	}
	if err != nil {
		c.state = StateError
		c.output = render.ErrorState(c.dict, c.lang)
		return
	}

	path, q := c.store.Location()
	w := pagination.ComputeWindow(res.Total, res.PageSize, f.Page)
	c.output = render.Cards(res.Items, c.cats, c.dict, c.lang) +
		render.Pagination(w, path, q, c.dict, c.lang)
	c.state = StateRendered
}
