package ports

import (
	"context"

	"github.com/jordibmorey/nauticards/internal/catalog"
	"github.com/jordibmorey/nauticards/internal/domain"
)

// CatalogSource loads the full catalog set for a language. Implementations
// must return all catalogs or an error; partial data is never returned.
type CatalogSource interface {
	LoadCatalogs(ctx context.Context, lang string) (*catalog.Catalogs, error)
}

// CompanySearcher runs the paged company query. Implementations must return
// an empty page without touching the network when the filter set is not
// active.
type CompanySearcher interface {
	SearchCompanies(ctx context.Context, lang string, f domain.Filters, pageSize int) (domain.PagedResult, error)
}

// FormForwarder passes a validated form submission to the upstream API.
type FormForwarder interface {
	ForwardForm(ctx context.Context, form string, fields map[string]string) error
}
