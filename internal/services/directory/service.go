// Package directory orchestrates the catalog, the predicate engine and the
// remote paged query for the site's pages.
package directory

import (
	"context"

	"go.uber.org/zap"

	"github.com/jordibmorey/nauticards/internal/catalog"
	"github.com/jordibmorey/nauticards/internal/domain"
	"github.com/jordibmorey/nauticards/internal/filter"
	"github.com/jordibmorey/nauticards/internal/ports"
)

type Service struct {
	source   ports.CatalogSource
	searcher ports.CompanySearcher
	log      *zap.Logger
	pageSize int
}

func New(source ports.CatalogSource, searcher ports.CompanySearcher, pageSize int, logger *zap.Logger) *Service {
	return &Service{source: source, searcher: searcher, log: logger, pageSize: pageSize}
}

func (s *Service) PageSize() int { return s.pageSize }

// Load fetches and indexes the catalogs for a language.
func (s *Service) Load(ctx context.Context, lang string) (*catalog.Catalogs, error) {
	return s.source.LoadCatalogs(ctx, lang)
}

// Featured returns the companies carrying the featured flag, in catalog
// order.
func (s *Service) Featured(cats *catalog.Catalogs) []domain.Company {
	var out []domain.Company
	for _, c := range cats.Companies {
		if c.Featured {
			out = append(out, c)
		}
	}
	return out
}

// FilterLocal applies the predicate engine to the full in-memory catalog and
// slices out the requested page. Used where the full catalog is already
// loaded; remote search is the paged path.
func (s *Service) FilterLocal(cats *catalog.Catalogs, f domain.Filters) domain.PagedResult {
	var matched []domain.Company
	for _, c := range cats.Companies {
		if filter.Matches(c, f, cats.Ports) {
			matched = append(matched, c)
		}
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * s.pageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + s.pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return domain.PagedResult{
		Items:    matched[start:end],
		Total:    len(matched),
		Page:     page,
		PageSize: s.pageSize,
	}
}

// Search runs the remote paged query. The minimum-filter gate lives in the
// searcher; an inactive filter set yields an empty page, never an error.
func (s *Service) Search(ctx context.Context, lang string, f domain.Filters) (domain.PagedResult, error) {
	res, err := s.searcher.SearchCompanies(ctx, lang, f, s.pageSize)
	if err != nil {
		s.log.Error("company search failed", zap.Error(err), zap.String("query", f.Query))
		return domain.PagedResult{}, err
	}
	return res, nil
}

// CompanyByKey finds a company by slug or id. ErrNotFound marks the detail
// page's terminal not-found state.
func (s *Service) CompanyByKey(cats *catalog.Catalogs, key string) (domain.Company, error) {
	id := domain.NormalizeID(key)
	for _, c := range cats.Companies {
		if c.Slug != nil && *c.Slug == key {
			return c, nil
		}
		if c.ID == id && c.ID != "" {
			return c, nil
		}
	}
	return domain.Company{}, domain.ErrNotFound
}
