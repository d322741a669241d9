// Package filter implements the company predicate: the conjunction of the
// active filter clauses, evaluated against one company at a time.
package filter

import (
	"strings"

	"github.com/jordibmorey/nauticards/internal/catalog"
	"github.com/jordibmorey/nauticards/internal/domain"
)

// Matches reports whether the company satisfies every active clause of the
// filter set. Clauses are independent; the first failing one short-circuits.
// Ports absent from the index are non-matching, not errors.
func Matches(c domain.Company, f domain.Filters, ports catalog.Index[domain.Port]) bool {
	if f.Service != "" && !matchesService(c, f.Service) {
		return false
	}
	if f.Area != "" && !matchesArea(c, f.Area, ports) {
		return false
	}
	if f.Port != "" && !matchesPort(c, f.Port) {
		return false
	}
	if q := strings.TrimSpace(f.Query); q != "" && !matchesText(c, q) {
		return false
	}
	return true
}

func matchesService(c domain.Company, service string) bool {
	for _, id := range c.Services {
		if id.String() == service {
			return true
		}
	}
	return false
}

// matchesArea passes when any of the company's candidate ports belongs to
// the filtered area.
func matchesArea(c domain.Company, area string, ports catalog.Index[domain.Port]) bool {
	for _, id := range c.Ports() {
		p, ok := ports.Get(id)
		if !ok {
			continue
		}
		if p.AreaID.String() == area {
			return true
		}
	}
	return false
}

func matchesPort(c domain.Company, port string) bool {
	for _, id := range c.Ports() {
		if id.String() == port {
			return true
		}
	}
	return false
}

func matchesText(c domain.Company, query string) bool {
	haystack := c.Name
	if c.Description != nil {
		haystack += " " + *c.Description
	}
	return strings.Contains(Fold(haystack), Fold(query))
}
