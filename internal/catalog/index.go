// Package catalog builds the per-load lookup indexes over the small static
// catalogs (services, ports, regions, areas). Indexes are rebuilt whenever
// catalogs are (re)loaded and treated as immutable afterwards.
package catalog

import "github.com/jordibmorey/nauticards/internal/domain"

// Index maps the canonical string form of an identifier to its record.
// Records with an empty identifier are skipped silently; on duplicate
// identifiers the last record wins.
type Index[T any] map[string]T

// BuildIndex indexes records by the identifier the id func extracts.
func BuildIndex[T any](records []T, id func(T) domain.ID) Index[T] {
	idx := make(Index[T], len(records))
	for _, r := range records {
		k := id(r)
		if k == "" {
			continue
		}
		idx[k.String()] = r
	}
	return idx
}

// Get looks a record up by any identifier representation.
func (ix Index[T]) Get(key any) (T, bool) {
	v, ok := ix[domain.NormalizeID(key).String()]
	return v, ok
}

// Catalogs bundles the indexed catalogs plus the full company list for one
// load. Built once per process per language; assumed static for the session.
type Catalogs struct {
	Services     Index[domain.Service]
	PortServices Index[domain.Service]
	Ports        Index[domain.Port]
	Regions      Index[domain.Region]
	Areas        Index[domain.Area]
	Companies    []domain.Company
}

// New indexes the raw catalog slices.
func New(services, portServices []domain.Service, ports []domain.Port, regions []domain.Region, areas []domain.Area, companies []domain.Company) *Catalogs {
	return &Catalogs{
		Services:     BuildIndex(services, func(s domain.Service) domain.ID { return s.ID }),
		PortServices: BuildIndex(portServices, func(s domain.Service) domain.ID { return s.ID }),
		Ports:        BuildIndex(ports, func(p domain.Port) domain.ID { return p.ID }),
		Regions:      BuildIndex(regions, func(r domain.Region) domain.ID { return r.ID }),
		Areas:        BuildIndex(areas, func(a domain.Area) domain.ID { return a.ID }),
		Companies:    companies,
	}
}

// ServiceName resolves a service id to its display name, falling back to the
// port-services catalog, then to empty string.
func (c *Catalogs) ServiceName(id domain.ID) string {
	if s, ok := c.Services.Get(id); ok {
		return s.Name
	}
	if s, ok := c.PortServices.Get(id); ok {
		return s.Name
	}
	return ""
}

// PortName resolves a port id to its display name, or empty string.
func (c *Catalogs) PortName(id domain.ID) string {
	if p, ok := c.Ports.Get(id); ok {
		return p.Name
	}
	return ""
}
