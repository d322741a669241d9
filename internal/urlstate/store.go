package urlstate

import (
	"net/url"

	"github.com/jordibmorey/nauticards/internal/domain"
)

// Store binds typed filter reads and writes to a History. The filter set is
// derived fresh from the current URL on every read and never cached.
type Store struct {
	hist *History
}

func NewStore(h *History) *Store { return &Store{hist: h} }

// Read parses the current URL's query into a filter set.
func (s *Store) Read() domain.Filters {
	u, err := url.Parse(s.hist.Current())
	if err != nil {
		return domain.Filters{Page: 1}
	}
	return Read(u.Query())
}

// Location returns the current URL's path and query, for building hrefs that
// keep every active filter.
func (s *Store) Location() (string, url.Values) {
	u, err := url.Parse(s.hist.Current())
	if err != nil {
		return "/", url.Values{}
	}
	return u.Path, u.Query()
}

// Write merges changes into the current URL. replace=true updates the
// history entry in place (incidental changes: typing, toggling a filter);
// replace=false pushes a new entry (intentional navigation: submit, page
// change).
func (s *Store) Write(changes map[string]any, replace bool) {
	u, err := url.Parse(s.hist.Current())
	if err != nil {
		u = &url.URL{Path: "/"}
	}
	u.RawQuery = Write(u.Query(), changes).Encode()
	if replace {
		s.hist.Replace(u.String())
	} else {
		s.hist.Push(u.String())
	}
}
