package domain

import (
	"strings"
	"unicode/utf8"
)

// MinQueryLen is the minimum trimmed free-text length that makes a filter set
// queryable on its own.
const MinQueryLen = 3

// Filters is the tuple of active search criteria. Derived fresh from the URL
// on every navigation; never persisted anywhere else.
type Filters struct {
	Area    string
	Service string
	Port    string
	Query   string
	Page    int
}

// Active reports whether the set is valid for a remote query: at least one of
// service/port set, or a trimmed query of MinQueryLen or more. Gates both the
// submit affordance and the network call, so an under-filtered search never
// produces a spurious full-catalog listing.
func (f Filters) Active() bool {
	if f.Service != "" || f.Port != "" {
		return true
	}
	return utf8.RuneCountInString(strings.TrimSpace(f.Query)) >= MinQueryLen
}
