// Package urlstate keeps the filter state page-addressable: filters are read
// from and written to the URL query string and nowhere else. Writes
// distinguish silent in-place updates (replace) from navigational updates
// (push) so back-button granularity matches user intent.
package urlstate

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/jordibmorey/nauticards/internal/domain"
)

// Query parameter names. servicio/puerto keep the public site's historical
// names; renaming them would break every bookmarked search.
const (
	ParamArea    = "area"
	ParamService = "servicio"
	ParamPort    = "puerto"
	ParamQuery   = "q"
	ParamPage    = "page"
	ParamLang    = "lang"
)

// Read parses the query component into a filter set, defaulting page to 1
// and everything else to empty.
func Read(q url.Values) domain.Filters {
	page, err := strconv.Atoi(q.Get(ParamPage))
	if err != nil || page < 1 {
		page = 1
	}
	return domain.Filters{
		Area:    q.Get(ParamArea),
		Service: q.Get(ParamService),
		Port:    q.Get(ParamPort),
		Query:   q.Get(ParamQuery),
		Page:    page,
	}
}

// Write merges changes into a copy of q. A value of nil, empty string or
// false removes the parameter; anything else is stringified and set.
func Write(q url.Values, changes map[string]any) url.Values {
	out := url.Values{}
	for k, vs := range q {
		out[k] = append([]string(nil), vs...)
	}
	for k, v := range changes {
		switch x := v.(type) {
		case nil:
			out.Del(k)
		case string:
			if x == "" {
				out.Del(k)
			} else {
				out.Set(k, x)
			}
		case bool:
			if !x {
				out.Del(k)
			} else {
				out.Set(k, "true")
			}
		default:
			out.Set(k, fmt.Sprint(x))
		}
	}
	return out
}
