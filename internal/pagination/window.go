// Package pagination computes the visible page-number window for a paged
// result list: a sliding window of up to windowSize numbers around the
// current page, with first/last always reachable through explicit edge
// entries and ellipsis markers.
package pagination

// windowSize is the maximum count of consecutive page numbers shown around
// the current page.
const windowSize = 5

// Entry is one pagination control: a page number, or an ellipsis marker when
// Ellipsis is set (Page is 0 for markers).
type Entry struct {
	Page     int
	Ellipsis bool
}

// Window is the computed pagination state for one render.
type Window struct {
	TotalPages int
	Current    int
	Pages      []Entry
	HasPrev    bool
	HasNext    bool
}

// Needed reports whether pagination controls should be rendered at all.
func (w Window) Needed() bool { return w.TotalPages > 1 }

// ComputeWindow derives the window from the full match count, the page size
// and the requested page. The window keeps its full size at the edges by
// shifting toward the far edge instead of shrinking.
func ComputeWindow(totalItems, pageSize, currentPage int) Window {
	totalPages := 1
	if pageSize > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}
	if totalPages < 1 {
		totalPages = 1
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	w := Window{
		TotalPages: totalPages,
		Current:    currentPage,
		HasPrev:    currentPage > 1,
		HasNext:    currentPage < totalPages,
	}
	if totalPages <= 1 {
		return w
	}

	half := windowSize / 2
	start := currentPage - half
	end := currentPage + half
	if start < 1 {
		end += 1 - start
		start = 1
	}
	if end > totalPages {
		start -= end - totalPages
		end = totalPages
	}
	if start < 1 {
		start = 1
	}

	if start > 1 {
		w.Pages = append(w.Pages, Entry{Page: 1})
		if start > 2 {
			w.Pages = append(w.Pages, Entry{Ellipsis: true})
		}
	}
	for p := start; p <= end; p++ {
		w.Pages = append(w.Pages, Entry{Page: p})
	}
	if end < totalPages {
		if end < totalPages-1 {
			w.Pages = append(w.Pages, Entry{Ellipsis: true})
		}
		w.Pages = append(w.Pages, Entry{Page: totalPages})
	}
	return w
}
