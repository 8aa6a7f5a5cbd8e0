package listkit

/* ===============================
   Pagination math
=================================*/

// Page is the slice window for one page of a filtered collection.
// Start/End index into the filtered slice; Page is the requested page
// clamped into [1, TotalPages].
type Page struct {
	Start      int `json:"start"`
	End        int `json:"end"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

// Paginate computes the window for page over a collection of filteredLen
// elements. TotalPages is never below 1; an empty collection yields the
// window [0,0) on page 1. Callers must request page 1 again whenever the
// filter inputs change, so a stale page from a larger result set never
// renders empty.
func Paginate(filteredLen, page, perPage int) Page {
	if perPage < 1 {
		perPage = 1
	}
	totalPages := (filteredLen + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > filteredLen {
		start = filteredLen
	}
	if end > filteredLen {
		end = filteredLen
	}

	return Page{Start: start, End: end, Page: page, TotalPages: totalPages}
}

// Slice applies the window to the filtered collection.
func Slice[T any](filtered []T, p Page) []T {
	return filtered[p.Start:p.End]
}
