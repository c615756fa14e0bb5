// Package ranking orders scored players and slices them into pages. Ordering
// is deterministic: equal scores fall back to ascending player id, so the
// same inputs always paginate the same way.
package ranking

import "sort"

// Entry is one scored player in a ranked list. Payload carries the view row
// the caller wants back out in ranked order.
type Entry struct {
	PlayerID uint64
	Score    float64
	Payload  any
}

// PageMeta describes one page of a ranked list.
type PageMeta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// Rank sorts entries by score descending, ties broken by ascending player id.
// The sort is in place and total, so concatenating successive pages yields
// the full ordering with no gaps or duplicates.
func Rank(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
}

// Paginate returns the 1-based page of a ranked slice. Pages past the end are
// empty, never an error; page and pageSize are clamped to sane minimums.
func Paginate(entries []Entry, page, pageSize int) ([]Entry, PageMeta) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 25
	}
	total := len(entries)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	meta := PageMeta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    end < total,
	}
	return entries[start:end], meta
}
