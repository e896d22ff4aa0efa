package pagination

// Metadata describes one page of a listing.
type Metadata struct {
	Total      int64 `json:"total"`       // rows across all pages
	Page       int   `json:"page"`        // 1-based
	Limit      int   `json:"limit"`       // rows per page
	TotalPages int   `json:"total_pages"` // at least 1
}
