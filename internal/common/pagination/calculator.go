// Package pagination converts 1-based page numbers into LIMIT/OFFSET windows.
package pagination

// NormalizePage clamps page numbers below 1 to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// CalculateOffset calculates the OFFSET for a 1-based page. Pages below 1
// are treated as page 1.
//
// Formula: offset = (page - 1) * limit
//
// Examples:
//   - Page 1, Limit 6 -> Offset 0
//   - Page 2, Limit 6 -> Offset 6
//   - Page 0, Limit 6 -> Offset 0
func CalculateOffset(page, limit int) int {
	return (NormalizePage(page) - 1) * limit
}

// CalculateTotalPages calculates the total number of pages based on total items and limit.
// Uses ceiling division; an empty result still has one page.
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 || limit <= 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// NewMetadata describes page of a result with total rows and limit rows per page.
func NewMetadata(total int64, page, limit int) Metadata {
	return Metadata{
		Total:      total,
		Page:       NormalizePage(page),
		Limit:      limit,
		TotalPages: CalculateTotalPages(total, limit),
	}
}
