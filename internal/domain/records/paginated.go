package records

// Page is one page of history rows plus navigation metadata.
type Page struct {
	Items      []HistoryRecord `json:"data"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	Total      int             `json:"totalItems"`
	TotalPages int             `json:"totalPages"`
	HasPrev    bool            `json:"hasPrev"`
	HasNext    bool            `json:"hasNext"`
}

const DefaultPageSize = 10

// Paginate slices rows for a 1-based page. Pages past the end come back
// empty rather than failing.
func Paginate(rows []HistoryRecord, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(rows)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{
		Items:      rows[start:end],
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    end < total,
	}
}
