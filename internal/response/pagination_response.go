package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// NewPagination derives the full pagination block from a 1-based page, the
// page size and the exact total row count.
func NewPagination(page, pageSize int, total int64) *Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	totalPages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPages++
	}

	from := (page-1)*pageSize + 1
	to := page * pageSize
	if int64(to) > total {
		to = int(total)
	}
	if total == 0 {
		from, to = 0, 0
	}

	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
}
