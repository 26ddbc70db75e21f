package domain

// Paging holds the pagination limits applied to every list operation.
type Paging struct {
	Default int
	Max     int
}

// Clamp normalizes page and limit and returns the resulting offset.
// Requested limits above Max are capped, never rejected. Callers echo the
// returned values so pagination metadata always matches the rows served.
func (p Paging) Clamp(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = p.Default
	}
	if limit > p.Max {
		limit = p.Max
	}
	return page, limit, (page - 1) * limit
}
