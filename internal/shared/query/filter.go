package query

import "helpdesk/internal/shared/constants"

type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return constants.DefaultPageSize
	}
	if f.PageSize > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return f.PageSize
}

// Unpaged reports whether the caller asked for every row.
func (f PageFilter) Unpaged() bool {
	return f.Page <= 0 && f.PageSize <= 0
}
