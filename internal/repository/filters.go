package repository

import "strings"

// SubmissionFilter narrows admin listing queries.
type SubmissionFilter struct {
	Search   string
	Status   string
	Sort     string
	Page     int
	PageSize int
}

// Columns the admin lists may sort by. Sort input is caller-supplied and
// reaches the ORDER BY clause, so only these names are ever interpolated.
var sortableColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"email":      true,
	"status":     true,
}

func (f SubmissionFilter) offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.limit()
}

func (f SubmissionFilter) limit() int {
	if f.PageSize < 1 {
		return 20
	}
	return f.PageSize
}

func (f SubmissionFilter) order() string {
	column, direction := "created_at", "DESC"

	parts := strings.Fields(f.Sort)
	if len(parts) > 0 && sortableColumns[parts[0]] {
		column = parts[0]
		if len(parts) > 1 && strings.EqualFold(parts[1], "asc") {
			direction = "ASC"
		}
	}

	return column + " " + direction
}

// StatusCounts groups record totals by notification outcome.
type StatusCounts struct {
	Total        int64
	Notified     int64
	NotifyFailed int64
}
