package services

import "strings"

// OrderDirection is the sort direction for post listings. The zero
// value is Descending, which keeps recency-first as the default.
type OrderDirection int

const (
	Descending OrderDirection = iota
	Ascending
)

// SQL returns the keyword for the direction. User input never reaches
// the query text directly; it only selects one of these two branches.
func (d OrderDirection) SQL() string {
	switch d {
	case Ascending:
		return "ASC"
	default:
		return "DESC"
	}
}

// ParseOrderDirection maps a query-string value to a direction.
// Anything other than "asc" (case-insensitive) means Descending.
func ParseOrderDirection(s string) OrderDirection {
	if strings.EqualFold(s, "asc") {
		return Ascending
	}
	return Descending
}

// ListParams carries validated pagination, search, and ordering inputs
// for the post listing operations.
type ListParams struct {
	Offset         int64
	Limit          int64
	Search         string // empty means no search filter
	OrderBy        string
	OrderDirection OrderDirection
}

// orderFields is the set of columns a caller may sort by. The sort
// field gets interpolated into the query text, so only values from
// this set ever pass through; everything else falls back to the
// default. Column identifiers cannot be bound as parameters.
var orderFields = map[string]bool{
	"id":         true,
	"title":      true,
	"created_at": true,
	"updated_at": true,
	"view_count": true,
	"like_count": true,
}

const defaultOrderField = "created_at"

// normalized clamps pagination to non-negative values and resolves the
// sort field against the whitelist. Unknown fields default silently.
func (p ListParams) normalized() ListParams {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit < 0 {
		p.Limit = 0
	}
	if !orderFields[p.OrderBy] {
		p.OrderBy = defaultOrderField
	}
	return p
}
