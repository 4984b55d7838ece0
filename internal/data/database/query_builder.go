package database

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// ConditionType is the supported comparison operator set for list queries.
type ConditionType string

const (
	Equal ConditionType = "="
	ILike ConditionType = "ILIKE"

	defaultLimit  = -1
	defaultOffset = -1
)

// Condition is a single WHERE predicate on a sanitized column.
type Condition struct {
	Field string
	Type  ConditionType
	Value any
}

// WhereCond builds a condition on a column.
func WhereCond(field string, condType ConditionType, value any) Condition {
	return Condition{Field: field, Type: condType, Value: value}
}

// ListQueryOptions describes a list query over a single table.
type ListQueryOptions struct {
	Table      string
	Columns    []string
	Conditions []Condition
	OrderBy    string
	OrderDir   string
	Limit      int
	Offset     int
}

// ListQueryOption mutates ListQueryOptions.
type ListQueryOption func(*ListQueryOptions)

// NewListQueryOptions builds options for the given table.
func NewListQueryOptions(table string, opts ...ListQueryOption) *ListQueryOptions {
	options := &ListQueryOptions{
		Table:  table,
		Limit:  defaultLimit,
		Offset: defaultOffset,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithColumns sets the columns to select.
func WithColumns(cols ...string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Columns = cols
	}
}

// WithCondition adds a single condition.
func WithCondition(cond Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Conditions = append(o.Conditions, cond)
	}
}

// WithOrderBy sets the ordering column and direction.
func WithOrderBy(column, direction string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.OrderBy = column
		o.OrderDir = direction
	}
}

// WithLimit sets the limit. Accepts 0.
func WithLimit(limit int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if limit >= 0 {
			o.Limit = limit
		}
	}
}

// WithOffset sets the offset. Accepts 0.
func WithOffset(offset int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if offset >= 0 {
			o.Offset = offset
		}
	}
}

// sanitizeIdentifier quotes a single identifier for safe interpolation.
func sanitizeIdentifier(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

// BuildListQuery constructs a SQL query string and positional arguments from
// options, sanitizing every identifier. Conditions are ANDed in order.
func BuildListQuery(options *ListQueryOptions) (string, []any) {
	if options == nil {
		return "", nil
	}

	var query strings.Builder
	var args []any

	query.WriteString("SELECT ")
	if len(options.Columns) == 0 {
		query.WriteString("*")
	} else {
		cols := make([]string, len(options.Columns))
		for i, col := range options.Columns {
			cols[i] = sanitizeIdentifier(col)
		}
		query.WriteString(strings.Join(cols, ", "))
	}
	query.WriteString(" FROM ")
	query.WriteString(sanitizeIdentifier(options.Table))

	for i, cond := range options.Conditions {
		if i == 0 {
			query.WriteString(" WHERE ")
		} else {
			query.WriteString(" AND ")
		}
		args = append(args, cond.Value)
		fmt.Fprintf(&query, "%s %s $%d", sanitizeIdentifier(cond.Field), cond.Type, len(args))
	}

	if options.OrderBy != "" {
		query.WriteString(" ORDER BY ")
		query.WriteString(sanitizeIdentifier(options.OrderBy))
		if dir := strings.ToUpper(options.OrderDir); dir == "ASC" || dir == "DESC" {
			query.WriteString(" ")
			query.WriteString(dir)
		}
	}

	if options.Limit != defaultLimit {
		args = append(args, options.Limit)
		fmt.Fprintf(&query, " LIMIT $%d", len(args))
	}
	if options.Offset != defaultOffset {
		args = append(args, options.Offset)
		fmt.Fprintf(&query, " OFFSET $%d", len(args))
	}

	return query.String(), args
}
