package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// DefaultListLimit applies when a listing asks for no limit.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Builder returns a squirrel statement builder using $N placeholders.
func Builder() squirrel.StatementBuilderType { return psql }

// GetOne runs query and scans exactly one row into a new T.
// Zero rows surface as pgx.ErrNoRows for MapError.
func GetOne[T any](ctx context.Context, q Querier, query squirrel.Sqlizer) (*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst T
	if err := pgxscan.Get(ctx, q, &dst, sql, args...); err != nil {
		return nil, err
	}
	return &dst, nil
}

// SelectAll runs query and scans every row. The result is never nil.
func SelectAll[T any](ctx context.Context, q Querier, query squirrel.Sqlizer) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	dst := []T{}
	if err := pgxscan.Select(ctx, q, &dst, sql, args...); err != nil {
		return nil, err
	}
	return dst, nil
}

// Exec runs a statement and returns the number of affected rows.
func Exec(ctx context.Context, q Querier, query squirrel.Sqlizer) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Count runs a single-column count query.
func Count(ctx context.Context, q Querier, query squirrel.Sqlizer) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Paginate applies limit and offset, clamping the limit to MaxListLimit.
func Paginate(query squirrel.SelectBuilder, limit, offset int) squirrel.SelectBuilder {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	query = query.Limit(uint64(limit))
	if offset > 0 {
		query = query.Offset(uint64(offset))
	}
	return query
}

// ILike builds a case-insensitive substring match over columns joined by OR.
func ILike(term string, columns ...string) squirrel.Or {
	or := make(squirrel.Or, 0, len(columns))
	for _, c := range columns {
		or = append(or, squirrel.ILike{c: "%" + term + "%"})
	}
	return or
}

// NullString stores empty strings as NULL.
func NullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
