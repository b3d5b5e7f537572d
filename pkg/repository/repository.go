// Package repository is the Go counterpart of the generated PHP repositories:
// a generic data-access interface with a gorm implementation. Query failures
// are logged and reported as zero values, never returned.
package repository

import (
	"context"
)

// DefaultPerPage is the page size used when none is given
const DefaultPerPage = 15

// Query narrows a read
type Query struct {
	Relations   []string // Associations to preload
	WithTrashed bool     // Include soft-deleted rows
	Selects     []string // Columns to select, all when empty
}

// Page is one page of results
type Page[T any] struct {
	Items   []T
	Total   int64
	Page    int
	PerPage int
}

// LastPage returns the number of the last page
func (p Page[T]) LastPage() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 1
	}
	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// Repository is the data-access surface every generated repository exposes
type Repository[T any] interface {
	Exists(ctx context.Context, key string, value any, withTrashed bool) bool
	GetByAttribute(ctx context.Context, key string, value any, q Query) *T
	Paginate(ctx context.Context, page, perPage int, q Query) Page[T]
	Store(ctx context.Context, entity *T) *T
	GetByID(ctx context.Context, id any, q Query) *T
	Search(ctx context.Context, key, value string, q Query) []T
	GetAll(ctx context.Context, q Query) []T
	CountAll(ctx context.Context, withTrashed bool) int64
	Selectable(ctx context.Context, key, attr string) map[string]string
	Update(ctx context.Context, id any, values map[string]any) *T
	Destroy(ctx context.Context, id any) bool
	DestroyAll(ctx context.Context) bool
	DestroyByIDs(ctx context.Context, ids []any) int64
	ForceDelete(ctx context.Context, id any) bool
	Restore(ctx context.Context, id any) bool
}
