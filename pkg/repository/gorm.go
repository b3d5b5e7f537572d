package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm implements Repository over a gorm connection
type Gorm[T any] struct {
	db *gorm.DB
}

var _ Repository[struct{}] = (*Gorm[struct{}])(nil)

var deletedAtType = reflect.TypeOf(gorm.DeletedAt{})

// NewGorm creates a repository for T. It panics when db is nil.
func NewGorm[T any](db *gorm.DB) *Gorm[T] {
	if db == nil {
		panic("repository: database cannot be nil")
	}
	return &Gorm[T]{db: db}
}

// Exists reports whether a row has key equal to value
func (r *Gorm[T]) Exists(ctx context.Context, key string, value any, withTrashed bool) bool {
	var count int64
	err := r.scope(ctx, withTrashed).Model(new(T)).Where(eq(key, value)).Limit(1).Count(&count).Error
	if err != nil {
		r.logError("exists", err)
		return false
	}
	return count > 0
}

// GetByAttribute returns the first row with key equal to value, or nil
func (r *Gorm[T]) GetByAttribute(ctx context.Context, key string, value any, q Query) *T {
	var entity T
	if err := r.query(ctx, q).Where(eq(key, value)).First(&entity).Error; err != nil {
		r.logMiss("get by attribute", err)
		return nil
	}
	return &entity
}

// Paginate returns the requested page. Pages start at 1.
func (r *Gorm[T]) Paginate(ctx context.Context, page, perPage int, q Query) Page[T] {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	result := Page[T]{Page: page, PerPage: perPage}
	if err := r.scope(ctx, q.WithTrashed).Model(new(T)).Count(&result.Total).Error; err != nil {
		r.logError("paginate", err)
		return result
	}

	if err := r.query(ctx, q).Limit(perPage).Offset((page - 1) * perPage).Find(&result.Items).Error; err != nil {
		r.logError("paginate", err)
	}
	return result
}

// Store inserts entity and returns it, or nil on failure
func (r *Gorm[T]) Store(ctx context.Context, entity *T) *T {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		r.logError("store", err)
		return nil
	}
	return entity
}

// GetByID returns the row with primary key id, or nil
func (r *Gorm[T]) GetByID(ctx context.Context, id any, q Query) *T {
	var entity T
	if err := r.query(ctx, q).Where(eq(r.primaryKey(), id)).First(&entity).Error; err != nil {
		r.logMiss("get by id", err)
		return nil
	}
	return &entity
}

// Search returns every row whose key column contains value
func (r *Gorm[T]) Search(ctx context.Context, key, value string, q Query) []T {
	var entities []T
	like := clause.Like{Column: clause.Column{Name: key}, Value: "%" + value + "%"}
	if err := r.query(ctx, q).Where(like).Find(&entities).Error; err != nil {
		r.logError("search", err)
		return nil
	}
	return entities
}

// GetAll returns every row
func (r *Gorm[T]) GetAll(ctx context.Context, q Query) []T {
	var entities []T
	if err := r.query(ctx, q).Find(&entities).Error; err != nil {
		r.logError("get all", err)
		return nil
	}
	return entities
}

// CountAll returns the number of rows
func (r *Gorm[T]) CountAll(ctx context.Context, withTrashed bool) int64 {
	var count int64
	if err := r.scope(ctx, withTrashed).Model(new(T)).Count(&count).Error; err != nil {
		r.logError("count all", err)
		return 0
	}
	return count
}

// Selectable maps the attr column to the key column for every row, for
// building select inputs
func (r *Gorm[T]) Selectable(ctx context.Context, key, attr string) map[string]string {
	var rows []map[string]any
	err := r.db.WithContext(ctx).Model(new(T)).Select([]string{attr, key}).Find(&rows).Error
	if err != nil {
		r.logError("selectable", err)
		return nil
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[text(row[attr])] = text(row[key])
	}
	return out
}

// Update applies values to the row with primary key id and returns it
// reloaded, or nil when the row does not exist
func (r *Gorm[T]) Update(ctx context.Context, id any, values map[string]any) *T {
	entity := r.GetByID(ctx, id, Query{})
	if entity == nil {
		return nil
	}

	if err := r.db.WithContext(ctx).Model(entity).Updates(values).Error; err != nil {
		r.logError("update", err)
		return nil
	}
	return r.GetByID(ctx, id, Query{})
}

// Destroy deletes the row with primary key id, softly when T supports it
func (r *Gorm[T]) Destroy(ctx context.Context, id any) bool {
	entity := r.GetByID(ctx, id, Query{})
	if entity == nil {
		return false
	}

	tx := r.db.WithContext(ctx).Delete(entity)
	if tx.Error != nil {
		r.logError("destroy", tx.Error)
		return false
	}
	return tx.RowsAffected > 0
}

// DestroyAll deletes every row
func (r *Gorm[T]) DestroyAll(ctx context.Context) bool {
	err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(T)).Error
	if err != nil {
		r.logError("destroy all", err)
		return false
	}
	return true
}

// DestroyByIDs deletes the rows whose primary key is in ids and returns how
// many were deleted
func (r *Gorm[T]) DestroyByIDs(ctx context.Context, ids []any) int64 {
	if len(ids) == 0 {
		return 0
	}

	in := clause.IN{Column: clause.Column{Name: r.primaryKey()}, Values: ids}
	tx := r.db.WithContext(ctx).Where(in).Delete(new(T))
	if tx.Error != nil {
		r.logError("destroy by ids", tx.Error)
		return 0
	}
	return tx.RowsAffected
}

// ForceDelete permanently deletes the row with primary key id, including a
// soft-deleted one
func (r *Gorm[T]) ForceDelete(ctx context.Context, id any) bool {
	entity := r.GetByID(ctx, id, Query{WithTrashed: true})
	if entity == nil {
		return false
	}

	tx := r.db.WithContext(ctx).Unscoped().Delete(entity)
	if tx.Error != nil {
		r.logError("force delete", tx.Error)
		return false
	}
	return tx.RowsAffected > 0
}

// Restore undeletes a soft-deleted row. Types without soft deletes always
// return false.
func (r *Gorm[T]) Restore(ctx context.Context, id any) bool {
	field := r.deletedAtColumn()
	if field == "" {
		logrus.Warnf("Restore called on %s which has no soft deletes", r.table())
		return false
	}

	entity := r.GetByID(ctx, id, Query{WithTrashed: true})
	if entity == nil {
		return false
	}

	tx := r.db.WithContext(ctx).Unscoped().Model(entity).Update(field, nil)
	if tx.Error != nil {
		r.logError("restore", tx.Error)
		return false
	}
	return tx.RowsAffected > 0
}

func (r *Gorm[T]) scope(ctx context.Context, withTrashed bool) *gorm.DB {
	db := r.db.WithContext(ctx)
	if withTrashed {
		db = db.Unscoped()
	}
	return db
}

func (r *Gorm[T]) query(ctx context.Context, q Query) *gorm.DB {
	db := r.scope(ctx, q.WithTrashed)
	for _, relation := range q.Relations {
		db = db.Preload(relation)
	}
	if len(q.Selects) > 0 {
		db = db.Select(q.Selects)
	}
	return db
}

func (r *Gorm[T]) statement() *gorm.Statement {
	stmt := &gorm.Statement{DB: r.db}
	if err := stmt.Parse(new(T)); err != nil {
		logrus.Debugf("Failed to parse model schema: %v", err)
		return nil
	}
	return stmt
}

func (r *Gorm[T]) primaryKey() string {
	if stmt := r.statement(); stmt != nil && stmt.Schema.PrioritizedPrimaryField != nil {
		return stmt.Schema.PrioritizedPrimaryField.DBName
	}
	return "id"
}

func (r *Gorm[T]) deletedAtColumn() string {
	stmt := r.statement()
	if stmt == nil {
		return ""
	}
	for _, field := range stmt.Schema.Fields {
		if field.FieldType == deletedAtType {
			return field.DBName
		}
	}
	return ""
}

func (r *Gorm[T]) table() string {
	if stmt := r.statement(); stmt != nil {
		return stmt.Schema.Table
	}
	return fmt.Sprintf("%T", *new(T))
}

func (r *Gorm[T]) logError(op string, err error) {
	logrus.WithError(err).WithField("table", r.table()).Errorf("Repository %s failed", op)
}

// logMiss logs query failures, not missing rows
func (r *Gorm[T]) logMiss(op string, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	r.logError(op, err)
}

func text(v any) string {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return fmt.Sprint(v)
}

func eq(column string, value any) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: column}, Value: value}
}
