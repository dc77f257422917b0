// Package orm wraps GORM with a small chainable query API and owns the
// pagination arithmetic used by every listing endpoint.
package orm

import (
	"time"

	"github.com/shashiranjanraj/shinyflakes/pkg/database"
	"github.com/shashiranjanraj/shinyflakes/pkg/metrics"
	"gorm.io/gorm"
)

// Defaults applied when a caller passes zero/negative pagination values.
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// Pagination describes one page of a counted result set.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination normalises page/limit and derives totalPages = ceil(total/limit).
// A zero total yields zero totalPages.
func NewPagination(page, limit int, total int64) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Cacher is the read-through cache the Query.Cache helper uses.
// Wired to pkg/cache at boot; nil means caching is disabled.
type Cacher interface {
	Get(key string, dest interface{}) bool
	Set(key string, value interface{}, ttl time.Duration) error
}

var CacheStore Cacher

// Query is a thin chainable wrapper over *gorm.DB.
type Query struct {
	db *gorm.DB
}

// DB starts a query against the global database connection.
func DB() *Query {
	return &Query{db: database.DB}
}

// With starts a query against an explicit connection (used by tests).
func With(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Select(columns string) *Query {
	return &Query{db: q.db.Select(columns)}
}

func (q *Query) Group(name string) *Query {
	return &Query{db: q.db.Group(name)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

func (q *Query) Offset(n int) *Query {
	return &Query{db: q.db.Offset(n)}
}

// Get runs the query and scans all rows into dest.
func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

// First scans the first matching row into dest.
// Returns gorm.ErrRecordNotFound when nothing matches.
func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

// Scan runs the query and scans rows into dest without model inference.
// Used for aggregate projections (GROUP BY ... COUNT).
func (q *Query) Scan(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Scan(dest).Error
}

// Count counts matching rows without fetching them.
func (q *Query) Count(total *int64) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Count(total).Error
}

// Create inserts v.
func (q *Query) Create(v interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(v).Error
}

// Save persists all fields of v.
func (q *Query) Save(v interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Save(v).Error
}

// Delete removes v.
func (q *Query) Delete(v interface{}, conds ...interface{}) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return q.db.Delete(v, conds...).Error
}

// GetWithPagination counts the filtered set, then fetches the requested
// page into dest. Invalid page/limit fall back to the defaults; a page past
// the end simply scans zero rows.
func (q *Query) GetWithPagination(dest interface{}, page, limit int) (Pagination, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	var total int64
	if err := q.Count(&total); err != nil {
		return Pagination{}, err
	}

	offset := (page - 1) * limit
	if err := q.Offset(offset).Limit(limit).Get(dest); err != nil {
		return Pagination{}, err
	}

	return NewPagination(page, limit, total), nil
}

// Cache runs the query through CacheStore: on a hit dest is filled from the
// cache, on a miss the rows are fetched and stored under key for ttl.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if CacheStore != nil && CacheStore.Get(key, dest) {
		return nil
	}

	if err := q.Get(dest); err != nil {
		return err
	}

	if CacheStore != nil {
		return CacheStore.Set(key, dest, ttl)
	}
	return nil
}
