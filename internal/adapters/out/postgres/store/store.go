// Package store implements condition-based CRUD over one GORM model type.
//
// Every table has an int64 primary key and two audit columns. Embedding Audit in a
// model is what makes it storable:
//
//	type UserDTO struct {
//	    store.Audit
//	    Email string
//	}
//
//	users := store.New[UserDTO](db, store.Entity{Code: "user", Name: "User"})
//	u, err := users.Single(ctx, query.New(query.Eq("email", "a@b.com")))
//
// Audit timestamps are stamped here and nowhere else: CreatedOn on insert,
// LastModifiedOn on every write. Update is optimistic: it only matches the row
// if its LastModifiedOn is still the value that was read.
//
// Storage failures are translated once, at this boundary:
//   - unique violation (23505) -> Conflict "<entity>.ADD_ERROR"
//   - foreign key violation (23503) -> Conflict "<entity>.DELETE_ERROR" during
//     Delete, "<entity>.UPDATE_ERROR" otherwise
//   - any other constraint or serialization failure on write -> Conflict
//     "<entity>.UPDATE_ERROR"
//   - nothing matched -> NotFound "<entity>.NOT_FOUND"
//
// Failures that are not PostgreSQL errors (lost connection, cancelled context)
// are returned wrapped and untranslated.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/query"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgreSQL SQLSTATE codes this package reacts to.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Audit holds the columns shared by every table.
type Audit struct {
	ID             int64     `gorm:"primaryKey"`
	CreatedOn      time.Time `gorm:"not null"`
	LastModifiedOn time.Time `gorm:"not null"`
}

func (a *Audit) audit() *Audit { return a }

// Record is implemented by pointers to models embedding Audit.
type Record interface {
	audit() *Audit
}

type record[M any] interface {
	*M
	Record
}

// Entity names a table for error codes ("user") and messages ("User").
type Entity struct {
	Code string
	Name string
}

// Option configures a Store.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now as the source of audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Store is the generic repository over model M.
type Store[M any, P record[M]] struct {
	db     *gorm.DB
	entity Entity
	now    func() time.Time
}

// New creates a Store for model M on db.
func New[M any, P record[M]](db *gorm.DB, entity Entity, opts ...Option) *Store[M, P] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[M, P]{db: db, entity: entity, now: o.now}
}

// Entity returns the names used in error codes.
func (s *Store[M, P]) Entity() Entity {
	return s.entity
}

// List returns all rows matching spec.
func (s *Store[M, P]) List(ctx context.Context, spec query.Spec) ([]M, error) {
	var rows []M
	if err := s.read(ctx, spec).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s where %s: %w", s.entity.Code, spec, err)
	}
	return rows, nil
}

// Single returns the first row matching spec.
func (s *Store[M, P]) Single(ctx context.Context, spec query.Spec) (M, error) {
	var (
		rows []M
		zero M
	)
	if err := s.read(ctx, spec).Limit(1).Find(&rows).Error; err != nil {
		return zero, fmt.Errorf("get %s where %s: %w", s.entity.Code, spec, err)
	}
	if len(rows) == 0 {
		return zero, s.NotFound(spec)
	}
	return rows[0], nil
}

// Add inserts m and returns its primary key. A preset primary key is kept.
func (s *Store[M, P]) Add(ctx context.Context, m P) (int64, error) {
	now := s.stamp()
	a := m.audit()
	a.CreatedOn = now
	a.LastModifiedOn = now

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		a.CreatedOn, a.LastModifiedOn = time.Time{}, time.Time{}
		return 0, s.translate(err, false)
	}

	return a.ID, nil
}

// Update writes every column of m except the primary key and CreatedOn.
func (s *Store[M, P]) Update(ctx context.Context, m P) error {
	a := m.audit()
	if a.ID == 0 {
		return s.updateError(errors.New("record has no primary key"))
	}

	previous := a.LastModifiedOn
	a.LastModifiedOn = s.stamp()

	result := s.db.WithContext(ctx).
		Model(m).
		Select("*").
		Omit("ID", "CreatedOn", clause.Associations).
		Where(clause.Eq{Column: clause.Column{Name: "last_modified_on"}, Value: previous}).
		Updates(m)
	if result.Error != nil {
		a.LastModifiedOn = previous
		return s.translate(result.Error, false)
	}

	if result.RowsAffected == 0 {
		a.LastModifiedOn = previous
		return s.updateError(fmt.Errorf("%s %d was modified concurrently or no longer exists", s.entity.Code, a.ID))
	}

	return nil
}

// Delete removes every row matching spec.
func (s *Store[M, P]) Delete(ctx context.Context, spec query.Spec) error {
	if spec.Unconditional() {
		return errs.Validation(s.entity.Code+".DELETE_ERROR", "Delete requires at least one condition")
	}

	result := where(s.db.WithContext(ctx), spec).Delete(P(new(M)))
	if result.Error != nil {
		return s.translate(result.Error, true)
	}

	if result.RowsAffected == 0 {
		return s.NotFound(spec)
	}

	return nil
}

// NotFound builds the "<entity>.NOT_FOUND" error for spec.
func (s *Store[M, P]) NotFound(spec query.Spec) error {
	return errs.NotFound(s.entity.Code+".NOT_FOUND", s.entity.Name+" not found").
		WithCause(fmt.Errorf("no %s where %s", s.entity.Code, spec))
}

// DB returns the connection the store runs on, for adapters that need a
// statement query.Spec cannot express.
func (s *Store[M, P]) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Stamp returns the current audit timestamp.
func (s *Store[M, P]) Stamp() time.Time {
	return s.stamp()
}

// Translate maps a write failure the way Add and Update do.
func (s *Store[M, P]) Translate(err error) error {
	return s.translate(err, false)
}

func (s *Store[M, P]) stamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *Store[M, P]) read(ctx context.Context, spec query.Spec) *gorm.DB {
	db := where(s.db.WithContext(ctx), spec)

	for _, o := range spec.Orders() {
		db = db.Order(clause.OrderByColumn{
			Column: clause.Column{Name: o.Column},
			Desc:   o.Direction == query.Desc,
		})
	}

	for _, relation := range spec.Includes() {
		db = db.Preload(relation)
	}

	if !spec.ReadOnly() {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	return db
}

func (s *Store[M, P]) translate(err error, deleting bool) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("write %s: %w", s.entity.Code, err)
	}

	switch {
	case pgErr.Code == uniqueViolation:
		return errs.Conflict(s.entity.Code+".ADD_ERROR", "Failed to add "+s.entity.Name).WithCause(err)
	case pgErr.Code == foreignKeyViolation && deleting:
		return errs.Conflict(s.entity.Code+".DELETE_ERROR", "Failed to delete "+s.entity.Name).WithCause(err)
	default:
		return s.updateError(err)
	}
}

func (s *Store[M, P]) updateError(cause error) error {
	return errs.Conflict(s.entity.Code+".UPDATE_ERROR", "Failed to update "+s.entity.Name).WithCause(cause)
}

func where(db *gorm.DB, spec query.Spec) *gorm.DB {
	conditions := spec.Conditions()
	if len(conditions) == 0 {
		return db
	}

	exprs := make([]clause.Expression, 0, len(conditions))
	for _, c := range conditions {
		exprs = append(exprs, expression(c))
	}
	return db.Clauses(clause.Where{Exprs: exprs})
}

func expression(c query.Condition) clause.Expression {
	col := clause.Column{Name: c.Column}

	switch c.Op {
	case query.OpNe:
		return clause.Neq{Column: col, Value: c.Value}
	case query.OpGt:
		return clause.Gt{Column: col, Value: c.Value}
	case query.OpGte:
		return clause.Gte{Column: col, Value: c.Value}
	case query.OpLt:
		return clause.Lt{Column: col, Value: c.Value}
	case query.OpLte:
		return clause.Lte{Column: col, Value: c.Value}
	case query.OpIn:
		return clause.IN{Column: col, Values: values(c.Value)}
	case query.OpIsNull:
		return clause.Eq{Column: col, Value: nil}
	case query.OpNotNull:
		return clause.Neq{Column: col, Value: nil}
	default:
		return clause.Eq{Column: col, Value: c.Value}
	}
}
