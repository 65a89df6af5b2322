package store

import (
	"context"
	"errors"

	"postbox/internal/core/domain/model/kernel"
	"postbox/internal/pkg/query"
)

// Mapper converts between an aggregate and its model.
type Mapper[T any, M any] struct {
	ToDomain   func(*M) (T, error)
	FromDomain func(T) M
}

// Repository adapts a Store to aggregates of type T. It satisfies the
// ports.Finder, ports.Writer and ports.Deleter contracts for T.
type Repository[T kernel.Aggregate, M any, P record[M]] struct {
	store  *Store[M, P]
	mapper Mapper[T, M]
}

// NewRepository wraps s with mapper.
func NewRepository[T kernel.Aggregate, M any, P record[M]](s *Store[M, P], mapper Mapper[T, M]) *Repository[T, M, P] {
	return &Repository[T, M, P]{store: s, mapper: mapper}
}

// Store exposes the underlying store to adapters that extend the repository.
func (r *Repository[T, M, P]) Store() *Store[M, P] {
	return r.store
}

func (r *Repository[T, M, P]) List(ctx context.Context, spec query.Spec) ([]T, error) {
	rows, err := r.store.List(ctx, spec)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(rows))
	for i := range rows {
		item, mapErr := r.mapper.ToDomain(&rows[i])
		if mapErr != nil {
			return nil, mapErr
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository[T, M, P]) Single(ctx context.Context, spec query.Spec) (T, error) {
	row, err := r.store.Single(ctx, spec)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.mapper.ToDomain(&row)
}

// Add inserts a transient aggregate and tracks the stored identity on it.
func (r *Repository[T, M, P]) Add(ctx context.Context, item T) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, err
	}

	m := r.mapper.FromDomain(item)
	id, err := r.store.Add(ctx, P(&m))
	if err != nil {
		return 0, err
	}

	a := P(&m).audit()
	item.Track(id, a.CreatedOn, a.LastModifiedOn)
	return id, nil
}

// Update writes a stored aggregate and tracks the new LastModifiedOn on it.
func (r *Repository[T, M, P]) Update(ctx context.Context, item T) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.ID() == 0 {
		return errors.New("cannot update an aggregate that was never stored")
	}

	m := r.mapper.FromDomain(item)
	if err := r.store.Update(ctx, P(&m)); err != nil {
		return err
	}

	a := P(&m).audit()
	item.Track(a.ID, a.CreatedOn, a.LastModifiedOn)
	return nil
}

func (r *Repository[T, M, P]) Delete(ctx context.Context, spec query.Spec) error {
	return r.store.Delete(ctx, spec)
}

// AuditOf copies the identity of an aggregate into a model.
func AuditOf(item kernel.Aggregate) Audit {
	return Audit{
		ID:             item.ID(),
		CreatedOn:      item.CreatedOn(),
		LastModifiedOn: item.LastModifiedOn(),
	}
}

// RestoreEntity rebuilds the kernel identity stored in a.
func RestoreEntity(a Audit) (kernel.Entity, error) {
	return kernel.RestoreEntity(a.ID, a.CreatedOn.UTC(), a.LastModifiedOn.UTC())
}
