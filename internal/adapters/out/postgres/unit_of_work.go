// Package postgres provides the GORM-based Unit of Work over every repository.
//
// A unit of work hands out repositories bound to its transaction once Begin has
// been called, and to the plain connection pool before that:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	p, err := uow.Parcels().Single(ctx, query.New(query.Eq(ports.ColumnID, id)))
//	if err != nil {
//	    return err
//	}
//	if err = p.StartDelivery(); err != nil {
//	    return err
//	}
//	if err = uow.Parcels().Update(ctx, p); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction, which
// the deferred call ignores.
//
// Instances are not safe for concurrent use; each request creates its own.
package postgres

import (
	"context"

	"postbox/internal/adapters/out/postgres/lockerrepo"
	"postbox/internal/adapters/out/postgres/parcelrepo"
	"postbox/internal/adapters/out/postgres/store"
	"postbox/internal/adapters/out/postgres/userrepo"
	"postbox/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db   *gorm.DB
	opts []store.Option
}

// NewGormUnitOfWorkFactory creates a factory on db. Options are passed to every
// repository the units of work create.
func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...store.Option) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, opts: opts}
}

// Create produces a fresh unit of work with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db, opts: f.opts}
}

// Repositories returns repositories bound to the pool. Each call runs in its own
// implicit transaction, so they suit reads that need no consistency across calls.
func (f *GormUnitOfWorkFactory) Repositories() ports.Repositories {
	return &GormUnitOfWork{db: f.db, opts: f.opts}
}

// GormUnitOfWork coordinates one database transaction.
type GormUnitOfWork struct {
	db   *gorm.DB
	tx   *gorm.DB
	opts []store.Option
}

// Begin starts a transaction. Calling it again while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit makes the transaction's changes permanent and closes it.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction's changes and closes it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Users() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow.opts...)
}

func (uow *GormUnitOfWork) Roles() ports.RoleRepository {
	return userrepo.NewGormRoleRepository(uow.conn(), uow.opts...)
}

func (uow *GormUnitOfWork) Assignments() ports.AssignmentRepository {
	return userrepo.NewGormAssignmentRepository(uow.conn(), uow.opts...)
}

func (uow *GormUnitOfWork) Parcels() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow.opts...)
}

func (uow *GormUnitOfWork) StatusLabels() ports.StatusLabelRepository {
	return parcelrepo.NewGormStatusLabelRepository(uow.conn(), uow.opts...)
}

func (uow *GormUnitOfWork) Categories() ports.CategoryRepository {
	return parcelrepo.NewGormCategoryRepository(uow.conn(), uow.opts...)
}

func (uow *GormUnitOfWork) Lockers() ports.LockerRepository {
	return lockerrepo.NewGormLockerRepository(uow.conn(), uow.opts...)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
