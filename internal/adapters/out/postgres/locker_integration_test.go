package postgres_test

import (
	"context"
	"errors"
	"sync"

	"postbox/internal/core/domain/model/locker"
	"postbox/internal/core/domain/model/user"
	"postbox/internal/core/ports"
	"postbox/internal/pkg/query"
)

func (suite *UnitOfWorkIntegrationTestSuite) TestLockers_OccupyCreatesRow() {
	ctx := context.Background()
	owner := suite.createUser(ctx, "owner@example.com", user.RoleClient)
	pkg := suite.addParcel(ctx, owner.ID())

	// Given
	l, err := locker.NewLocker(7)
	suite.Require().NoError(err)
	suite.Require().NoError(l.Occupy(pkg))

	// When
	err = suite.factory.Create().Lockers().Occupy(ctx, l)

	// Then
	suite.Require().NoError(err)
	suite.Equal(int64(7), l.ID())

	stored, err := suite.factory.Create().Lockers().Single(ctx, query.New(query.Eq(ports.ColumnID, 7)).AsReadOnly())
	suite.Require().NoError(err)
	occupant, ok := stored.OccupiedBy()
	suite.True(ok)
	suite.Equal(pkg, occupant)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLockers_OccupiedSlotRejectsOtherPackage() {
	ctx := context.Background()
	owner := suite.createUser(ctx, "owner@example.com", user.RoleClient)
	first := suite.addParcel(ctx, owner.ID())
	second := suite.addParcel(ctx, owner.ID())
	lockers := suite.factory.Create().Lockers()

	// Given
	suite.Require().NoError(lockers.Occupy(ctx, occupied(suite, 3, first)))

	// When
	err := lockers.Occupy(ctx, occupied(suite, 3, second))

	// Then
	suite.True(errors.Is(err, locker.ErrOccupied))
	suite.Require().NoError(lockers.Occupy(ctx, occupied(suite, 3, first)), "Same package may re-occupy")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLockers_Release() {
	ctx := context.Background()
	owner := suite.createUser(ctx, "owner@example.com", user.RoleClient)
	first := suite.addParcel(ctx, owner.ID())
	second := suite.addParcel(ctx, owner.ID())
	lockers := suite.factory.Create().Lockers()
	suite.Require().NoError(lockers.Occupy(ctx, occupied(suite, 5, first)))

	// Releasing with the wrong package is a no-op
	suite.Require().NoError(lockers.Release(ctx, 5, second))
	suite.True(errors.Is(lockers.Occupy(ctx, occupied(suite, 5, second)), locker.ErrOccupied))

	// Releasing with the occupant frees the slot
	suite.Require().NoError(lockers.Release(ctx, 5, first))
	suite.Require().NoError(lockers.Occupy(ctx, occupied(suite, 5, second)))

	// Releasing an unknown slot is a no-op
	suite.Require().NoError(lockers.Release(ctx, 99, first))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLockers_DeletingPackageFreesSlot() {
	ctx := context.Background()
	owner := suite.createUser(ctx, "owner@example.com", user.RoleClient)
	pkg := suite.addParcel(ctx, owner.ID())
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Lockers().Occupy(ctx, occupied(suite, 9, pkg)))

	suite.Require().NoError(uow.Parcels().Delete(ctx, query.New(query.Eq(ports.ColumnID, pkg))))

	stored, err := uow.Lockers().Single(ctx, query.New(query.Eq(ports.ColumnID, 9)).AsReadOnly())
	suite.Require().NoError(err)
	_, ok := stored.OccupiedBy()
	suite.False(ok)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLockers_ConcurrentOccupyHasOneWinner() {
	ctx := context.Background()
	owner := suite.createUser(ctx, "owner@example.com", user.RoleClient)

	const contenders = 8
	packages := make([]int64, contenders)
	for i := range packages {
		packages[i] = suite.addParcel(ctx, owner.ID())
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  int
		rejected int
	)
	for _, pkg := range packages {
		wg.Add(1)
		go func(pkg int64) {
			defer wg.Done()

			l, err := locker.NewLocker(11)
			if err != nil {
				return
			}
			if err = l.Occupy(pkg); err != nil {
				return
			}

			uow := suite.factory.Create()
			if err = uow.Begin(ctx); err != nil {
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			err = uow.Lockers().Occupy(ctx, l)
			if err == nil {
				err = uow.Commit(ctx)
			}

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners++
			case errors.Is(err, locker.ErrOccupied):
				rejected++
			}
		}(pkg)
	}
	wg.Wait()

	suite.Equal(1, winners)
	suite.Equal(contenders-1, rejected)
}

func occupied(suite *UnitOfWorkIntegrationTestSuite, postBoxID, packageID int64) *locker.Locker {
	l, err := locker.NewLocker(postBoxID)
	suite.Require().NoError(err)
	suite.Require().NoError(l.Occupy(packageID))
	return l
}
