package postgres_test

import (
	"context"
	"errors"
	"testing"

	postgresadapter "postbox/internal/adapters/out/postgres"
	"postbox/internal/adapters/out/postgres/pgtest"
	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/domain/model/user"
	"postbox/internal/core/ports"
	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/query"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work and every repository
// against a migrated PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Stop(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.Users())
	suite.NotNil(uow1.Parcels())
	suite.NotNil(uow2.Lockers())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ReferenceDataIsSeeded() {
	ctx := context.Background()
	uow := suite.factory.Create()

	labels, err := uow.StatusLabels().List(ctx, query.All().OrderBy(ports.ColumnID, query.Asc).AsReadOnly())
	suite.Require().NoError(err)
	suite.Require().Len(labels, 4)
	suite.Equal(parcel.Pending, labels[0].Status())
	suite.Equal("In Progress", labels[1].Name())
	suite.Equal(parcel.Received, labels[3].Status())

	categories, err := uow.Categories().List(ctx, query.All().AsReadOnly())
	suite.Require().NoError(err)
	suite.Len(categories, 5)

	roles, err := uow.Roles().List(ctx, query.All().AsReadOnly())
	suite.Require().NoError(err)
	suite.Len(roles, 2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UserWithRoles() {
	ctx := context.Background()

	// Given
	courier := suite.createUser(ctx, "courier@example.com", user.RoleCourier)

	// When
	uow := suite.factory.Create()
	loaded, err := uow.Users().Single(ctx,
		query.New(query.Eq(ports.ColumnID, courier.ID())).Include(ports.RelationUserRoles).AsReadOnly())

	// Then
	suite.Require().NoError(err)
	suite.Equal("courier@example.com", loaded.Email())
	suite.True(loaded.HasRole(user.RoleCourier))
	suite.False(loaded.HasRole(user.RoleClient))
	suite.False(loaded.CreatedOn().IsZero())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UserWithoutIncludeHasNoRoles() {
	ctx := context.Background()
	created := suite.createUser(ctx, "client@example.com", user.RoleClient)

	loaded, err := suite.factory.Create().Users().Single(ctx,
		query.New(query.Eq(ports.ColumnID, created.ID())).AsReadOnly())

	suite.Require().NoError(err)
	suite.Empty(loaded.Roles())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateEmailIsConflict() {
	ctx := context.Background()
	suite.createUser(ctx, "dup@example.com", user.RoleClient)

	u, err := user.NewUser("dup@example.com")
	suite.Require().NoError(err)

	_, err = suite.factory.Create().Users().Add(ctx, u)

	suite.Require().Error(err)
	suite.Equal(errs.KindConflict, errs.KindOf(err))
	suite.Equal("user.ADD_ERROR", code(err))
	suite.True(u.IsTransient(), "Failed add must not track an identity")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateSerialIsConflict() {
	ctx := context.Background()
	first := suite.createUser(ctx, "first@example.com", user.RoleClient)
	second := suite.createUser(ctx, "second@example.com", user.RoleClient)

	users := suite.factory.Create().Users()
	_, err := first.BindNfc("04A1B2C3")
	suite.Require().NoError(err)
	suite.Require().NoError(users.Update(ctx, first))

	_, err = second.BindNfc("04A1B2C3")
	suite.Require().NoError(err)
	err = users.Update(ctx, second)

	suite.Require().Error(err)
	suite.Equal(errs.KindConflict, errs.KindOf(err))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleNotFound() {
	ctx := context.Background()

	_, err := suite.factory.Create().Parcels().Single(ctx, query.New(query.Eq(ports.ColumnID, 424242)).AsReadOnly())

	suite.Require().Error(err)
	suite.True(errors.Is(err, parcel.ErrNotFound))
	suite.Equal(errs.KindNotFound, errs.KindOf(err))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	owner := suite.createUser(ctx, "owner@example.com", user.RoleClient)
	p := suite.newParcel(ctx, owner.ID())

	// Given
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	id, err := uow.Parcels().Add(ctx, p)
	suite.Require().NoError(err)

	_, err = uow.Parcels().Single(ctx, query.New(query.Eq(ports.ColumnID, id)))
	suite.Require().NoError(err, "Row should be visible inside the transaction")

	// When
	suite.Require().NoError(uow.Commit(ctx))

	// Then
	loaded, err := suite.factory.Create().Parcels().Single(ctx, query.New(query.Eq(ports.ColumnID, id)).AsReadOnly())
	suite.Require().NoError(err)
	suite.Equal(parcel.Pending, loaded.Status())
	suite.Equal(owner.ID(), loaded.OwnerID())
	suite.Equal(p.Dimensions().Volume(), loaded.Dimensions().Volume())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()
	owner := suite.createUser(ctx, "owner@example.com", user.RoleClient)

	// Given
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	id, err := uow.Parcels().Add(ctx, suite.newParcel(ctx, owner.ID()))
	suite.Require().NoError(err)

	// When
	suite.Require().NoError(uow.Rollback(ctx))

	// Then
	_, err = suite.factory.Create().Parcels().Single(ctx, query.New(query.Eq(ports.ColumnID, id)).AsReadOnly())
	suite.True(errors.Is(err, parcel.ErrNotFound))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StaleUpdateIsConflict() {
	ctx := context.Background()
	owner := suite.createUser(ctx, "owner@example.com", user.RoleClient)
	id := suite.addParcel(ctx, owner.ID())

	// Given two readers of the same row
	spec := query.New(query.Eq(ports.ColumnID, id)).AsReadOnly()
	first, err := suite.factory.Create().Parcels().Single(ctx, spec)
	suite.Require().NoError(err)
	second, err := suite.factory.Create().Parcels().Single(ctx, spec)
	suite.Require().NoError(err)

	// When both write
	suite.Require().NoError(first.StartDelivery())
	suite.Require().NoError(suite.factory.Create().Parcels().Update(ctx, first))

	suite.Require().NoError(second.StartDelivery())
	err = suite.factory.Create().Parcels().Update(ctx, second)

	// Then the second write loses
	suite.Require().Error(err)
	suite.Equal("package.UPDATE_ERROR", code(err))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UnknownReferenceIsConflict() {
	ctx := context.Background()
	dims, err := parcel.NewDimensions(10, 10, 10)
	suite.Require().NoError(err)
	p, err := parcel.NewParcel(999, 999, dims)
	suite.Require().NoError(err)

	_, err = suite.factory.Create().Parcels().Add(ctx, p)

	suite.Require().Error(err)
	suite.Equal(errs.KindConflict, errs.KindOf(err))
	suite.Equal("package.UPDATE_ERROR", code(err))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SpecOperators() {
	ctx := context.Background()
	owner := suite.createUser(ctx, "owner@example.com", user.RoleClient)
	other := suite.createUser(ctx, "other@example.com", user.RoleClient)
	a := suite.addParcel(ctx, owner.ID())
	b := suite.addParcel(ctx, owner.ID())
	c := suite.addParcel(ctx, other.ID())

	parcels := suite.factory.Create().Parcels()

	owned, err := parcels.List(ctx, query.New(query.Eq(ports.ColumnParcelOwner, owner.ID())).
		OrderBy(ports.ColumnID, query.Desc).AsReadOnly())
	suite.Require().NoError(err)
	suite.Require().Len(owned, 2)
	suite.Equal(b, owned[0].ID())
	suite.Equal(a, owned[1].ID())

	picked, err := parcels.List(ctx, query.New(query.In(ports.ColumnID, []int64{a, c})).AsReadOnly())
	suite.Require().NoError(err)
	suite.Len(picked, 2)

	none, err := parcels.List(ctx, query.New(
		query.Ne(ports.ColumnParcelStatus, int64(parcel.Pending)),
	).AsReadOnly())
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Delete() {
	ctx := context.Background()
	owner := suite.createUser(ctx, "owner@example.com", user.RoleClient)
	id := suite.addParcel(ctx, owner.ID())
	parcels := suite.factory.Create().Parcels()

	err := parcels.Delete(ctx, query.All())
	suite.Equal(errs.KindValidation, errs.KindOf(err), "Unconditional delete must be refused")

	suite.Require().NoError(parcels.Delete(ctx, query.New(query.Eq(ports.ColumnID, id))))

	err = parcels.Delete(ctx, query.New(query.Eq(ports.ColumnID, id)))
	suite.True(errors.Is(err, parcel.ErrNotFound))
}

func (suite *UnitOfWorkIntegrationTestSuite) createUser(ctx context.Context, email string, role user.RoleName) *user.User {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	u, err := user.NewUser(email)
	suite.Require().NoError(err)
	_, err = uow.Users().Add(ctx, u)
	suite.Require().NoError(err)

	r, err := uow.Roles().Single(ctx, query.New(query.Eq(ports.ColumnRoleName, string(role))).AsReadOnly())
	suite.Require().NoError(err)

	a, err := user.NewAssignment(u.ID(), r.ID())
	suite.Require().NoError(err)
	_, err = uow.Assignments().Add(ctx, a)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Commit(ctx))
	return u
}

func (suite *UnitOfWorkIntegrationTestSuite) newParcel(ctx context.Context, ownerID int64) *parcel.Parcel {
	category, err := suite.factory.Create().Categories().Single(ctx,
		query.New(query.Eq("name", "Books")).AsReadOnly())
	suite.Require().NoError(err)

	dims, err := parcel.NewDimensions(30, 20, 10)
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(ownerID, category.ID(), dims)
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) addParcel(ctx context.Context, ownerID int64) int64 {
	id, err := suite.factory.Create().Parcels().Add(ctx, suite.newParcel(ctx, ownerID))
	suite.Require().NoError(err)
	return id
}

func code(err error) string {
	described, ok := errs.Describe(err)
	if !ok {
		return ""
	}
	return described.Code
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
