package commands_test

import (
	"context"
	"testing"
	"time"

	"postbox/internal/core/application/usecases/commands"
	"postbox/internal/core/domain/model/kernel"
	"postbox/internal/core/domain/model/locker"
	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/domain/model/user"
	"postbox/internal/core/ports"
	"postbox/internal/pkg/query"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) List(ctx context.Context, spec query.Spec) ([]*user.User, error) {
	args := m.Called(ctx, spec)
	items, _ := args.Get(0).([]*user.User)
	return items, args.Error(1)
}

func (m *MockUserRepository) Single(ctx context.Context, spec query.Spec) (*user.User, error) {
	args := m.Called(ctx, spec)
	item, _ := args.Get(0).(*user.User)
	return item, args.Error(1)
}

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

type MockRoleRepository struct{ mock.Mock }

func (m *MockRoleRepository) List(ctx context.Context, spec query.Spec) ([]*user.Role, error) {
	args := m.Called(ctx, spec)
	items, _ := args.Get(0).([]*user.Role)
	return items, args.Error(1)
}

func (m *MockRoleRepository) Single(ctx context.Context, spec query.Spec) (*user.Role, error) {
	args := m.Called(ctx, spec)
	item, _ := args.Get(0).(*user.Role)
	return item, args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) List(ctx context.Context, spec query.Spec) ([]*user.Assignment, error) {
	args := m.Called(ctx, spec)
	items, _ := args.Get(0).([]*user.Assignment)
	return items, args.Error(1)
}

func (m *MockAssignmentRepository) Single(ctx context.Context, spec query.Spec) (*user.Assignment, error) {
	args := m.Called(ctx, spec)
	item, _ := args.Get(0).(*user.Assignment)
	return item, args.Error(1)
}

func (m *MockAssignmentRepository) Add(ctx context.Context, a *user.Assignment) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *user.Assignment) error {
	return m.Called(ctx, a).Error(0)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) List(ctx context.Context, spec query.Spec) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, spec)
	items, _ := args.Get(0).([]*parcel.Parcel)
	return items, args.Error(1)
}

func (m *MockParcelRepository) Single(ctx context.Context, spec query.Spec) (*parcel.Parcel, error) {
	args := m.Called(ctx, spec)
	item, _ := args.Get(0).(*parcel.Parcel)
	return item, args.Error(1)
}

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Delete(ctx context.Context, spec query.Spec) error {
	return m.Called(ctx, spec).Error(0)
}

type MockStatusLabelRepository struct{ mock.Mock }

func (m *MockStatusLabelRepository) List(ctx context.Context, spec query.Spec) ([]*parcel.StatusLabel, error) {
	args := m.Called(ctx, spec)
	items, _ := args.Get(0).([]*parcel.StatusLabel)
	return items, args.Error(1)
}

func (m *MockStatusLabelRepository) Single(ctx context.Context, spec query.Spec) (*parcel.StatusLabel, error) {
	args := m.Called(ctx, spec)
	item, _ := args.Get(0).(*parcel.StatusLabel)
	return item, args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) List(ctx context.Context, spec query.Spec) ([]*parcel.Category, error) {
	args := m.Called(ctx, spec)
	items, _ := args.Get(0).([]*parcel.Category)
	return items, args.Error(1)
}

func (m *MockCategoryRepository) Single(ctx context.Context, spec query.Spec) (*parcel.Category, error) {
	args := m.Called(ctx, spec)
	item, _ := args.Get(0).(*parcel.Category)
	return item, args.Error(1)
}

type MockLockerRepository struct{ mock.Mock }

func (m *MockLockerRepository) List(ctx context.Context, spec query.Spec) ([]*locker.Locker, error) {
	args := m.Called(ctx, spec)
	items, _ := args.Get(0).([]*locker.Locker)
	return items, args.Error(1)
}

func (m *MockLockerRepository) Single(ctx context.Context, spec query.Spec) (*locker.Locker, error) {
	args := m.Called(ctx, spec)
	item, _ := args.Get(0).(*locker.Locker)
	return item, args.Error(1)
}

func (m *MockLockerRepository) Occupy(ctx context.Context, l *locker.Locker) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLockerRepository) Release(ctx context.Context, postBoxID, packageID int64) error {
	return m.Called(ctx, postBoxID, packageID).Error(0)
}

// MockUoW satisfies every unit of work interface the handlers declare.
type MockUoW struct {
	mock.Mock

	users        *MockUserRepository
	roles        *MockRoleRepository
	assignments  *MockAssignmentRepository
	parcels      *MockParcelRepository
	statusLabels *MockStatusLabelRepository
	categories   *MockCategoryRepository
	lockers      *MockLockerRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		users:        new(MockUserRepository),
		roles:        new(MockRoleRepository),
		assignments:  new(MockAssignmentRepository),
		parcels:      new(MockParcelRepository),
		statusLabels: new(MockStatusLabelRepository),
		categories:   new(MockCategoryRepository),
		lockers:      new(MockLockerRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) Users() ports.UserRepository               { return m.users }
func (m *MockUoW) Roles() ports.RoleRepository               { return m.roles }
func (m *MockUoW) Assignments() ports.AssignmentRepository   { return m.assignments }
func (m *MockUoW) Parcels() ports.ParcelRepository           { return m.parcels }
func (m *MockUoW) StatusLabels() ports.StatusLabelRepository { return m.statusLabels }
func (m *MockUoW) Categories() ports.CategoryRepository      { return m.categories }
func (m *MockUoW) Lockers() ports.LockerRepository           { return m.lockers }

// expectTx registers Begin and the deferred Rollback; commit adds Commit in between.
func (m *MockUoW) expectTx(ctx context.Context, commit bool) {
	m.On("Begin", ctx).Return(nil).Once()
	if commit {
		m.On("Commit", ctx).Return(nil).Once()
	}
	m.On("Rollback", ctx).Return(nil).Once()
}

func (m *MockUoW) assertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.roles.AssertExpectations(t)
	m.assignments.AssertExpectations(t)
	m.parcels.AssertExpectations(t)
	m.statusLabels.AssertExpectations(t)
	m.categories.AssertExpectations(t)
	m.lockers.AssertExpectations(t)
}

type mockFactory struct{ uow *MockUoW }

func (f mockFactory) Create() commands.LifecycleUoW { return f.uow }

type userFactory struct{ uow *MockUoW }

func (f userFactory) Create() commands.UserUoW { return f.uow }

type registrationFactory struct{ uow *MockUoW }

func (f registrationFactory) Create() commands.RegistrationUoW { return f.uow }

type catalogFactory struct{ uow *MockUoW }

func (f catalogFactory) Create() commands.CatalogUoW { return f.uow }

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) error {
	return m.Called(ctx, n).Error(0)
}

type MockLockerOpener struct{ mock.Mock }

func (m *MockLockerOpener) Open(ctx context.Context, lockerID, packageID int64, reason string) error {
	return m.Called(ctx, lockerID, packageID, reason).Error(0)
}

func entity(t *testing.T, id int64) kernel.Entity {
	t.Helper()
	e, err := kernel.RestoreEntity(id, testTime, testTime)
	require.NoError(t, err)
	return e
}

func role(t *testing.T, id int64, name user.RoleName) *user.Role {
	t.Helper()
	r, err := user.RestoreRole(entity(t, id), string(name))
	require.NoError(t, err)
	return r
}

func cardHolder(t *testing.T, id int64, email, serial string, roles ...user.RoleName) *user.User {
	t.Helper()
	loaded := make([]*user.Role, 0, len(roles))
	for i, name := range roles {
		loaded = append(loaded, role(t, int64(i+1), name))
	}
	var s *string
	if serial != "" {
		s = &serial
	}
	u, err := user.RestoreUser(entity(t, id), email, s, loaded)
	require.NoError(t, err)
	return u
}

func storedParcel(t *testing.T, id, ownerID, postBoxID int64, status parcel.Status) *parcel.Parcel {
	t.Helper()
	dims, err := parcel.NewDimensions(10, 20, 30)
	require.NoError(t, err)
	p, err := parcel.RestoreParcel(entity(t, id), ownerID, 1, dims, postBoxID, status)
	require.NoError(t, err)
	return p
}

func statusLabel(t *testing.T, s parcel.Status) *parcel.StatusLabel {
	t.Helper()
	l, err := parcel.RestoreStatusLabel(entity(t, int64(s)), s.String())
	require.NoError(t, err)
	return l
}

func byID(id int64) query.Spec {
	return query.New(query.Eq(ports.ColumnID, id))
}
