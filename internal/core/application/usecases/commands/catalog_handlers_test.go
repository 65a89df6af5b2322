package commands_test

import (
	"testing"
	"time"

	"postbox/internal/core/application/usecases/cards"
	"postbox/internal/core/application/usecases/commands"
	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/domain/model/user"
	"postbox/internal/core/domain/services"
	"postbox/internal/core/ports"
	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func category(t *testing.T, id int64, name string, fragile bool) *parcel.Category {
	t.Helper()
	c, err := parcel.RestoreCategory(entity(t, id), name, fragile)
	require.NoError(t, err)
	return c
}

func TestCreatePackageCommandHandler_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePackageCommand(9, 4, 10, 20, 30)
	require.NoError(t, err)

	// Given
	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.users.On("Single", ctx, query.New(query.Eq(ports.ColumnID, int64(9))).AsReadOnly()).
		Return(cardHolder(t, 9, "client@x.io", ""), nil).Once()
	uow.categories.On("Single", ctx, query.New(query.Eq(ports.ColumnID, int64(4))).AsReadOnly()).
		Return(category(t, 4, "Books", false), nil).Once()
	uow.parcels.On("Add", ctx, mock.MatchedBy(func(p *parcel.Parcel) bool {
		return p.OwnerID() == 9 &&
			p.CategoryID() == 4 &&
			p.Status() == parcel.Pending &&
			p.PostBoxID() == 0 &&
			p.Dimensions().Volume() == 6000
	})).Return(int64(77), nil).Once()

	// When
	h := commands.NewCreatePackageCommandHandler(catalogFactory{uow})
	id, err := h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
	uow.assertAll(t)
}

func TestCreatePackageCommandHandler_UnknownCategory(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreatePackageCommand(9, 99, 10, 20, 30)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.users.On("Single", ctx, mock.Anything).Return(cardHolder(t, 9, "client@x.io", ""), nil).Once()
	uow.categories.On("Single", ctx, mock.Anything).
		Return(nil, errs.NotFound("category.NOT_FOUND", "Package category not found")).Once()

	h := commands.NewCreatePackageCommandHandler(catalogFactory{uow})
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, parcel.ErrCategoryNotFound)
	uow.parcels.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.assertAll(t)
}

func TestCreatePackageCommandHandler_UnknownUser(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreatePackageCommand(9, 4, 10, 20, 30)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.users.On("Single", ctx, mock.Anything).
		Return(nil, errs.NotFound("user.NOT_FOUND", "User not found")).Once()

	h := commands.NewCreatePackageCommandHandler(catalogFactory{uow})
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, user.ErrNotFound)
	uow.assertAll(t)
}

func TestNewCreatePackageCommand_ReportsEveryInvalidSide(t *testing.T) {
	_, err := commands.NewCreatePackageCommand(9, 4, 0, 1001, 5)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "height")
	assert.Contains(t, err.Error(), "width")
	assert.NotContains(t, err.Error(), "depth")
}

func TestDeletePackageCommandHandler(t *testing.T) {
	tests := []struct {
		name      string
		deleteErr error
		commit    bool
		wantErr   error
	}{
		{"deletes", nil, true, nil},
		{"missing", errs.NotFound("package.NOT_FOUND", "Package not found"), false, parcel.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewDeletePackageCommand(17)
			require.NoError(t, err)

			uow := newMockUoW()
			uow.expectTx(ctx, tt.commit)
			uow.parcels.On("Delete", ctx, byID(17)).Return(tt.deleteErr).Once()

			h := commands.NewDeletePackageCommandHandler(catalogFactory{uow})
			err = h.Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			uow.assertAll(t)
		})
	}
}

func TestPurgeReceivedCommandHandler_DeletesStaleReceived(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPurgeReceivedCommand(testTime, 30*24*time.Hour)
	require.NoError(t, err)

	stale := []*parcel.Parcel{
		storedParcel(t, 3, 9, 1, parcel.Received),
		storedParcel(t, 8, 9, 2, parcel.Received),
	}

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.parcels.On("List", ctx, query.New(
		query.Eq(ports.ColumnParcelStatus, int64(parcel.Received)),
		query.Lt(ports.ColumnCreatedOn, testTime.Add(-30*24*time.Hour)),
	)).Return(stale, nil).Once()
	uow.parcels.On("Delete", ctx, query.New(query.In(ports.ColumnID, []int64{3, 8}))).Return(nil).Once()

	h := commands.NewPurgeReceivedCommandHandler(catalogFactory{uow})
	removed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	uow.assertAll(t)
}

func TestPurgeReceivedCommandHandler_NothingToPurge(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPurgeReceivedCommand(testTime, time.Hour)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.parcels.On("List", ctx, mock.Anything).Return([]*parcel.Parcel{}, nil).Once()

	h := commands.NewPurgeReceivedCommandHandler(catalogFactory{uow})
	removed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, removed)
	uow.parcels.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.assertAll(t)
}

func TestNewPurgeReceivedCommand_RejectsNonPositiveRetention(t *testing.T) {
	_, err := commands.NewPurgeReceivedCommand(testTime, 0)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOpenPickupLockersCommandHandler_OpensEveryDeliveredLocker(t *testing.T) {
	ctx := t.Context()
	client := cardHolder(t, 9, "client@x.io", "04AA", user.RoleClient)
	owned := []*parcel.Parcel{
		storedParcel(t, 11, 9, 3, parcel.Delivered),
		storedParcel(t, 12, 9, 5, parcel.Delivered),
	}

	readers := newMockUoW()
	readers.users.On("Single", ctx, cards.BySerial("04AA")).Return(client, nil).Once()
	readers.parcels.On("List", ctx, query.New(
		query.Eq(ports.ColumnParcelOwner, int64(9)),
		query.Eq(ports.ColumnParcelStatus, int64(parcel.Delivered)),
	).OrderBy(ports.ColumnID, query.Asc).AsReadOnly()).Return(owned, nil).Once()

	opener := new(MockLockerOpener)
	opener.On("Open", ctx, int64(3), int64(11), ports.OpenForPickup).Return(nil).Once()
	opener.On("Open", ctx, int64(5), int64(12), ports.OpenForPickup).Return(nil).Once()

	h := commands.NewOpenPickupLockersCommandHandler(readers, services.NewLockerGatekeeper(), opener)
	pickups, err := h.Handle(ctx, commands.NewOpenPickupLockersCommand("04AA"))

	require.NoError(t, err)
	assert.Equal(t, []services.Pickup{{LockerID: 3, PackageID: 11}, {LockerID: 5, PackageID: 12}}, pickups)
	readers.assertAll(t)
	opener.AssertExpectations(t)
}

func TestOpenPickupLockersCommandHandler_NothingDelivered(t *testing.T) {
	ctx := t.Context()
	readers := newMockUoW()
	readers.users.On("Single", ctx, cards.BySerial("04AA")).
		Return(cardHolder(t, 9, "client@x.io", "04AA"), nil).Once()
	readers.parcels.On("List", ctx, mock.Anything).Return([]*parcel.Parcel{}, nil).Once()

	opener := new(MockLockerOpener)
	h := commands.NewOpenPickupLockersCommandHandler(readers, services.NewLockerGatekeeper(), opener)
	_, err := h.Handle(ctx, commands.NewOpenPickupLockersCommand("04AA"))

	require.ErrorIs(t, err, parcel.ErrNoDeliveredPackages)
	opener.AssertNotCalled(t, "Open", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOpenPickupLockersCommandHandler_BlankSerial(t *testing.T) {
	h := commands.NewOpenPickupLockersCommandHandler(newMockUoW(), services.NewLockerGatekeeper(), new(MockLockerOpener))

	_, err := h.Handle(t.Context(), commands.NewOpenPickupLockersCommand(" "))

	require.ErrorIs(t, err, user.ErrCardNotFound)
}

func TestOpenLockerForPlacementCommandHandler(t *testing.T) {
	tests := []struct {
		name    string
		roles   []user.RoleName
		opens   bool
		wantErr error
	}{
		{"courier", []user.RoleName{user.RoleCourier}, true, nil},
		{"client", []user.RoleName{user.RoleClient}, false, parcel.ErrNotCourier},
		{"no roles", nil, false, parcel.ErrNotCourier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewOpenLockerForPlacementCommand("04C0", 3)
			require.NoError(t, err)

			readers := newMockUoW()
			readers.users.On("Single", ctx, cards.BySerial("04C0")).
				Return(cardHolder(t, 5, "c@x.io", "04C0", tt.roles...), nil).Once()

			opener := new(MockLockerOpener)
			if tt.opens {
				opener.On("Open", ctx, int64(3), int64(0), ports.OpenForPlacement).Return(nil).Once()
			}

			h := commands.NewOpenLockerForPlacementCommandHandler(readers, services.NewLockerGatekeeper(), opener)
			err = h.Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
			} else {
				require.NoError(t, err)
			}
			readers.assertAll(t)
			opener.AssertExpectations(t)
		})
	}
}

func TestNewOpenLockerForPlacementCommand_InvalidPostBox(t *testing.T) {
	_, err := commands.NewOpenLockerForPlacementCommand("04C0", 0)

	require.ErrorIs(t, err, parcel.ErrInvalidPostBox)
}
