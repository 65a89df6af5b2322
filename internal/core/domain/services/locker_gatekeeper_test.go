package services_test

import (
	"testing"
	"time"

	"postbox/internal/core/domain/model/kernel"
	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/domain/model/user"
	"postbox/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entity(t *testing.T, id int64) kernel.Entity {
	t.Helper()
	now := time.Now().UTC()
	e, err := kernel.RestoreEntity(id, now, now)
	require.NoError(t, err)
	return e
}

func holder(t *testing.T, id int64, roles ...user.RoleName) *user.User {
	t.Helper()
	rs := make([]*user.Role, 0, len(roles))
	for i, name := range roles {
		r, err := user.RestoreRole(entity(t, int64(i+1)), string(name))
		require.NoError(t, err)
		rs = append(rs, r)
	}
	serial := "SERIAL"
	u, err := user.RestoreUser(entity(t, id), "u@example.com", &serial, rs)
	require.NoError(t, err)
	return u
}

func pkg(t *testing.T, id, owner int64, status parcel.Status, postBoxID int64) *parcel.Parcel {
	t.Helper()
	d, _ := parcel.NewDimensions(1, 1, 1)
	p, err := parcel.RestoreParcel(entity(t, id), owner, 1, d, postBoxID, status)
	require.NoError(t, err)
	return p
}

func TestLockerGatekeeper_CheckBinding(t *testing.T) {
	gatekeeper := services.NewLockerGatekeeper()
	inLocker := []*parcel.Parcel{
		pkg(t, 41, 8, parcel.Received, 3),
		pkg(t, 42, 7, parcel.Delivered, 3),
	}

	t.Run("owner is bound", func(t *testing.T) {
		bound, err := gatekeeper.CheckBinding(inLocker, 3, 42, holder(t, 7))

		require.NoError(t, err)
		assert.True(t, bound)
	})

	t.Run("other user is not bound", func(t *testing.T) {
		bound, err := gatekeeper.CheckBinding(inLocker, 3, 42, holder(t, 8))

		require.NoError(t, err)
		assert.False(t, bound)
	})

	t.Run("package not delivered in this locker", func(t *testing.T) {
		_, err := gatekeeper.CheckBinding(inLocker, 3, 41, holder(t, 8))
		require.ErrorIs(t, err, parcel.ErrNotFound)

		_, err = gatekeeper.CheckBinding(inLocker, 4, 42, holder(t, 7))
		require.ErrorIs(t, err, parcel.ErrNotFound)
	})
}

func TestLockerGatekeeper_AuthorizePickup(t *testing.T) {
	gatekeeper := services.NewLockerGatekeeper()
	inLocker := []*parcel.Parcel{pkg(t, 42, 7, parcel.Delivered, 3)}

	require.NoError(t, gatekeeper.AuthorizePickup(inLocker, 3, 42, holder(t, 7)))
	require.ErrorIs(t, gatekeeper.AuthorizePickup(inLocker, 3, 42, holder(t, 8)), parcel.ErrLockerNotBound)
}

func TestLockerGatekeeper_AuthorizeCourier(t *testing.T) {
	gatekeeper := services.NewLockerGatekeeper()

	require.NoError(t, gatekeeper.AuthorizeCourier(holder(t, 1, user.RoleClient, user.RoleCourier)))
	require.ErrorIs(t, gatekeeper.AuthorizeCourier(holder(t, 1, user.RoleClient)), parcel.ErrNotCourier)
	require.ErrorIs(t, gatekeeper.AuthorizeCourier(holder(t, 1)), parcel.ErrNotCourier)
}

func TestLockerGatekeeper_Pickups(t *testing.T) {
	gatekeeper := services.NewLockerGatekeeper()

	t.Run("only delivered packages in a locker owned by the holder", func(t *testing.T) {
		owned := []*parcel.Parcel{
			pkg(t, 1, 7, parcel.Delivered, 3),
			pkg(t, 2, 7, parcel.Pending, 0),
			pkg(t, 3, 7, parcel.Received, 5),
			pkg(t, 4, 8, parcel.Delivered, 6),
			pkg(t, 5, 7, parcel.Delivered, 9),
		}

		pickups, err := gatekeeper.Pickups(holder(t, 7), owned)

		require.NoError(t, err)
		assert.Equal(t, []services.Pickup{
			{LockerID: 3, PackageID: 1},
			{LockerID: 9, PackageID: 5},
		}, pickups)
	})

	t.Run("empty result is not found", func(t *testing.T) {
		pickups, err := gatekeeper.Pickups(holder(t, 7), []*parcel.Parcel{pkg(t, 2, 7, parcel.Pending, 0)})

		require.ErrorIs(t, err, parcel.ErrNoDeliveredPackages)
		assert.Nil(t, pickups)
	})
}
