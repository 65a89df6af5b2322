// Package queries contains read operations. Queries never write and run outside
// any transaction; they return read models rather than aggregates.
package queries

import (
	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/ports"
)

type (
	UserReader interface {
		Users() ports.UserRepository
	}

	ParcelReader interface {
		Parcels() ports.ParcelRepository
	}

	// Readers gives queries the repositories they read from.
	Readers interface {
		UserReader
		ParcelReader
	}
)

// PackageResponse is the read model of one package.
type PackageResponse struct {
	ID         int64
	UserID     int64
	CategoryID int64
	Height     int
	Width      int
	Depth      int
	PostBoxID  int64
	Status     parcel.Status
}

func packageResponse(p *parcel.Parcel) PackageResponse {
	d := p.Dimensions()
	return PackageResponse{
		ID:         p.ID(),
		UserID:     p.OwnerID(),
		CategoryID: p.CategoryID(),
		Height:     d.Height(),
		Width:      d.Width(),
		Depth:      d.Depth(),
		PostBoxID:  p.PostBoxID(),
		Status:     p.Status(),
	}
}
