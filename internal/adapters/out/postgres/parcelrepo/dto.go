// Package parcelrepo provides models and mapping functions for packages and their
// reference tables (delivery statuses, categories).
package parcelrepo

import (
	"postbox/internal/adapters/out/postgres/store"
	"postbox/internal/core/domain/model/parcel"
)

// ParcelDTO maps the packages table. DeliveryStatusID is the parcel.Status code.
type ParcelDTO struct {
	store.Audit
	Height           int
	Width            int
	Depth            int
	PostBoxID        int64
	UserID           int64
	CategoryID       int64
	DeliveryStatusID int64
}

func (ParcelDTO) TableName() string {
	return "packages"
}

// StatusLabelDTO maps delivery_statuses; ID is the status code.
type StatusLabelDTO struct {
	store.Audit
	Name string
}

func (StatusLabelDTO) TableName() string {
	return "delivery_statuses"
}

// CategoryDTO maps package_categories.
type CategoryDTO struct {
	store.Audit
	Name      string
	IsFragile bool
}

func (CategoryDTO) TableName() string {
	return "package_categories"
}

func parcelFromDomain(p *parcel.Parcel) ParcelDTO {
	d := p.Dimensions()
	return ParcelDTO{
		Audit:            store.AuditOf(p),
		Height:           d.Height(),
		Width:            d.Width(),
		Depth:            d.Depth(),
		PostBoxID:        p.PostBoxID(),
		UserID:           p.OwnerID(),
		CategoryID:       p.CategoryID(),
		DeliveryStatusID: int64(p.Status()),
	}
}

func parcelToDomain(dto *ParcelDTO) (*parcel.Parcel, error) {
	entity, err := store.RestoreEntity(dto.Audit)
	if err != nil {
		return nil, err
	}

	dims, err := parcel.NewDimensions(dto.Height, dto.Width, dto.Depth)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		entity,
		dto.UserID,
		dto.CategoryID,
		dims,
		dto.PostBoxID,
		parcel.Status(dto.DeliveryStatusID),
	)
}

func labelFromDomain(l *parcel.StatusLabel) StatusLabelDTO {
	return StatusLabelDTO{Audit: store.AuditOf(l), Name: l.Name()}
}

func labelToDomain(dto *StatusLabelDTO) (*parcel.StatusLabel, error) {
	entity, err := store.RestoreEntity(dto.Audit)
	if err != nil {
		return nil, err
	}
	return parcel.RestoreStatusLabel(entity, dto.Name)
}

func categoryFromDomain(c *parcel.Category) CategoryDTO {
	return CategoryDTO{Audit: store.AuditOf(c), Name: c.Name(), IsFragile: c.IsFragile()}
}

func categoryToDomain(dto *CategoryDTO) (*parcel.Category, error) {
	entity, err := store.RestoreEntity(dto.Audit)
	if err != nil {
		return nil, err
	}
	return parcel.RestoreCategory(entity, dto.Name, dto.IsFragile)
}
