package parcelrepo

import (
	"postbox/internal/adapters/out/postgres/store"
	"postbox/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GormParcelRepository implements ports.ParcelRepository.
type GormParcelRepository struct {
	*store.Repository[*parcel.Parcel, ParcelDTO, *ParcelDTO]
}

// NewGormParcelRepository creates a package repository on db.
func NewGormParcelRepository(db *gorm.DB, opts ...store.Option) *GormParcelRepository {
	s := store.New[ParcelDTO](db, store.Entity{Code: "package", Name: "Package"}, opts...)
	return &GormParcelRepository{store.NewRepository(s, store.Mapper[*parcel.Parcel, ParcelDTO]{
		ToDomain:   parcelToDomain,
		FromDomain: parcelFromDomain,
	})}
}

// GormStatusLabelRepository implements ports.StatusLabelRepository.
type GormStatusLabelRepository struct {
	*store.Repository[*parcel.StatusLabel, StatusLabelDTO, *StatusLabelDTO]
}

// NewGormStatusLabelRepository creates a delivery status repository on db.
func NewGormStatusLabelRepository(db *gorm.DB, opts ...store.Option) *GormStatusLabelRepository {
	s := store.New[StatusLabelDTO](db, store.Entity{Code: "status", Name: "Status"}, opts...)
	return &GormStatusLabelRepository{store.NewRepository(s, store.Mapper[*parcel.StatusLabel, StatusLabelDTO]{
		ToDomain:   labelToDomain,
		FromDomain: labelFromDomain,
	})}
}

// GormCategoryRepository implements ports.CategoryRepository.
type GormCategoryRepository struct {
	*store.Repository[*parcel.Category, CategoryDTO, *CategoryDTO]
}

// NewGormCategoryRepository creates a package category repository on db.
func NewGormCategoryRepository(db *gorm.DB, opts ...store.Option) *GormCategoryRepository {
	s := store.New[CategoryDTO](db, store.Entity{Code: "category", Name: "Package category"}, opts...)
	return &GormCategoryRepository{store.NewRepository(s, store.Mapper[*parcel.Category, CategoryDTO]{
		ToDomain:   categoryToDomain,
		FromDomain: categoryFromDomain,
	})}
}
