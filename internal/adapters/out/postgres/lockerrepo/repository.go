// Package lockerrepo stores locker occupancy. Occupy and Release are single
// conditional statements, so concurrent placements into one slot cannot both win.
package lockerrepo

import (
	"context"

	"postbox/internal/adapters/out/postgres/store"
	"postbox/internal/core/domain/model/locker"
	"postbox/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LockerDTO maps the lockers table. ID is the post box id.
type LockerDTO struct {
	store.Audit
	OccupiedByPackageID *int64
}

func (LockerDTO) TableName() string {
	return "lockers"
}

// GormLockerRepository implements ports.LockerRepository.
type GormLockerRepository struct {
	*store.Repository[*locker.Locker, LockerDTO, *LockerDTO]
}

// NewGormLockerRepository creates a locker repository on db.
func NewGormLockerRepository(db *gorm.DB, opts ...store.Option) *GormLockerRepository {
	s := store.New[LockerDTO](db, store.Entity{Code: "locker", Name: "Locker"}, opts...)
	return &GormLockerRepository{store.NewRepository(s, store.Mapper[*locker.Locker, LockerDTO]{
		ToDomain:   toDomain,
		FromDomain: fromDomain,
	})}
}

// Occupy upserts the locker row with l's occupant. The update branch only fires
// while the slot is free or already holds the same package:
//
//	INSERT INTO lockers (...) VALUES (...)
//	ON CONFLICT (id) DO UPDATE SET occupied_by_package_id = excluded..., last_modified_on = excluded...
//	WHERE lockers.occupied_by_package_id IS NULL
//	   OR lockers.occupied_by_package_id = excluded.occupied_by_package_id
//
// Zero affected rows means another package holds the slot.
func (r *GormLockerRepository) Occupy(ctx context.Context, l *locker.Locker) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if _, ok := l.OccupiedBy(); !ok {
		return errs.NewValueIsRequiredError("occupiedByPackageId")
	}

	s := r.Store()
	now := s.Stamp()
	dto := fromDomain(l)
	dto.ID = l.PostBoxID()
	dto.CreatedOn = now
	dto.LastModifiedOn = now

	result := s.DB(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"occupied_by_package_id",
			"last_modified_on",
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{
				SQL: "lockers.occupied_by_package_id IS NULL OR " +
					"lockers.occupied_by_package_id = excluded.occupied_by_package_id",
			},
		}},
	}).Create(&dto)
	if result.Error != nil {
		return s.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return locker.ErrOccupied
	}

	l.Track(dto.ID, dto.CreatedOn, dto.LastModifiedOn)
	return nil
}

// Release clears the occupant of postBoxID when it is packageID.
func (r *GormLockerRepository) Release(ctx context.Context, postBoxID, packageID int64) error {
	s := r.Store()
	result := s.DB(ctx).
		Model(&LockerDTO{}).
		Where("id = ? AND occupied_by_package_id = ?", postBoxID, packageID).
		Updates(map[string]any{
			"occupied_by_package_id": nil,
			"last_modified_on":       s.Stamp(),
		})
	if result.Error != nil {
		return s.Translate(result.Error)
	}
	return nil
}

func fromDomain(l *locker.Locker) LockerDTO {
	dto := LockerDTO{Audit: store.AuditOf(l)}
	if id, ok := l.OccupiedBy(); ok {
		dto.OccupiedByPackageID = &id
	}
	return dto
}

func toDomain(dto *LockerDTO) (*locker.Locker, error) {
	entity, err := store.RestoreEntity(dto.Audit)
	if err != nil {
		return nil, err
	}
	return locker.RestoreLocker(entity, dto.OccupiedByPackageID)
}
