package queries

import (
	"context"

	"postbox/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetClientPackagesQueryHandler reads a client's packages with one joined query.
type GetClientPackagesQueryHandler struct {
	db *gorm.DB
}

func NewGetClientPackagesQueryHandler(db *gorm.DB) GetClientPackagesQueryHandler {
	return GetClientPackagesQueryHandler{db: db}
}

// Handle returns packages newest first, in any status. An unknown user has none.
func (h GetClientPackagesQueryHandler) Handle(
	ctx context.Context,
	q GetClientPackagesQuery,
) ([]ClientPackageResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	packages := make([]ClientPackageResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.user_id,
			p.category_id,
			p.height,
			p.width,
			p.depth,
			p.post_box_id,
			p.delivery_status_id,
			c.name,
			c.is_fragile,
			s.name,
			p.created_on
		FROM packages p
		JOIN package_categories c ON c.id = p.category_id
		JOIN delivery_statuses s ON s.id = p.delivery_status_id
		WHERE p.user_id = ?
		ORDER BY p.created_on DESC, p.id DESC
	`, q.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p      ClientPackageResponse
			status int64
		)

		err = rows.Scan(
			&p.ID,
			&p.UserID,
			&p.CategoryID,
			&p.Height,
			&p.Width,
			&p.Depth,
			&p.PostBoxID,
			&status,
			&p.CategoryName,
			&p.IsFragile,
			&p.DeliveryStatusName,
			&p.CreatedOn,
		)
		if err != nil {
			return nil, err
		}

		p.Status = parcel.Status(status)
		if err = p.Status.Validate(); err != nil {
			return nil, err
		}
		p.CreatedOn = p.CreatedOn.UTC()

		packages = append(packages, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
