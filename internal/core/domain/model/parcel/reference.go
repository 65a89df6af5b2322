package parcel

import (
	"errors"
	"strings"

	"postbox/internal/core/domain/model/kernel"
	"postbox/internal/pkg/errs"
)

var ErrLabelIsNotConstructed = errors.New("StatusLabel must be created via RestoreStatusLabel")

// StatusLabel is the editable display row for a Status. Its id equals the status code.
type StatusLabel struct {
	kernel.Entity

	name          string
	isConstructed bool
}

// RestoreStatusLabel rebuilds a stored label; the entity id must be a valid Status.
func RestoreStatusLabel(entity kernel.Entity, name string) (*StatusLabel, error) {
	if err := Status(entity.ID()).Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("status name")
	}
	return &StatusLabel{Entity: entity, name: name, isConstructed: true}, nil
}

func (l *StatusLabel) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLabelIsNotConstructed
	}
	return nil
}

func (l *StatusLabel) Status() Status { return Status(l.ID()) }
func (l *StatusLabel) Name() string   { return l.name }

var ErrCategoryIsNotConstructed = errors.New("Category must be created via RestoreCategory")

// Category is a reference row describing what kind of goods a package holds.
type Category struct {
	kernel.Entity

	name          string
	fragile       bool
	isConstructed bool
}

// RestoreCategory rebuilds a stored category.
func RestoreCategory(entity kernel.Entity, name string, fragile bool) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("category name")
	}
	return &Category{Entity: entity, name: name, fragile: fragile, isConstructed: true}, nil
}

func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) Name() string    { return c.name }
func (c *Category) IsFragile() bool { return c.fragile }
