package parcel

import (
	"errors"

	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/guard"
)

// MaxSide bounds each side of a package, in centimetres.
const MaxSide = 1000

var ErrDimensionsAreNotConstructed = errors.New("Dimensions must be created via NewDimensions constructor")

// Dimensions is the physical size of a package. Every side is positive.
type Dimensions struct {
	height int
	width  int
	depth  int

	guard guard.ConstructorGuard
}

// NewDimensions validates all three sides and reports every violation at once.
func NewDimensions(height, width, depth int) (Dimensions, error) {
	if err := errors.Join(
		checkSide("height", height),
		checkSide("width", width),
		checkSide("depth", depth),
	); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{height: height, width: width, depth: depth, guard: guard.NewConstructorGuard()}, nil
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func (d Dimensions) Height() int { return d.height }
func (d Dimensions) Width() int  { return d.width }
func (d Dimensions) Depth() int  { return d.depth }

// Volume is height × width × depth.
func (d Dimensions) Volume() int {
	return d.height * d.width * d.depth
}

func checkSide(name string, v int) error {
	if v < 1 || v > MaxSide {
		return errs.NewValueIsOutOfRangeError(name, v, 1, MaxSide)
	}
	return nil
}
