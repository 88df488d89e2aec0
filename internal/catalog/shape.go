package catalog

import (
	"errors"
	"fmt"
)

// ErrShapeParameter indicates a parameter record that does not match the
// parametric shape definition.
var ErrShapeParameter = errors.New("parameter record does not match shape")

// Shape is the parametric shape definition behind one catalog version. It
// carries the valid bounds of every CAD parameter and can check whether a
// parameter record describes a buildable mesh.
//
// Lookup and validation are separate steps: resolve an object's Parameters
// first, then hand them to Shape.CheckInstance.
type Shape struct {
	Names  []string
	Bounds map[string][2]float64
}

// v1Bounds are the valid CAD parameter ranges of generation v1.3.
var v1Bounds = map[string][2]float64{
	"sds": {2, 10},
	"shr": {0, 50},
	"drf": {0, 45},
	"hlw": {0, 80},
	"shx": {0, 30},
	"shy": {0, 30},
	"scx": {10, 77},
	"scy": {10, 77},
	"scz": {10, 90},
}

// ShapeFor returns the parametric shape definition of one catalog version.
func ShapeFor(version Version) (Shape, error) {
	switch version {
	case V1:
		bounds := make(map[string][2]float64, len(v1Bounds))
		for k, v := range v1Bounds {
			bounds[k] = v
		}
		names := make([]string, len(ParameterNames))
		copy(names, ParameterNames)
		return Shape{Names: names, Bounds: bounds}, nil
	default:
		return Shape{}, fmt.Errorf("%w: %s", ErrUnknownVersion, version)
	}
}

// CheckInstance reports whether the record names exactly the shape's
// parameters and every value sits within its bounds.
func (s Shape) CheckInstance(params Parameters) bool {
	if len(params.Values) != len(s.Bounds) {
		return false
	}
	for name, bounds := range s.Bounds {
		value, ok := params.Values[name]
		if !ok {
			return false
		}
		if value < bounds[0] || value > bounds[1] {
			return false
		}
	}
	return true
}
