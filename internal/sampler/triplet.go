// Package sampler draws RGB-object triplets: one object identifier per color
// channel, either freshly sampled under restriction lists or taken from the
// predefined printed test triplets.
package sampler

import (
	"github.com/louisbranch/rgbprops/internal/catalog"
)

// Triplet is an ordered set of three object identifiers, nominally one per
// color channel, together with the dataset version they belong to.
type Triplet struct {
	Version catalog.Version
	IDs     [3]string
}

// testTripletNames orders the predefined triplet keys for uniform selection.
var testTripletNames = []string{
	"test_triplet1",
	"test_triplet2",
	"test_triplet3",
	"test_triplet4",
	"test_triplet5",
}

// TestTriplets are the object groups printed as 'Triplets v1.0'. Each holds
// one red, one green and one blue object; s0 is the seed and stands in for a
// color in several groups.
var TestTriplets = map[string]Triplet{
	"test_triplet1": {Version: catalog.V1, IDs: [3]string{"r3", "s0", "b2"}},
	"test_triplet2": {Version: catalog.V1, IDs: [3]string{"r5", "g2", "b3"}},
	"test_triplet3": {Version: catalog.V1, IDs: [3]string{"r6", "g3", "b5"}},
	"test_triplet4": {Version: catalog.V1, IDs: [3]string{"s0", "g5", "b6"}},
	"test_triplet5": {Version: catalog.V1, IDs: [3]string{"r2", "g6", "s0"}},
}

// DefaultColors maps channel names to RGBA values used when props are
// instantiated in simulation.
var DefaultColors = map[string][4]float64{
	"RED":   {1, 0, 0, 1},
	"GREEN": {0, 1, 0, 1},
	"BLUE":  {0, 0, 1, 1},
}
