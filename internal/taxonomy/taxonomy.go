// Package taxonomy partitions the RGB-object identifier universe into the
// train, heldout, test and excluded sets and builds the per-axis deformation
// lists. All data is computed once at load time and immutable afterwards.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/louisbranch/rgbprops/internal/catalog"
)

// exclusionPrefix marks near-duplicate objects sampled too closely to the
// seed in parametric space; they add little value and are dropped.
const exclusionPrefix = "d"

// DeformationValues are the letters combined with an axis key to name the
// objects that vary along that axis, in deformation order.
var DeformationValues = []string{"f", "e", "h", "x", "l", "m", "y", "r", "u", "v"}

// DeformationHeldoutAxes are the single axes of deformation. Axes 1 and 4 are
// intentionally absent from the released dataset.
var DeformationHeldoutAxes = []string{"2", "3", "5", "6"}

// DeformationTrainAxes are the two-axis deformation combinations.
var DeformationTrainAxes = []string{
	"23", "25", "26", "35", "36", "37", "38", "56", "57", "58", "67",
}

// DeformationAxisKeys is the full ordered axis key list.
var DeformationAxisKeys = append(append([]string{}, DeformationTrainAxes...), DeformationHeldoutAxes...)

// TestSet holds the 13 reserved identifiers of the printed test triplets.
// s0 is the seed object and appears in several triplets.
var TestSet = []string{
	"b2", "b3", "b5", "b6", "g2", "g3", "g5", "g6", "r2", "r3", "r5", "r6", "s0",
}

// Sets is the identifier partition of one dataset version.
type Sets struct {
	Full     []string
	Train    []string
	Heldout  []string
	Test     []string
	Excluded []string
	// Axes maps an axis key to the ordered identifiers varying along it.
	Axes map[string][]string
}

// InFull reports whether id belongs to the version's full set.
func (s Sets) InFull(id string) bool {
	for _, candidate := range s.Full {
		if candidate == id {
			return true
		}
	}
	return false
}

var v1 = build(catalog.V1)

// Package-level views of the only released version.
var (
	FullSet         = v1.Full
	TrainSet        = v1.Train
	HeldoutSet      = v1.Heldout
	ExcludedSet     = v1.Excluded
	DeformationAxes = v1.Axes
)

// ForVersion returns the identifier partition of one catalog version.
func ForVersion(version catalog.Version) (Sets, error) {
	switch version {
	case catalog.V1:
		return v1, nil
	default:
		return Sets{}, fmt.Errorf("%w: %s", catalog.ErrUnknownVersion, version)
	}
}

func build(version catalog.Version) Sets {
	raw, err := catalog.Nicknames(version)
	if err != nil {
		panic(fmt.Sprintf("taxonomy: load catalog: %v", err))
	}

	var excluded []string
	inFull := make(map[string]bool, len(raw))
	var full []string
	for _, id := range raw {
		if strings.HasPrefix(id, exclusionPrefix) {
			excluded = append(excluded, id)
			continue
		}
		inFull[id] = true
		full = append(full, id)
	}
	// Test identifiers are part of the full set even when the catalog would
	// otherwise drop them.
	for _, id := range TestSet {
		if !inFull[id] {
			inFull[id] = true
			full = append(full, id)
		}
	}

	inTest := make(map[string]bool, len(TestSet))
	for _, id := range TestSet {
		inTest[id] = true
	}

	// All single-axis-of-deformation objects (length-2 names) are reserved
	// for validation.
	var heldout []string
	inHeldout := make(map[string]bool)
	for _, id := range full {
		if len(id) == 2 {
			heldout = append(heldout, id)
			inHeldout[id] = true
		}
	}
	sort.Strings(heldout)

	var train []string
	for _, id := range full {
		if inHeldout[id] || inTest[id] || strings.HasPrefix(id, exclusionPrefix) {
			continue
		}
		train = append(train, id)
	}
	sort.Strings(train)

	test := make([]string, len(TestSet))
	copy(test, TestSet)

	return Sets{
		Full:     full,
		Train:    train,
		Heldout:  heldout,
		Test:     test,
		Excluded: excluded,
		Axes:     buildAxes(DeformationAxisKeys, DeformationValues, inFull),
	}
}

// buildAxes combines every deformation value with every axis key, keeping the
// combinations present in the full set. An axis with no surviving
// combinations yields an empty list.
func buildAxes(keys, values []string, inFull map[string]bool) map[string][]string {
	axes := make(map[string][]string, len(keys))
	for _, key := range keys {
		ids := []string{}
		for _, value := range values {
			id := value + key
			if inFull[id] {
				ids = append(ids, id)
			}
		}
		axes[key] = ids
	}
	return axes
}
