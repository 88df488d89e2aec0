// Package params looks up the CAD generation parameters of RGB objects and
// computes per-parameter bounds across a dataset version.
package params

import (
	"sort"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/louisbranch/rgbprops/internal/catalog"
)

// Accessor indexes generation parameter records per version and identifier.
type Accessor struct {
	data map[catalog.Version]map[string]catalog.Parameters
}

// NewAccessor builds an accessor over every supported catalog version.
func NewAccessor() (*Accessor, error) {
	data := make(map[catalog.Version]map[string]catalog.Parameters)
	for _, version := range catalog.Versions() {
		records, err := catalog.GenerationParams(version)
		if err != nil {
			return nil, err
		}
		data[version] = records
	}
	return &Accessor{data: data}, nil
}

// NewAccessorFromData builds an accessor over caller-supplied records. Used
// by tests and by stores that load the catalog from disk.
func NewAccessorFromData(data map[catalog.Version]map[string]catalog.Parameters) *Accessor {
	return &Accessor{data: data}
}

// Get returns the generation parameter record of one object.
func (a *Accessor) Get(version catalog.Version, objectID string) (catalog.Parameters, error) {
	records, ok := a.data[version]
	if !ok {
		return catalog.Parameters{}, status.Errorf(codes.InvalidArgument,
			"object %s: version %s not supported", objectID, version)
	}
	record, ok := records[objectID]
	if !ok {
		return catalog.Parameters{}, status.Errorf(codes.NotFound,
			"object %s is not in the %s parameter catalog", objectID, version)
	}
	return record.Clone(), nil
}

// MinMax computes, independently per parameter, the minimum and maximum value
// observed across all objects of one version. Parameter ordering follows the
// first object's record.
func (a *Accessor) MinMax(version catalog.Version) (catalog.Parameters, catalog.Parameters, error) {
	records, ok := a.data[version]
	if !ok {
		return catalog.Parameters{}, catalog.Parameters{}, status.Errorf(codes.InvalidArgument,
			"version %s not supported", version)
	}
	if len(records) == 0 {
		return catalog.Parameters{}, catalog.Parameters{}, status.Errorf(codes.FailedPrecondition,
			"version %s has no objects", version)
	}

	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	mins := records[ids[0]].Clone()
	maxs := records[ids[0]].Clone()
	for _, id := range ids[1:] {
		for name, value := range records[id].Values {
			if value < mins.Values[name] {
				mins.Values[name] = value
			}
			if value > maxs.Values[name] {
				maxs.Values[name] = value
			}
		}
	}
	return mins, maxs, nil
}
