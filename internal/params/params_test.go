package params

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/louisbranch/rgbprops/internal/catalog"
)

func syntheticAccessor() *Accessor {
	return NewAccessorFromData(map[catalog.Version]map[string]catalog.Parameters{
		catalog.V1: {
			"a": {Names: []string{"p", "q"}, Values: map[string]float64{"p": 1, "q": 5}},
			"b": {Names: []string{"p", "q"}, Values: map[string]float64{"p": 3, "q": 2}},
		},
	})
}

// TestGetReturnsCatalogRecord verifies lookup against the real generation
// catalog.
func TestGetReturnsCatalogRecord(t *testing.T) {
	accessor, err := NewAccessor()
	if err != nil {
		t.Fatalf("new accessor: %v", err)
	}
	record, err := accessor.Get(catalog.V1, "s0")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(record.Names) != len(catalog.ParameterNames) {
		t.Fatalf("expected %d parameters, got %d", len(catalog.ParameterNames), len(record.Names))
	}
	if record.Values["sds"] != 4 {
		t.Fatalf("expected seed sds 4, got %g", record.Values["sds"])
	}
}

// TestGetUnknownVersion verifies unsupported versions fail with
// InvalidArgument.
func TestGetUnknownVersion(t *testing.T) {
	accessor := syntheticAccessor()
	_, err := accessor.Get(catalog.Version(7), "a")
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

// TestGetUnknownObject verifies identifiers absent from the catalog fail with
// NotFound.
func TestGetUnknownObject(t *testing.T) {
	accessor := syntheticAccessor()
	_, err := accessor.Get(catalog.V1, "zz99")
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

// TestMinMaxSynthetic verifies per-parameter bounds over a two-object
// catalog.
func TestMinMaxSynthetic(t *testing.T) {
	accessor := syntheticAccessor()
	mins, maxs, err := accessor.MinMax(catalog.V1)
	if err != nil {
		t.Fatalf("min max: %v", err)
	}
	if mins.Values["p"] != 1 || mins.Values["q"] != 2 {
		t.Fatalf("unexpected mins: %v", mins.Values)
	}
	if maxs.Values["p"] != 3 || maxs.Values["q"] != 5 {
		t.Fatalf("unexpected maxs: %v", maxs.Values)
	}
	if len(mins.Names) != 2 || mins.Names[0] != "p" || mins.Names[1] != "q" {
		t.Fatalf("parameter order not preserved: %v", mins.Names)
	}
}

// TestMinMaxCatalogWithinShapeBounds verifies observed dataset bounds sit
// inside the parametric shape's valid ranges.
func TestMinMaxCatalogWithinShapeBounds(t *testing.T) {
	accessor, err := NewAccessor()
	if err != nil {
		t.Fatalf("new accessor: %v", err)
	}
	mins, maxs, err := accessor.MinMax(catalog.V1)
	if err != nil {
		t.Fatalf("min max: %v", err)
	}
	shape, err := catalog.ShapeFor(catalog.V1)
	if err != nil {
		t.Fatalf("shape: %v", err)
	}
	for name, bounds := range shape.Bounds {
		if mins.Values[name] < bounds[0] || maxs.Values[name] > bounds[1] {
			t.Fatalf("parameter %s outside shape bounds: min %g max %g bounds %v",
				name, mins.Values[name], maxs.Values[name], bounds)
		}
	}
}

// TestMinMaxEmptyVersion verifies computing bounds over zero objects fails
// with FailedPrecondition.
func TestMinMaxEmptyVersion(t *testing.T) {
	accessor := NewAccessorFromData(map[catalog.Version]map[string]catalog.Parameters{
		catalog.V1: {},
	})
	_, _, err := accessor.MinMax(catalog.V1)
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

// TestMinMaxUnknownVersion verifies unsupported versions fail with
// InvalidArgument.
func TestMinMaxUnknownVersion(t *testing.T) {
	accessor := syntheticAccessor()
	_, _, err := accessor.MinMax(catalog.Version(7))
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
