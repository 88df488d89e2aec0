package catalog

import (
	"errors"
	"testing"
)

// TestNicknamesV1 verifies the generated identifier universe: the seed, all
// single-axis variants, and the two-axis variants minus the combinations that
// failed CAD validation.
func TestNicknamesV1(t *testing.T) {
	nicknames, err := Nicknames(V1)
	if err != nil {
		t.Fatalf("nicknames: %v", err)
	}

	// 1 seed + 13 letters x 4 single axes + 11 letters x 11 pair axes - 7 absent.
	want := 1 + 13*4 + 11*11 - 7
	if len(nicknames) != want {
		t.Fatalf("expected %d nicknames, got %d", want, len(nicknames))
	}
	if nicknames[0] != "s0" {
		t.Fatalf("expected seed first, got %q", nicknames[0])
	}

	seen := make(map[string]bool, len(nicknames))
	for _, id := range nicknames {
		if seen[id] {
			t.Fatalf("duplicate nickname %q", id)
		}
		seen[id] = true
	}
	for _, id := range []string{"r2", "b6", "g3", "d23", "x23", "m56"} {
		if !seen[id] {
			t.Fatalf("expected nickname %q", id)
		}
	}
	for id := range absentPairs {
		if seen[id] {
			t.Fatalf("absent combination %q present in catalog", id)
		}
	}
}

// TestGenerationParamsV1 verifies every object carries a full ordered record
// and the seed keeps its undeformed values.
func TestGenerationParamsV1(t *testing.T) {
	nicknames, err := Nicknames(V1)
	if err != nil {
		t.Fatalf("nicknames: %v", err)
	}
	records, err := GenerationParams(V1)
	if err != nil {
		t.Fatalf("generation params: %v", err)
	}
	if len(records) != len(nicknames) {
		t.Fatalf("expected %d records, got %d", len(nicknames), len(records))
	}

	for _, id := range nicknames {
		record, ok := records[id]
		if !ok {
			t.Fatalf("no record for %q", id)
		}
		if len(record.Names) != len(ParameterNames) || len(record.Values) != len(ParameterNames) {
			t.Fatalf("record for %q has %d/%d parameters", id, len(record.Names), len(record.Values))
		}
	}

	seed := records["s0"]
	if seed.Values["sds"] != 4 || seed.Values["shr"] != 0 || seed.Values["scx"] != 50 {
		t.Fatalf("unexpected seed record: %v", seed.Values)
	}

	// r2 is maximally deformed along axis 2 only.
	r2 := records["r2"]
	if r2.Values["shr"] != 43 {
		t.Fatalf("expected r2 shr 43, got %g", r2.Values["shr"])
	}
	if r2.Values["drf"] != 0 {
		t.Fatalf("expected r2 drf 0, got %g", r2.Values["drf"])
	}
}

// TestUnknownVersion verifies catalog lookups reject versions without data.
func TestUnknownVersion(t *testing.T) {
	if _, err := Nicknames(VersionUnspecified); !errors.Is(err, ErrUnknownVersion) {
		t.Fatalf("expected ErrUnknownVersion, got %v", err)
	}
	if _, err := GenerationParams(Version(99)); !errors.Is(err, ErrUnknownVersion) {
		t.Fatalf("expected ErrUnknownVersion, got %v", err)
	}
}

func TestParseVersion(t *testing.T) {
	version, err := ParseVersion("rgb_v1")
	if err != nil {
		t.Fatalf("parse version: %v", err)
	}
	if version != V1 {
		t.Fatalf("expected V1, got %v", version)
	}
	if _, err := ParseVersion("rgb_v9"); !errors.Is(err, ErrUnknownVersion) {
		t.Fatalf("expected ErrUnknownVersion, got %v", err)
	}
}
