// Package catalog exposes the raw generation catalog for the RGB-object mesh
// library: the identifier universe per dataset version and the CAD parameters
// each mesh variant was generated with.
//
// Objects derive from a seed cube (s0) deformed along numbered axes. Names
// follow <letter><axes>: the letter encodes how far along the deformation the
// object sits, the digits encode which axes were deformed. Single-digit names
// (b2, r5, ...) deform one axis; two-digit names (x23, m56, ...) deform two.
package catalog

import (
	"errors"
	"fmt"
	"math"
)

// Version selects one generation of the RGB-object catalog.
type Version int

const (
	VersionUnspecified Version = iota
	// V1 is catalog generation v1.3, the only released version.
	V1
)

// ErrUnknownVersion indicates a version with no catalog behind it.
var ErrUnknownVersion = errors.New("unknown rgb objects version")

func (v Version) String() string {
	switch v {
	case V1:
		return "rgb_v1"
	default:
		return fmt.Sprintf("rgb_unknown(%d)", int(v))
	}
}

// ParseVersion converts a version tag such as "rgb_v1" into a Version.
func ParseVersion(raw string) (Version, error) {
	switch raw {
	case "rgb_v1", "v1":
		return V1, nil
	default:
		return VersionUnspecified, fmt.Errorf("%w: %q", ErrUnknownVersion, raw)
	}
}

// Versions lists every supported catalog version in release order.
func Versions() []Version {
	return []Version{V1}
}

// ParameterNames is the CAD parameter order used by the generation pipeline.
// Every object record carries all nine parameters in this order.
var ParameterNames = []string{"sds", "shr", "drf", "hlw", "shx", "shy", "scx", "scy", "scz"}

// Parameters is one ordered CAD parameter record.
type Parameters struct {
	Names  []string
	Values map[string]float64
}

// Clone returns an independent copy of the record.
func (p Parameters) Clone() Parameters {
	names := make([]string, len(p.Names))
	copy(names, p.Names)
	values := make(map[string]float64, len(p.Values))
	for k, v := range p.Values {
		values[k] = v
	}
	return Parameters{Names: names, Values: values}
}

// seedParams are the parameters of the seed cube s0.
var seedParams = map[string]float64{
	"sds": 4, "shr": 0, "drf": 0, "hlw": 0,
	"shx": 0, "shy": 0, "scx": 50, "scy": 50, "scz": 50,
}

// axisDeltas maps a single deformation axis digit to the parameter offsets of
// its maximally deformed object (letter r). Axes 1 and 4 were dropped from the
// released dataset.
var axisDeltas = map[byte]map[string]float64{
	'2': {"shr": 43},
	'3': {"drf": 28},
	'5': {"shx": 23, "shy": 23},
	'6': {"scx": -24, "scy": -24},
	'7': {"scz": 35},
	'8': {"sds": 4},
}

// letterCoeff places each letter along its deformation axis as a fraction of
// the maximal deformation. d..u interpolate between the seed and r; v sits
// slightly beyond r. b and g are the 3D-printed color variants of the maximal
// deformation and only exist as single-axis objects.
var letterCoeff = map[byte]float64{
	'd': 0.1, 'f': 0.2, 'e': 0.3, 'h': 0.4, 'x': 0.5,
	'l': 0.6, 'm': 0.7, 'y': 0.8, 'u': 0.9, 'r': 1.0, 'v': 1.1,
	'b': 1.0, 'g': 1.0,
}

// pairLetters and singleLetters give the letter order used when the dataset
// was generated; nickname order follows it.
var (
	pairLetters   = []byte{'d', 'f', 'e', 'h', 'x', 'l', 'm', 'y', 'u', 'r', 'v'}
	singleLetters = []byte{'d', 'f', 'e', 'h', 'x', 'l', 'm', 'y', 'u', 'r', 'v', 'b', 'g'}
)

var (
	singleAxes = []string{"2", "3", "5", "6"}
	pairAxes   = []string{"23", "25", "26", "35", "36", "37", "38", "56", "57", "58", "67"}
)

// absentPairs lists two-axis combinations whose extrapolated shape failed the
// CAD validity check and so never made it into the mesh library.
var absentPairs = map[string]bool{
	"v23": true, "v25": true, "v35": true, "v37": true,
	"v56": true, "v58": true, "v67": true,
}

type dataset struct {
	nicknames []string
	params    map[string]Parameters
}

var v1 = buildV1()

func buildV1() dataset {
	ds := dataset{params: make(map[string]Parameters)}
	add := func(id string, values map[string]float64) {
		ds.nicknames = append(ds.nicknames, id)
		ds.params[id] = Parameters{Names: ParameterNames, Values: values}
	}

	seed := make(map[string]float64, len(seedParams))
	for k, v := range seedParams {
		seed[k] = v
	}
	add("s0", seed)

	for _, axes := range singleAxes {
		for _, letter := range singleLetters {
			add(string(letter)+axes, deform(letter, axes))
		}
	}
	for _, axes := range pairAxes {
		for _, letter := range pairLetters {
			id := string(letter) + axes
			if absentPairs[id] {
				continue
			}
			add(id, deform(letter, axes))
		}
	}
	return ds
}

// deform applies the letter's coefficient to every axis named in axes.
func deform(letter byte, axes string) map[string]float64 {
	values := make(map[string]float64, len(seedParams))
	for k, v := range seedParams {
		values[k] = v
	}
	coeff := letterCoeff[letter]
	for i := 0; i < len(axes); i++ {
		for name, delta := range axisDeltas[axes[i]] {
			values[name] = round2(values[name] + coeff*delta)
		}
	}
	return values
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Nicknames returns the full ordered identifier list of one catalog version,
// including near-duplicate objects later excluded from the usable dataset.
func Nicknames(version Version) ([]string, error) {
	ds, err := forVersion(version)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ds.nicknames))
	copy(out, ds.nicknames)
	return out, nil
}

// GenerationParams returns the CAD parameter record of every object in one
// catalog version, keyed by identifier.
func GenerationParams(version Version) (map[string]Parameters, error) {
	ds, err := forVersion(version)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Parameters, len(ds.params))
	for id, p := range ds.params {
		out[id] = p.Clone()
	}
	return out, nil
}

func forVersion(version Version) (dataset, error) {
	switch version {
	case V1:
		return v1, nil
	default:
		return dataset{}, fmt.Errorf("%w: %s", ErrUnknownVersion, version)
	}
}
