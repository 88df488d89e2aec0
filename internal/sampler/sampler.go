package sampler

import (
	"math/rand"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/louisbranch/rgbprops/internal/catalog"
	"github.com/louisbranch/rgbprops/internal/random"
	"github.com/louisbranch/rgbprops/internal/taxonomy"
)

// Sampler draws triplets from a shared pseudo-random source. The source is
// guarded by a mutex; repeated calls with the same inputs return
// independently sampled results.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a sampler seeded from crypto/rand.
func New() (*Sampler, error) {
	seed, err := random.NewSeed()
	if err != nil {
		return nil, err
	}
	return NewWithRand(rand.New(rand.NewSource(seed))), nil
}

// NewWithRand creates a sampler over a caller-owned random source. Tests use
// it to pin the sequence of draws.
func NewWithRand(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

func (s *Sampler) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Request describes one restricted random triplet draw.
type Request struct {
	Version catalog.Version
	// IDList restricts sampling for all channels. Defaults to the version's
	// full identifier set.
	IDList []string
	// RedList, GreenList and BlueList restrict single channels, overriding
	// IDList for that channel.
	RedList   []string
	GreenList []string
	BlueList  []string
}

// RandomTriplet draws one identifier uniformly per channel from the channel's
// effective restriction list. Draws are independent, so the same identifier
// may appear in more than one channel. Identifiers in the shared IDList must
// belong to the version's full set.
func (s *Sampler) RandomTriplet(req Request) (Triplet, error) {
	sets, err := taxonomy.ForVersion(req.Version)
	if err != nil {
		return Triplet{}, status.Errorf(codes.InvalidArgument, "random triplet: %v", err)
	}

	shared := req.IDList
	if len(shared) > 0 {
		for _, objectID := range shared {
			if !sets.InFull(objectID) {
				return Triplet{}, status.Errorf(codes.InvalidArgument,
					"id list includes %s which is not part of %s", objectID, req.Version)
			}
		}
	} else {
		shared = sets.Full
	}

	channels := [3][]string{req.RedList, req.GreenList, req.BlueList}
	var ids [3]string
	for i, list := range channels {
		if len(list) == 0 {
			list = shared
		}
		ids[i] = list[s.intn(len(list))]
	}
	return Triplet{Version: req.Version, IDs: ids}, nil
}

// FixedRandomTriplet uniformly chooses one of the five predefined test
// triplets and returns it verbatim. Only V1 has predefined triplets.
func (s *Sampler) FixedRandomTriplet(version catalog.Version) (Triplet, error) {
	if version != catalog.V1 {
		return Triplet{}, status.Errorf(codes.Unimplemented,
			"sampling predefined triplets of objects is not implemented for %s", version)
	}
	name := testTripletNames[s.intn(len(testTripletNames))]
	return TestTriplets[name], nil
}

// BlueAxisSamplers builds one sampler per deformation axis: the blue channel
// is restricted to the axis's identifier list while red and green draw from
// idList (or the full set when idList is nil). Keys are "blue_dim<axis>".
func (s *Sampler) BlueAxisSamplers(idList []string) map[string]func() (Triplet, error) {
	samplers := make(map[string]func() (Triplet, error), len(taxonomy.DeformationAxisKeys))
	for _, axis := range taxonomy.DeformationAxisKeys {
		blueList := taxonomy.DeformationAxes[axis]
		samplers["blue_dim"+axis] = func() (Triplet, error) {
			return s.RandomTriplet(Request{
				Version:  catalog.V1,
				IDList:   idList,
				BlueList: blueList,
			})
		}
	}
	return samplers
}
