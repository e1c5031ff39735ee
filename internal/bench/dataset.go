package bench

import (
	"fmt"
	"math/rand/v2"

	"github.com/hashicorp/go-uuid"
)

// maxRandomKey bounds random int keys, so larger datasets contain
// duplicates the trees must reject.
const maxRandomKey = 1234567

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

func intDataset(cfg Config) []int {
	keys := make([]int, cfg.Size)
	if cfg.Order == OrderSequential {
		for i := range keys {
			keys[i] = i
		}
		return keys
	}
	rng := newRand(cfg.Seed)
	for i := range keys {
		keys[i] = rng.IntN(maxRandomKey)
	}
	return keys
}

func uuidDataset(size int) ([]string, error) {
	keys := make([]string, size)
	for i := range keys {
		id, err := uuid.GenerateUUID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate key %d: %w", i, err)
		}
		keys[i] = id
	}
	return keys, nil
}

// distinct counts unique keys, which is what every tree must end up
// holding after the insert phase.
func distinct[K comparable](keys []K) int {
	seen := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	return len(seen)
}
