package magic

import (
	"math/bits"
	"math/rand"
	"runtime"

	"chess-rules/internal/worker"
)

// Entry describes a validated magic for one (slider, square) pair.
type Entry struct {
	Slider   Slider
	Square   int
	Magic    uint64
	MaxIndex int // highest table slot used; the table needs MaxIndex+1 entries
	Attempts int // candidates drawn before this one was accepted
}

// Candidate draws a sparse random multiplier. ANDing three draws leaves
// about eight bits set on average.
func Candidate(rng *rand.Rand) uint64 {
	return rng.Uint64() & rng.Uint64() & rng.Uint64()
}

// Search draws candidates until one validates. Termination is statistical;
// in practice a few thousand draws are enough for any square.
func Search(s Slider, sq int, rng *rand.Rand) Entry {
	return search(NewValidator(s, sq), rng)
}

func search(v *Validator, rng *rand.Rand) Entry {
	for attempts := 1; ; attempts++ {
		c := Candidate(rng)
		// too few high bits in the product cannot spread the patterns
		if bits.OnesCount64((v.mask*c)&0xFF00000000000000) < 6 {
			continue
		}
		if maxIndex, ok := v.Check(c); ok {
			return Entry{Slider: v.slider, Square: v.square, Magic: c, MaxIndex: maxIndex, Attempts: attempts}
		}
	}
}

// SearchOptions configures SearchAll.
type SearchOptions struct {
	Workers int
	Seed    int64
}

// SearchOption modifies SearchOptions.
type SearchOption func(*SearchOptions)

// WithWorkers sets the number of concurrent searches.
func WithWorkers(n int) SearchOption {
	return func(o *SearchOptions) {
		if n >= 1 {
			o.Workers = n
		}
	}
}

// WithSeed fixes the base seed. Job i uses Seed+i, so results do not depend
// on the number of workers.
func WithSeed(seed int64) SearchOption {
	return func(o *SearchOptions) { o.Seed = seed }
}

type job struct {
	slider Slider
	square int
}

func (j job) index() int { return int(j.slider)*64 + j.square }

// SearchAll finds a magic for all 128 (slider, square) pairs. The searches
// share nothing and run on a worker pool.
func SearchAll(opts ...SearchOption) (Set, []Entry) {
	o := SearchOptions{Workers: runtime.GOMAXPROCS(0), Seed: 1}
	for _, opt := range opts {
		opt(&o)
	}

	jobs := make([]job, 0, 128)
	for _, s := range Sliders {
		for sq := 0; sq < 64; sq++ {
			jobs = append(jobs, job{slider: s, square: sq})
		}
	}
	entries := worker.Map(jobs, func(j job) Entry {
		return Search(j.slider, j.square, rand.New(rand.NewSource(o.Seed + int64(j.index()))))
	}, worker.WithWorkers(o.Workers), worker.WithBufferSize(len(jobs)))

	var set Set
	for _, e := range entries {
		set.setMagic(e.Slider, e.Square, e.Magic)
	}
	return set, entries
}
