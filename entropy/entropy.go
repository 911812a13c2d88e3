package entropy

import (
	"golang.org/x/exp/rand"
)

// Entropy is the seeded pseudo-random source driving tree generation and
// mutation. One Entropy belongs to one fuzz run; it is not safe for
// concurrent use. The same seed and the same call sequence produce the same
// draws.
type Entropy struct {
	seed uint64
	src  rand.Source
	rand *rand.Rand
}

func New(seed uint64) *Entropy {
	src := rand.NewSource(seed)
	return &Entropy{
		seed: seed,
		src:  src,
		rand: rand.New(src),
	}
}

// Seed returns the seed this source was created with.
func (e *Entropy) Seed() uint64 {
	return e.seed
}

// Source exposes the underlying source for samplers that consume one
// directly. Draws taken through it advance the same stream as the methods
// below.
func (e *Entropy) Source() rand.Source {
	return e.src
}

// UniformInt returns an integer in [lo, hi], both ends inclusive.
// Callers must ensure lo <= hi.
func (e *Entropy) UniformInt(lo, hi int) int {
	return lo + e.rand.Intn(hi-lo+1)
}

// Boolean returns true with the given probability.
func (e *Entropy) Boolean(probability float64) bool {
	return e.rand.Float64() < probability
}

// Shuffle permutes s uniformly at random in place.
func Shuffle[T any](e *Entropy, s []T) {
	e.rand.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// Distribute partitions total into a sequence of positive chunk sizes
// summing exactly to total. Each chunk is drawn from [1, 2*deviation+1],
// with the final chunk clamped to the remainder, so sizes vary by at most
// deviation around the midpoint of that range. There is always at least one
// chunk of at least size 1.
func (e *Entropy) Distribute(total, deviation int) []int {
	if total <= 0 {
		return nil
	}
	max := 2*deviation + 1
	if max < 1 {
		max = 1
	}
	chunks := make([]int, 0, total/max+1)
	for remaining := total; remaining > 0; {
		size := e.UniformInt(1, max)
		if size > remaining {
			size = remaining
		}
		chunks = append(chunks, size)
		remaining -= size
	}
	return chunks
}
