package optimizer

import (
	"math/rand"

	"github.com/katalvlaran/subselect/submodular"
)

// Random is a seeded baseline optimizer: it samples budget distinct
// indices from the dataset without replacement using a deterministic
// PRNG, then commits them (via fn.Update) in sampled order.
type Random struct {
	base
	rng *rand.Rand
}

// NewRandom constructs a Random optimizer with the given budget,
// objective, and seed. Two Random optimizers constructed with the same
// seed, budget, and dataset length produce the same sample order.
func NewRandom(budget int, fn submodular.Function, seed int64) (*Random, error) {
	b, err := newBase(budget, fn)
	if err != nil {
		return nil, err
	}

	return &Random{base: b, rng: rand.New(rand.NewSource(seed))}, nil
}

// Fit shuffles all indices of X (rand.Shuffle, a Fisher-Yates shuffle),
// takes the first min(budget, len(X)) of them, and commits them in that
// order.
func (r *Random) Fit(X [][]float64, ids []int64) error {
	r.solution = nil
	r.ids = nil
	r.fval = 0

	perm := make([]int, len(X))
	for i := range perm {
		perm[i] = i
	}
	r.rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	n := r.budget
	if n > len(perm) {
		n = len(perm)
	}

	for i := 0; i < n; i++ {
		idx := perm[i]
		val, err := r.fn.Peek(r.solution, X[idx], len(r.solution))
		if err != nil {
			continue
		}
		if err := r.fn.Update(r.solution, X[idx], len(r.solution)); err != nil {
			continue
		}
		r.solution = append(r.solution, X[idx])
		r.fval = val
		if idx < len(ids) {
			r.ids = append(r.ids, ids[idx])
		}
	}

	r.fitted = true

	return nil
}

// Next always fails: Random is an offline sampler over a known dataset
// size, not a streaming algorithm.
func (r *Random) Next(x []float64, id *int64) error {
	return ErrUnsupportedOperation
}
