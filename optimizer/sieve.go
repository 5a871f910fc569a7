package optimizer

import "github.com/katalvlaran/subselect/submodular"

// sieve is a sub-optimizer owned by a streaming optimizer (SieveStreaming,
// SieveStreamingPP). It holds a single threshold hypothesis over the
// unknown optimum and its own independent clone of the
// objective, solution, and fval.
type sieve struct {
	base
	threshold float64
}

// newSieve constructs a sieve with its own clone of fn, owned exclusively
// by the parent streaming optimizer.
func newSieve(budget int, fn submodular.Function, threshold float64) (*sieve, error) {
	b, err := newBase(budget, fn)
	if err != nil {
		return nil, err
	}

	return &sieve{base: b, threshold: threshold}, nil
}

// nextFloor implements SieveStreaming's per-sieve commit rule (4.10): the
// marginal gain must clear a floor that tightens as the sieve fills, given
// by (threshold/2 - fval) / (K - k_c).
func (s *sieve) nextFloor(x []float64, id *int64) {
	kc := len(s.solution)
	if kc >= s.budget {
		return
	}

	val, err := s.fn.Peek(s.solution, x, kc)
	if err != nil {
		return
	}
	delta := val - s.fval
	floor := (s.threshold/2 - s.fval) / float64(s.budget-kc)
	if delta < floor {
		return
	}

	s.commit(x, id, val)
}

// nextFixed implements SieveStreamingPP's simpler per-sieve commit rule
// (4.11): the marginal gain must merely clear the sieve's own threshold.
func (s *sieve) nextFixed(x []float64, id *int64) {
	kc := len(s.solution)
	if kc >= s.budget {
		return
	}

	val, err := s.fn.Peek(s.solution, x, kc)
	if err != nil {
		return
	}
	if val-s.fval < s.threshold {
		return
	}

	s.commit(x, id, val)
}

func (s *sieve) commit(x []float64, id *int64, val float64) {
	if err := s.fn.Update(s.solution, x, len(s.solution)); err != nil {
		return
	}

	s.solution = append(s.solution, x)
	s.fval = val
	if id != nil {
		s.ids = append(s.ids, *id)
	}
	s.fitted = true
}
