package optimizer

import "github.com/katalvlaran/subselect/submodular"

// SieveStreaming is the streaming 1/2-eps approximation algorithm: a bank
// of parallel sieves, one per threshold in thresholds(m, K*m, eps), each
// independently deciding whether to keep a streamed item. The outer
// solution is always the best-fval live sieve.
//
//   - Stream: yes
//   - Approximation: 1/2 - eps
//   - Memory: O(K * log(K) / eps)
//   - Queries per item: O(log(K) / eps)
type SieveStreaming struct {
	base
	sieves []*sieve
	m      float64
	eps    float64
}

// NewSieveStreaming constructs a SieveStreaming optimizer. m is the
// caller-supplied upper bound on the singleton value max_e f({e}).
func NewSieveStreaming(budget int, fn submodular.Function, m, eps float64) (*SieveStreaming, error) {
	b, err := newBase(budget, fn)
	if err != nil {
		return nil, err
	}
	if eps <= 0 {
		return nil, ErrBadParam
	}

	ts, err := Thresholds(m, float64(budget)*m, eps)
	if err != nil {
		return nil, err
	}

	sieves := make([]*sieve, 0, len(ts))
	for _, t := range ts {
		sv, err := newSieve(budget, fn, t)
		if err != nil {
			return nil, err
		}
		sieves = append(sieves, sv)
	}

	return &SieveStreaming{base: b, sieves: sieves, m: m, eps: eps}, nil
}

// Next forwards x to every live sieve, each of which independently probes
// and conditionally commits, then promotes the best-fval sieve's state to
// the outer solution/ids/fval.
func (s *SieveStreaming) Next(x []float64, id *int64) error {
	for _, sv := range s.sieves {
		sv.nextFloor(x, id)
	}
	s.promote()

	return nil
}

// Fit dispatches every item in X, in order, via Next. This is the default
// fit-calls-next behavior; Greedy and Random instead implement Fit as
// offline algorithms.
func (s *SieveStreaming) Fit(X [][]float64, ids []int64) error {
	for i, x := range X {
		var idp *int64
		if i < len(ids) {
			v := ids[i]
			idp = &v
		}
		if err := s.Next(x, idp); err != nil {
			return err
		}
	}

	return nil
}

func (s *SieveStreaming) promote() {
	var best *sieve
	for _, sv := range s.sieves {
		if !sv.fitted {
			continue
		}
		if best == nil || sv.fval > best.fval {
			best = sv
		}
	}
	if best == nil {
		return
	}

	s.solution = best.solution
	s.ids = best.ids
	s.fval = best.fval
	s.fitted = true
}

// Solution returns the best live sieve's solution.
func (s *SieveStreaming) Solution() [][]float64 { return s.solution }

// IDs returns the best live sieve's ids.
func (s *SieveStreaming) IDs() []int64 { return s.ids }

// FVal returns the best live sieve's fval.
func (s *SieveStreaming) FVal() float64 { return s.fval }

// NumCandidateSolutions returns the number of live sieves.
func (s *SieveStreaming) NumCandidateSolutions() int { return len(s.sieves) }

// NumElementsStored returns the total number of items held across every
// live sieve, which is what actually bounds memory use.
func (s *SieveStreaming) NumElementsStored() int {
	total := 0
	for _, sv := range s.sieves {
		total += len(sv.solution)
	}

	return total
}
