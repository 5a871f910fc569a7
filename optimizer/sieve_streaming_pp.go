package optimizer

import (
	"math"

	"github.com/katalvlaran/subselect/submodular"
)

// SieveStreamingPP refines SieveStreaming with an adaptive lower bound:
// whenever the best observed fval improves, it prunes sieves whose
// threshold has fallen below the new floor and regenerates the threshold
// grid from that floor, trading a slightly weaker guarantee for O(K/eps)
// memory instead of O(K * log(K) / eps).
//
//   - Stream: yes
//   - Approximation: 1/2 - eps
//   - Memory: O(K / eps)
type SieveStreamingPP struct {
	base
	sieves     []*sieve
	m          float64
	eps        float64
	lowerBound float64
}

// NewSieveStreamingPP constructs a SieveStreamingPP optimizer. Its sieve
// bank is empty until the first Next/Fit call, which always regenerates
// thresholds since no sieves yet exist.
func NewSieveStreamingPP(budget int, fn submodular.Function, m, eps float64) (*SieveStreamingPP, error) {
	b, err := newBase(budget, fn)
	if err != nil {
		return nil, err
	}
	if eps <= 0 {
		return nil, ErrBadParam
	}

	return &SieveStreamingPP{base: b, m: m, eps: eps}, nil
}

// Next adapts the sieve bank to the current lower bound, forwards x to
// every live sieve under the fixed delta >= threshold commit rule, then
// promotes the best-fval sieve's state to the outer solution/ids/fval.
func (s *SieveStreamingPP) Next(x []float64, id *int64) error {
	if s.lowerBound != s.fval || len(s.sieves) == 0 {
		if err := s.resample(); err != nil {
			return err
		}
	}

	for _, sv := range s.sieves {
		sv.nextFixed(x, id)
	}
	s.promote()

	return nil
}

// resample implements 4.11 step 1: recompute the lower bound and the
// threshold floor tau_min, prune sieves below the floor, and regenerate
// the threshold grid when anything was pruned (or nothing existed yet).
func (s *SieveStreamingPP) resample() error {
	s.lowerBound = s.fval
	tauMin := math.Max(s.lowerBound, s.m) / (2 * float64(s.budget))

	kept := s.sieves[:0]
	pruned := 0
	for _, sv := range s.sieves {
		if sv.threshold < tauMin {
			pruned++
			continue
		}
		kept = append(kept, sv)
	}

	if pruned == 0 && len(kept) > 0 {
		s.sieves = kept

		return nil
	}

	ts, err := Thresholds(tauMin/(1+s.eps), float64(s.budget)*s.m, s.eps)
	if err != nil {
		return err
	}

	existing := make(map[float64]bool, len(kept))
	for _, sv := range kept {
		existing[sv.threshold] = true
	}
	for _, t := range ts {
		if existing[t] {
			continue
		}
		sv, err := newSieve(s.budget, s.fn, t)
		if err != nil {
			return err
		}
		kept = append(kept, sv)
	}

	s.sieves = kept

	return nil
}

func (s *SieveStreamingPP) promote() {
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

// Fit dispatches every item in X, in order, via Next.
func (s *SieveStreamingPP) Fit(X [][]float64, ids []int64) error {
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

// Solution returns the best live sieve's solution.
func (s *SieveStreamingPP) Solution() [][]float64 { return s.solution }

// IDs returns the best live sieve's ids.
func (s *SieveStreamingPP) IDs() []int64 { return s.ids }

// FVal returns the best live sieve's fval.
func (s *SieveStreamingPP) FVal() float64 { return s.fval }

// NumCandidateSolutions returns the number of currently live sieves,
// which shrinks over time as the lower bound improves.
func (s *SieveStreamingPP) NumCandidateSolutions() int { return len(s.sieves) }

// NumElementsStored returns the total number of items held across every
// live sieve.
func (s *SieveStreamingPP) NumElementsStored() int {
	total := 0
	for _, sv := range s.sieves {
		total += len(sv.solution)
	}

	return total
}
