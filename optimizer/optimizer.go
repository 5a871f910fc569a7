package optimizer

import "github.com/katalvlaran/subselect/submodular"

// base holds the state shared by every optimizer in this package: the
// cardinality budget, the owned submodular.Function, the current solution
// and its parallel id slice, the committed function value, and whether
// any fit/next call has ever succeeded.
//
// Reading Solution/IDs/FVal before a successful Fit/Next is well-defined:
// base starts zeroed, so accessors simply report an empty solution and a
// zero fval rather than erroring (spec's NotFitted policy).
type base struct {
	budget int
	fn     submodular.Function
	ids    []int64

	solution [][]float64
	fval     float64
	fitted   bool
}

// newBase validates budget > 0 and clones fn so this optimizer owns an
// independent copy, per the submodular.Function cloning contract.
func newBase(budget int, fn submodular.Function) (base, error) {
	if budget <= 0 {
		return base{}, ErrBadParam
	}

	return base{budget: budget, fn: fn.Clone()}, nil
}

// Budget returns the cardinality constraint K.
func (b *base) Budget() int { return b.budget }

// Solution returns a read-only view of the current solution in insertion
// order. Callers must not mutate the returned slice or its elements.
func (b *base) Solution() [][]float64 { return b.solution }

// IDs returns the caller ids parallel to Solution, when ids were supplied;
// otherwise it is empty.
func (b *base) IDs() []int64 { return b.ids }

// FVal returns the function value of the current solution.
func (b *base) FVal() float64 { return b.fval }

// IsFitted reports whether any Fit/Next call has ever succeeded.
func (b *base) IsFitted() bool { return b.fitted }

// NumCandidateSolutions returns 1 for every optimizer except the
// streaming sieve ensembles, which override it.
func (b *base) NumCandidateSolutions() int { return 1 }

// NumElementsStored returns the number of items currently held in the
// solution (and, for sieve ensembles, summed across every live sieve).
func (b *base) NumElementsStored() int { return len(b.solution) }
