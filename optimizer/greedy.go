package optimizer

import "github.com/katalvlaran/subselect/submodular"

// Greedy is the offline, 1-1/e approximation algorithm for monotone
// submodular maximization under a cardinality constraint: repeatedly pick
// the remaining item with the largest marginal gain until K items have
// been selected or the dataset is exhausted.
//
//   - Stream: no
//   - Approximation: 1 - 1/e
//   - Runtime: O(N*K) function queries
//   - Memory: O(K)
type Greedy struct {
	base
}

// NewGreedy constructs a Greedy optimizer for the given budget and
// objective. fn is cloned; Greedy owns its own copy.
func NewGreedy(budget int, fn submodular.Function) (*Greedy, error) {
	b, err := newBase(budget, fn)
	if err != nil {
		return nil, err
	}

	return &Greedy{base: b}, nil
}

// Fit runs the greedy selection over the full dataset X. ids, if
// non-nil, must be parallel to X; Greedy records ids[i] for each selected
// X[i]. Greedy may be re-fit; doing so resets any prior solution.
func (g *Greedy) Fit(X [][]float64, ids []int64) error {
	g.solution = nil
	g.ids = nil
	g.fval = 0

	// Each Fit runs against a fresh clone so that state committed by an
	// earlier Fit does not leak into this one.
	fn := g.fn.Clone()

	remaining := make([]int, len(X))
	for i := range remaining {
		remaining[i] = i
	}

	for len(g.solution) < g.budget && len(remaining) > 0 {
		bestPos := -1
		bestVal := 0.0
		for pos, idx := range remaining {
			val, err := fn.Peek(g.solution, X[idx], len(g.solution))
			if err != nil {
				// A candidate that would make the function non-SPD (or
				// otherwise ineligible) never wins the argmax.
				continue
			}
			if bestPos == -1 || val > bestVal {
				bestPos = pos
				bestVal = val
			}
		}
		if bestPos == -1 {
			// Every remaining candidate was ineligible.
			break
		}

		maxIdx := remaining[bestPos]
		if err := fn.Update(g.solution, X[maxIdx], len(g.solution)); err != nil {
			// The chosen candidate turned out ineligible at commit time
			// (should not happen since Peek just approved it); drop it
			// and continue with the rest.
			remaining = append(remaining[:bestPos], remaining[bestPos+1:]...)
			continue
		}

		g.solution = append(g.solution, X[maxIdx])
		g.fval = bestVal
		if maxIdx < len(ids) {
			g.ids = append(g.ids, ids[maxIdx])
		}
		remaining = append(remaining[:bestPos], remaining[bestPos+1:]...)
	}

	g.fitted = true

	return nil
}

// Next always fails: Greedy is an offline algorithm and does not support
// streaming data; use Fit.
func (g *Greedy) Next(x []float64, id *int64) error {
	return ErrUnsupportedOperation
}
