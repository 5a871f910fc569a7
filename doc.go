// Package subselect picks a small, representative subset of a larger
// dataset under a cardinality constraint K, by maximizing a monotone
// submodular objective.
//
// What is subselect?
//
//	A numeric library built on four layers:
//		• Matrix: dense symmetric storage and in-place Cholesky factorization
//		• Kernel: similarity functions x,y -> scalar; RBF and closure-based
//		• Submodular: the Informative Vector Machine objective, exact (IVM)
//		  and incremental (FastIVM)
//		• Optimizer: Greedy (1-1/e offline), Random (seeded baseline),
//		  SieveStreaming and SieveStreaming++ (1/2-eps streaming)
//
// Why maximize a submodular objective?
//
//   - Diminishing returns fall out for free: once a cluster of similar
//     points is represented, adding another near-duplicate barely moves
//     the objective, so greedy and streaming algorithms naturally avoid
//     redundant picks.
//   - The IVM objective log det(I + K(S,S)/sigma^2) rewards diversity
//     under the kernel's notion of similarity, not raw count.
//
// Everything is organized under:
//
//	matrix/     — SymmetricMatrix, Cholesky, log-determinant
//	kernel/     — Kernel, RBF, FromClosure
//	submodular/ — Function, IVM, FastIVM, FromClosure
//	optimizer/  — Greedy, Random, SieveStreaming, SieveStreamingPP
//	internal/dataset/ — ARFF-like ingestion for the cmd/subselect driver
//	cmd/subselect/    — a cobra CLI exercising all four optimizers
//
// Quick sketch of the core loop (Greedy):
//
//	f, _ := submodular.NewFastIVM(budget, rbf, sigma)
//	g, _ := optimizer.NewGreedy(budget, f)
//	_ = g.Fit(points, ids)
//	g.Solution() // up to `budget` representative points
package subselect
