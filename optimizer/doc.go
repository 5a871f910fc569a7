// Package optimizer implements the family of cardinality-constrained
// submodular-maximization algorithms this module is built around: offline
// Greedy, a seeded Random baseline, and the streaming SieveStreaming and
// SieveStreaming++ algorithms.
//
// Every optimizer shares the same base state (budget, owned submodular.
// Function, solution, ids, fval, fitted flag) and accessor surface — see
// base in optimizer.go. Offline optimizers (Greedy, Random) consume the
// whole dataset through Fit and reject Next; streaming optimizers
// (SieveStreaming, SieveStreamingPP) consume one item at a time through
// Next, with Fit defaulting to calling Next over the input in order.
package optimizer
