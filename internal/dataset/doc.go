// Package dataset ingests ARFF-like text files into the [][]float64
// point slices consumed by the submodular optimizers.
//
// Format: lines starting with '@' are metadata and are skipped, as are
// empty or lone-"\r" lines. Each remaining line is a comma-separated row
// whose last two fields (an id and a string label) are discarded; of the
// rest, at most 41 scalar fields are retained. A row whose retained field
// count disagrees with the first retained row's is dropped and logged
// rather than aborting the whole load.
package dataset
