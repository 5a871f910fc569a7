// Package kernel provides similarity functions over point vectors: a
// pure, symmetric Kernel interface plus a concrete RBF implementation and
// a wrapper that lifts a plain closure into the interface.
package kernel
