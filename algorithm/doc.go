// Package algorithm implements decision algorithm U and approximate
// counting algorithm C over a walk-sum extensor: U asks whether any
// simple k-path exists, C estimates how many there are to within a
// relative ε with ≥99% confidence, via the Student-t adaptive stopping
// rule in package stats.
package algorithm
