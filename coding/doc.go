// Package coding implements the two vertex-coding generators: Vandermonde
// (deterministic, used by algorithm U) and Bernoulli (randomised, used by
// algorithm C). Both produce a length-n slice of lifted extensor.Extensor
// values, one per vertex.
//
// Bernoulli's randomness is always supplied by the caller as a *rand.Rand,
// never read from a package-global source: deterministic given a seed,
// safe to derive independent streams for concurrent trials (DeriveRNG),
// and never silently seeded from wall-clock time.
package coding
