// Package stats implements the running statistics behind algorithm C's
// adaptive stopping rule: TrialState tracks the sequence of per-trial
// samples and their running means, and TValue supplies the fixed
// Student-t critical-value table the rule consults.
//
// TrialState maintains running sums rather than retaining every sample,
// updating in O(1) per trial: single deterministic passes building up
// sums before deriving a normalized quantity.
package stats
