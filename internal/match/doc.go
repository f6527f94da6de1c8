// Package match scores templates against captured command output and
// selects the best candidate from a filtered corpus slice.
//
// The scoring policy is a four-factor heuristic tuned against real network
// command output: record volume appropriate to the command type, field
// richness, cell population rate, and cross-record fill consistency. The
// breakpoints in policy.go are deliberate policy, not derived values; do
// not retune them without re-validating against a capture corpus.
package match
