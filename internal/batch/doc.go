// Package batch walks a capture tree, runs template matching over every
// capture file, and aggregates run statistics.
//
// Files are grouped by capture category (the first folder under the
// capture root) and categories are processed in sorted order, optionally
// in parallel with one corpus handle per worker. Every processed file
// lands in exactly one of four classifications: matched, below-threshold,
// failed, or skipped-empty. Matched files produce a JSON artifact
// mirroring the capture tree's layout under the output root.
package batch
