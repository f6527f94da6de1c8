// Package corpus provides read-only access to the TextFSM template corpus.
//
// The corpus is an external SQLite database with a templates table exposing
// a command label and a template definition per row. This package owns the
// two query shapes the matcher needs (full corpus, keyword-filtered) and a
// per-worker handle pool so concurrent workers never share a connection.
//
// Templates are read-only once stored; their lifecycle belongs entirely to
// the corpus tooling, not to tfsmatch.
package corpus
