// Package textutil provides the small string transforms shared by the
// filter resolver and the corpus accessor.
//
// The primary use cases are:
//   - Cleaning capture-category labels into a canonical lowercase form
//   - Splitting filter strings into corpus search tokens
//
// Tokenization splits on hyphen/underscore separators and filters tokens
// shorter than 3 characters, which are too unselective to constrain a
// command-label search.
package textutil
