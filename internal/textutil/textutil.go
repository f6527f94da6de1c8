package textutil

import "strings"

// labelReplacer canonicalizes the separator characters that appear in
// capture folder names.
var labelReplacer = strings.NewReplacer("-", "_", ".", "_")

// minTokenLen is the shortest token worth using as a search constraint.
// One- and two-character fragments ("ip", "v4", stray separators) match
// far too much of the corpus to narrow anything.
const minTokenLen = 3

// CleanLabel lowercases a category label and folds hyphens and dots into
// underscores so labels from differently-styled capture trees compare equal.
func CleanLabel(label string) string {
	return labelReplacer.Replace(strings.ToLower(strings.TrimSpace(label)))
}

// FilterTokens splits a filter string on hyphen/underscore separators and
// drops tokens shorter than 3 characters. An empty result means the filter
// carries no usable constraint.
func FilterTokens(filter string) []string {
	raw := strings.FieldsFunc(filter, func(r rune) bool {
		return r == '-' || r == '_'
	})
	tokens := make([]string, 0, len(raw))
	for _, token := range raw {
		token = strings.TrimSpace(token)
		if len(token) < minTokenLen {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
