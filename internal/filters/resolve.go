package filters

import (
	"sort"
	"strings"
	"sync"

	"tfsmatch/internal/textutil"
)

// sortedKeys returns the table keys in stable order so substring
// resolution is deterministic when several keys overlap a label.
var sortedKeys = sync.OnceValue(func() []string {
	keys := make([]string, 0, len(categoryFilters))
	for key := range categoryFilters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
})

// Resolve maps a category label to the corpus filters to try for it. The
// result is never empty; every element is either a keyword filter or the
// explicit whole-corpus marker. Resolution order, first hit wins:
// exact table match, lowercased match, substring match against the cleaned
// label, then the cleaned label itself as a fallback keyword.
func Resolve(category string) []Filter {
	if e, ok := categoryFilters[category]; ok {
		return normalize(e)
	}

	lower := strings.ToLower(category)
	if e, ok := categoryFilters[lower]; ok {
		return normalize(e)
	}

	cleaned := textutil.CleanLabel(category)
	for _, key := range sortedKeys() {
		if strings.Contains(cleaned, key) || strings.Contains(key, cleaned) {
			return normalize(categoryFilters[key])
		}
	}

	if len(cleaned) > 2 {
		return []Filter{ByKeyword(cleaned)}
	}
	return []Filter{Unfiltered}
}

func normalize(e entry) []Filter {
	if e.none {
		return []Filter{Unfiltered}
	}
	out := make([]Filter, len(e.keywords))
	for i, keyword := range e.keywords {
		out[i] = ByKeyword(keyword)
	}
	return out
}
