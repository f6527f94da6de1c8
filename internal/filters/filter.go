package filters

// Filter is one corpus search constraint. The explicit no-filter marker is
// distinct from a missing table entry: it means "consider the whole
// corpus", not "nothing known about this category".
type Filter struct {
	// Keyword constrains the corpus search when All is false.
	Keyword string
	// All marks the whole-corpus search.
	All bool
}

// Unfiltered is the whole-corpus marker.
var Unfiltered = Filter{All: true}

// ByKeyword builds a keyword filter.
func ByKeyword(keyword string) Filter {
	return Filter{Keyword: keyword}
}

// String renders the filter for logs and reports.
func (f Filter) String() string {
	if f.All {
		return "none"
	}
	return f.Keyword
}
