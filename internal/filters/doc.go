// Package filters maps capture categories to corpus keyword filters.
//
// Category labels come from folder names in the capture tree. A static
// table maps the known capture types to the keyword (or keywords) that
// narrow the template corpus for them; unknown labels fall back to the
// cleaned label itself. Some categories, like raw device configs, have no
// templates at all and explicitly search the whole corpus.
package filters
