package corpus

// Template is one parsing template row from the corpus.
type Template struct {
	// ID is the corpus-assigned identity; opaque to the matcher.
	ID int64
	// CLICommand is the command label, used for display and for keyword
	// filtering.
	CLICommand string
	// Content is the TextFSM template definition, consumed only by the
	// parsing engine.
	Content string
}
