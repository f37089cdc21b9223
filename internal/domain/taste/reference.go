package taste

// ReferenceEntry is a corpus record: a short ingredient or dish text with a
// known taste profile, indexed by embedding.
type ReferenceEntry struct {
	ID        string
	Text      string
	Taste     Vector
	Embedding []float32
}

// Reference is a corpus entry matched during semantic taste lookup.
type Reference struct {
	Text       string
	Taste      Vector
	Similarity float64
}
