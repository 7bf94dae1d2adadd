package service

// LineCount is the per-language line classification for one file's content.
type LineCount struct {
	Language string
	Code     int
	Comments int
	Blanks   int
}

// Classifier counts code, comment, and blank lines per language for raw
// file content. Pure function of its inputs; may return an empty slice for
// unrecognized or empty content.
type Classifier interface {
	Classify(filename string, content []byte) ([]LineCount, error)
}
