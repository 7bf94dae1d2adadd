package scm

// NoAuthor is recorded for revisions whose log entry carries no author.
// The default is assigned at the adapter boundary, not at access time.
const NoAuthor = "(no author)"

// Author is a deduplicated revision author identity.
type Author struct {
	id   int64
	name string
}

// NewAuthor creates an Author that has not been persisted yet.
// Empty names collapse to NoAuthor.
func NewAuthor(name string) Author {
	if name == "" {
		name = NoAuthor
	}
	return Author{name: name}
}

// ReconstructAuthor rebuilds an Author from persisted state.
func ReconstructAuthor(id int64, name string) Author {
	return Author{id: id, name: name}
}

// ID returns the surrogate key (0 when not yet persisted).
func (a Author) ID() int64 { return a.id }

// Name returns the author name.
func (a Author) Name() string { return a.name }
