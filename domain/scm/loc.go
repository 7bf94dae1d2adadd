package scm

// Loc holds the line-count triple for one language within one Change.
// A change may carry several Loc rows, one per detected language (for
// example embedded markup inside a template file). No Loc row ever exists
// for a deleting change. Counts are non-negative, and a given source line
// is counted in exactly one of the three buckets.
type Loc struct {
	id           int64
	languageID   int64
	changeID     int64
	codeLines    int
	commentLines int
	blankLines   int
}

// NewLoc creates a Loc row that has not been persisted yet.
func NewLoc(languageID, changeID int64, code, comments, blanks int) Loc {
	return Loc{
		languageID:   languageID,
		changeID:     changeID,
		codeLines:    code,
		commentLines: comments,
		blankLines:   blanks,
	}
}

// ReconstructLoc rebuilds a Loc from persisted state.
func ReconstructLoc(id, languageID, changeID int64, code, comments, blanks int) Loc {
	return Loc{
		id:           id,
		languageID:   languageID,
		changeID:     changeID,
		codeLines:    code,
		commentLines: comments,
		blankLines:   blanks,
	}
}

// ID returns the surrogate key (0 when not yet persisted).
func (l Loc) ID() int64 { return l.id }

// LanguageID returns the language identity key.
func (l Loc) LanguageID() int64 { return l.languageID }

// ChangeID returns the owning change key.
func (l Loc) ChangeID() int64 { return l.changeID }

// CodeLines returns the count of code lines.
func (l Loc) CodeLines() int { return l.codeLines }

// CommentLines returns the count of comment lines.
func (l Loc) CommentLines() int { return l.commentLines }

// BlankLines returns the count of blank lines.
func (l Loc) BlankLines() int { return l.blankLines }
