package scm

import "time"

// Revision is one atomic commit in a repository's history, identified by a
// per-repository monotonically increasing revision number. Revisions are
// immutable after creation: message and author are fixed historical facts.
type Revision struct {
	id           int64
	number       int64
	repositoryID int64
	authorID     int64
	message      string
	committedAt  time.Time
}

// NewRevision creates a Revision that has not been persisted yet.
func NewRevision(number, repositoryID, authorID int64, message string, committedAt time.Time) Revision {
	return Revision{
		number:       number,
		repositoryID: repositoryID,
		authorID:     authorID,
		message:      message,
		committedAt:  committedAt,
	}
}

// ReconstructRevision rebuilds a Revision from persisted state.
func ReconstructRevision(id, number, repositoryID, authorID int64, message string, committedAt time.Time) Revision {
	return Revision{
		id:           id,
		number:       number,
		repositoryID: repositoryID,
		authorID:     authorID,
		message:      message,
		committedAt:  committedAt,
	}
}

// ID returns the surrogate key (0 when not yet persisted).
func (r Revision) ID() int64 { return r.id }

// Number returns the per-repository revision number.
func (r Revision) Number() int64 { return r.number }

// RepositoryID returns the owning repository key.
func (r Revision) RepositoryID() int64 { return r.repositoryID }

// AuthorID returns the author identity key.
func (r Revision) AuthorID() int64 { return r.authorID }

// Message returns the commit message.
func (r Revision) Message() string { return r.message }

// CommittedAt returns the commit timestamp.
func (r Revision) CommittedAt() time.Time { return r.committedAt }
