// Package service defines the collaborator interfaces the synchronization
// core consumes: the version-control client and the content classifier.
package service

import (
	"context"
	"time"
)

// Client enumerates revisions and changes for one repository. A Client is
// bound to a repository URL at construction and to a branch via SetBranch;
// both happen before any revision enumeration.
type Client interface {
	// Exists is a lightweight reachability probe used before registering a
	// new repository.
	Exists(ctx context.Context) (bool, error)

	// SetBranch scopes subsequent calls to the named branch.
	SetBranch(name string)

	// RevisionRange returns the earliest and latest revision numbers
	// touching the current branch. Both are 0 when the branch has no
	// revisions. Returns *scm.AccessError on connectivity or auth problems.
	RevisionRange(ctx context.Context) (first, last int64, err error)

	// Revisions returns a finite, forward-only iterator over the revision
	// log in [start, end], ordered by increasing revision number. The
	// iterator is not restartable; call Revisions again to replay a range.
	// Large histories are paged internally, never materialized eagerly.
	Revisions(ctx context.Context, start, end int64) RevisionIter
}

// RevisionIter walks revision log entries lazily.
type RevisionIter interface {
	// Next returns the next revision record, or ok=false when the range is
	// exhausted or an error occurred (check Err).
	Next(ctx context.Context) (RevisionRecord, bool)

	// Err returns the first error encountered during iteration.
	Err() error
}

// RevisionRecord is one revision log entry.
type RevisionRecord interface {
	// Number returns the revision number.
	Number() int64

	// Author returns the author name ("" when the log entry has none; the
	// importer substitutes the documented default).
	Author() string

	// Message returns the commit message.
	Message() string

	// Date returns the commit timestamp. Valid reports false for tombstone
	// entries some backends emit (no resolvable commit date); the importer
	// skips those revisions.
	Date() (t time.Time, valid bool)

	// Changes returns a lazy iterator over this revision's file changes,
	// in the order the backend reports them.
	Changes(ctx context.Context) ChangeIter
}

// ChangeIter walks the changes of one revision lazily.
type ChangeIter interface {
	Next(ctx context.Context) (ChangeRecord, bool)
	Err() error
}

// ChangeRecord is one file-path-level change within a revision.
type ChangeRecord interface {
	// Path returns the logical path of the changed file, relative to the
	// branch root, always starting with "/".
	Path() string

	// Type returns the change action letter (A/M/D/R).
	Type() string

	// Branch and Tag return the label this change is attributed to, when
	// the backend classifies changes by path pattern ("" when none).
	Branch() string
	Tag() string

	// IsDirectory reports whether the path is a directory. For deleting
	// changes the backend consults the previous revision, since the path
	// no longer exists at the current one.
	IsDirectory(ctx context.Context) (bool, error)

	// IsBinary reports whether the content is binary, from VCS-reported
	// MIME metadata, defaulting to text when absent.
	IsBinary(ctx context.Context) (bool, error)

	// Content fetches the file bytes at this revision.
	Content(ctx context.Context) ([]byte, error)

	// CopiedFrom returns rename/copy provenance: the source path and
	// revision, or ok=false when the change is not a copy.
	CopiedFrom() (path string, revision int64, ok bool)
}
