// Package scm contains the domain model for mirrored source-control
// metadata: repositories, revisions, per-file changes, and the deduplicated
// identity tables (authors, branches, tags, languages, files, paths).
package scm

import "time"

// Kind identifies the source-control system backing a repository.
type Kind string

// Supported SCM kinds.
const (
	KindGit Kind = "git"
	KindSVN Kind = "svn"
)

// Repository represents a registered source repository.
type Repository struct {
	id            int64
	kind          Kind
	url           string
	options       map[string]string
	branches      []string
	lastUpdatedAt time.Time
	createdAt     time.Time
}

// NewRepository creates a Repository that has not been persisted yet.
func NewRepository(kind Kind, url string, branches []string) Repository {
	return Repository{
		kind:     kind,
		url:      url,
		branches: append([]string(nil), branches...),
	}
}

// ReconstructRepository rebuilds a Repository from persisted state.
func ReconstructRepository(
	id int64,
	kind Kind,
	url string,
	options map[string]string,
	branches []string,
	lastUpdatedAt time.Time,
	createdAt time.Time,
) Repository {
	return Repository{
		id:            id,
		kind:          kind,
		url:           url,
		options:       options,
		branches:      branches,
		lastUpdatedAt: lastUpdatedAt,
		createdAt:     createdAt,
	}
}

// ID returns the surrogate key (0 when not yet persisted).
func (r Repository) ID() int64 { return r.id }

// Kind returns the SCM kind.
func (r Repository) Kind() Kind { return r.kind }

// URL returns the repository URL.
func (r Repository) URL() string { return r.url }

// Options returns adapter-specific options (trunk path, auth realm, ...).
func (r Repository) Options() map[string]string {
	out := make(map[string]string, len(r.options))
	for k, v := range r.options {
		out[k] = v
	}
	return out
}

// Option returns a single adapter option, or "" when unset.
func (r Repository) Option(key string) string { return r.options[key] }

// Branches returns the branch names configured for synchronization.
func (r Repository) Branches() []string {
	return append([]string(nil), r.branches...)
}

// HasBranch reports whether the named branch is configured.
func (r Repository) HasBranch(name string) bool {
	for _, b := range r.branches {
		if b == name {
			return true
		}
	}
	return false
}

// WithBranch returns a copy with the named branch added.
func (r Repository) WithBranch(name string) Repository {
	if r.HasBranch(name) {
		return r
	}
	r.branches = append(r.Branches(), name)
	return r
}

// WithoutBranch returns a copy with the named branch removed.
func (r Repository) WithoutBranch(name string) Repository {
	kept := make([]string, 0, len(r.branches))
	for _, b := range r.branches {
		if b != name {
			kept = append(kept, b)
		}
	}
	r.branches = kept
	return r
}

// LastUpdatedAt returns the end time of the last successful sync pass
// (zero when the repository has never completed a sync).
func (r Repository) LastUpdatedAt() time.Time { return r.lastUpdatedAt }

// MarkUpdated returns a copy stamped with the given sync completion time.
func (r Repository) MarkUpdated(t time.Time) Repository {
	r.lastUpdatedAt = t
	return r
}

// CreatedAt returns the registration time.
func (r Repository) CreatedAt() time.Time { return r.createdAt }
