// Package service implements the synchronization pipeline: identity
// resolution, per-revision import, and branch/repository drivers.
package service

import (
	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/internal/database"
)

// Stores bundles the domain stores the pipeline needs, all bound to the
// same connection or transaction.
type Stores struct {
	Repositories scm.RepositoryStore
	Authors      scm.AuthorStore
	Branches     scm.BranchStore
	Tags         scm.TagStore
	Languages    scm.LanguageStore
	Files        scm.FileStore
	Paths        scm.PathStore
	FilePaths    scm.FilePathStore
	Revisions    scm.RevisionStore
	Changes      scm.ChangeStore
	Locs         scm.LocStore
}

// StoresFactory binds a store bundle to a connection. The revision
// importer calls it with each new transaction so every write of one
// revision shares that transaction.
type StoresFactory func(conn database.Conn) Stores
