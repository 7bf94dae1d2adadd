package persistence

import (
	"github.com/xray4scm/xray/internal/database"
)

// Stores bundles every scm store bound to one Conn. The revision importer
// rebinds a fresh bundle onto each transaction so that everything it
// touches commits or rolls back together.
type Stores struct {
	Repositories RepositoryStore
	Authors      AuthorStore
	Branches     BranchStore
	Tags         TagStore
	Languages    LanguageStore
	Files        FileStore
	Paths        PathStore
	FilePaths    FilePathStore
	Revisions    RevisionStore
	Changes      ChangeStore
	Locs         LocStore
}

// NewStores creates a store bundle bound to conn.
func NewStores(conn database.Conn) Stores {
	return Stores{
		Repositories: NewRepositoryStore(conn),
		Authors:      NewAuthorStore(conn),
		Branches:     NewBranchStore(conn),
		Tags:         NewTagStore(conn),
		Languages:    NewLanguageStore(conn),
		Files:        NewFileStore(conn),
		Paths:        NewPathStore(conn),
		FilePaths:    NewFilePathStore(conn),
		Revisions:    NewRevisionStore(conn),
		Changes:      NewChangeStore(conn),
		Locs:         NewLocStore(conn),
	}
}
