package persistence

import (
	"encoding/json"
	"time"

	"github.com/xray4scm/xray/domain/scm"
)

// RepositoryMapper maps between scm.Repository and RepositoryModel.
// Branch configuration rows travel separately (see RepositoryStore);
// the mapper leaves the branch list empty.
type RepositoryMapper struct{}

// ToDomain converts a RepositoryModel to a domain Repository.
func (m RepositoryMapper) ToDomain(e RepositoryModel) scm.Repository {
	var options map[string]string
	if e.Options != "" {
		// Unknown or corrupt option payloads degrade to no options.
		_ = json.Unmarshal([]byte(e.Options), &options)
	}

	var lastUpdatedAt time.Time
	if e.LastUpdatedAt != nil {
		lastUpdatedAt = *e.LastUpdatedAt
	}

	return scm.ReconstructRepository(
		e.ID,
		scm.Kind(e.Kind),
		e.URL,
		options,
		nil,
		lastUpdatedAt,
		e.CreatedAt,
	)
}

// ToModel converts a domain Repository to a RepositoryModel.
func (m RepositoryMapper) ToModel(r scm.Repository) RepositoryModel {
	var options string
	if opts := r.Options(); len(opts) > 0 {
		if raw, err := json.Marshal(opts); err == nil {
			options = string(raw)
		}
	}

	var lastUpdatedAt *time.Time
	if !r.LastUpdatedAt().IsZero() {
		t := r.LastUpdatedAt()
		lastUpdatedAt = &t
	}

	return RepositoryModel{
		ID:            r.ID(),
		Kind:          string(r.Kind()),
		URL:           r.URL(),
		Options:       options,
		LastUpdatedAt: lastUpdatedAt,
		CreatedAt:     r.CreatedAt(),
	}
}

// AuthorMapper maps between scm.Author and AuthorModel.
type AuthorMapper struct{}

// ToDomain converts an AuthorModel to a domain Author.
func (m AuthorMapper) ToDomain(e AuthorModel) scm.Author {
	return scm.ReconstructAuthor(e.ID, e.Name)
}

// ToModel converts a domain Author to an AuthorModel.
func (m AuthorMapper) ToModel(a scm.Author) AuthorModel {
	return AuthorModel{ID: a.ID(), Name: a.Name()}
}

// BranchMapper maps between scm.Branch and BranchModel.
type BranchMapper struct{}

// ToDomain converts a BranchModel to a domain Branch.
func (m BranchMapper) ToDomain(e BranchModel) scm.Branch {
	return scm.ReconstructBranch(e.ID, e.Name)
}

// ToModel converts a domain Branch to a BranchModel.
func (m BranchMapper) ToModel(b scm.Branch) BranchModel {
	return BranchModel{ID: b.ID(), Name: b.Name()}
}

// TagMapper maps between scm.Tag and TagModel.
type TagMapper struct{}

// ToDomain converts a TagModel to a domain Tag.
func (m TagMapper) ToDomain(e TagModel) scm.Tag {
	return scm.ReconstructTag(e.ID, e.Name)
}

// ToModel converts a domain Tag to a TagModel.
func (m TagMapper) ToModel(t scm.Tag) TagModel {
	return TagModel{ID: t.ID(), Name: t.Name()}
}

// LanguageMapper maps between scm.Language and LanguageModel.
type LanguageMapper struct{}

// ToDomain converts a LanguageModel to a domain Language.
func (m LanguageMapper) ToDomain(e LanguageModel) scm.Language {
	return scm.ReconstructLanguage(e.ID, e.Name)
}

// ToModel converts a domain Language to a LanguageModel.
func (m LanguageMapper) ToModel(l scm.Language) LanguageModel {
	return LanguageModel{ID: l.ID(), Name: l.Name()}
}

// FileMapper maps between scm.File and FileModel.
type FileMapper struct{}

// ToDomain converts a FileModel to a domain File.
func (m FileMapper) ToDomain(e FileModel) scm.File {
	return scm.ReconstructFile(e.ID, e.Name)
}

// ToModel converts a domain File to a FileModel.
func (m FileMapper) ToModel(f scm.File) FileModel {
	return FileModel{ID: f.ID(), Name: f.Name()}
}

// PathMapper maps between scm.Path and PathModel.
type PathMapper struct{}

// ToDomain converts a PathModel to a domain Path.
func (m PathMapper) ToDomain(e PathModel) scm.Path {
	return scm.ReconstructPath(e.ID, e.Directory)
}

// ToModel converts a domain Path to a PathModel.
func (m PathMapper) ToModel(p scm.Path) PathModel {
	return PathModel{ID: p.ID(), Directory: p.Directory()}
}

// FilePathMapper maps between scm.FilePath and FilePathModel.
type FilePathMapper struct{}

// ToDomain converts a FilePathModel to a domain FilePath.
func (m FilePathMapper) ToDomain(e FilePathModel) scm.FilePath {
	return scm.ReconstructFilePath(e.ID, e.FileID, e.PathID)
}

// ToModel converts a domain FilePath to a FilePathModel.
func (m FilePathMapper) ToModel(fp scm.FilePath) FilePathModel {
	return FilePathModel{ID: fp.ID(), FileID: fp.FileID(), PathID: fp.PathID()}
}

// RevisionMapper maps between scm.Revision and RevisionModel.
type RevisionMapper struct{}

// ToDomain converts a RevisionModel to a domain Revision.
func (m RevisionMapper) ToDomain(e RevisionModel) scm.Revision {
	return scm.ReconstructRevision(
		e.ID,
		e.Number,
		e.RepositoryID,
		e.AuthorID,
		e.Message,
		e.CommittedAt,
	)
}

// ToModel converts a domain Revision to a RevisionModel.
func (m RevisionMapper) ToModel(r scm.Revision) RevisionModel {
	return RevisionModel{
		ID:           r.ID(),
		Number:       r.Number(),
		RepositoryID: r.RepositoryID(),
		AuthorID:     r.AuthorID(),
		Message:      r.Message(),
		CommittedAt:  r.CommittedAt(),
	}
}

// ChangeMapper maps between scm.Change and ChangeModel.
type ChangeMapper struct{}

// ToDomain converts a ChangeModel to a domain Change.
func (m ChangeMapper) ToDomain(e ChangeModel) scm.Change {
	var branchID, tagID int64
	if e.BranchID != nil {
		branchID = *e.BranchID
	}
	if e.TagID != nil {
		tagID = *e.TagID
	}
	return scm.ReconstructChange(
		e.ID,
		e.RevisionID,
		e.FilePathID,
		scm.ChangeType(e.ChangeType),
		branchID,
		tagID,
	)
}

// ToModel converts a domain Change to a ChangeModel.
func (m ChangeMapper) ToModel(c scm.Change) ChangeModel {
	var branchID, tagID *int64
	if id := c.BranchID(); id != 0 {
		branchID = &id
	}
	if id := c.TagID(); id != 0 {
		tagID = &id
	}
	return ChangeModel{
		ID:         c.ID(),
		RevisionID: c.RevisionID(),
		FilePathID: c.FilePathID(),
		ChangeType: string(c.Type()),
		BranchID:   branchID,
		TagID:      tagID,
	}
}

// LocMapper maps between scm.Loc and LocModel.
type LocMapper struct{}

// ToDomain converts a LocModel to a domain Loc.
func (m LocMapper) ToDomain(e LocModel) scm.Loc {
	return scm.ReconstructLoc(
		e.ID,
		e.LanguageID,
		e.ChangeID,
		e.CodeLines,
		e.CommentLines,
		e.BlankLines,
	)
}

// ToModel converts a domain Loc to a LocModel.
func (m LocMapper) ToModel(l scm.Loc) LocModel {
	return LocModel{
		ID:           l.ID(),
		LanguageID:   l.LanguageID(),
		ChangeID:     l.ChangeID(),
		CodeLines:    l.CodeLines(),
		CommentLines: l.CommentLines(),
		BlankLines:   l.BlankLines(),
	}
}
