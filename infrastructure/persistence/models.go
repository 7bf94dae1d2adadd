package persistence

import "time"

// SchemaVersion is the current storage schema generation. A mismatch at
// open time means the database was created by an incompatible build.
const SchemaVersion = "2"

// MetadataModel records the schema version of the database.
type MetadataModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"column:version;size:45;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName returns the table name.
func (MetadataModel) TableName() string {
	return "xray_metadata"
}

// RepositoryModel represents a registered repository in the database.
type RepositoryModel struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	Kind          string     `gorm:"column:kind;size:45;not null;uniqueIndex:idx_repos_kind_url"`
	URL           string     `gorm:"column:url;size:1024;not null;uniqueIndex:idx_repos_kind_url"`
	Options       string     `gorm:"column:options;type:text"`
	LastUpdatedAt *time.Time `gorm:"column:last_updated_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (RepositoryModel) TableName() string {
	return "scm_repos"
}

// RepositoryBranchModel holds the branch names configured for sync on one
// repository. Distinct from the global branch label dictionary.
type RepositoryBranchModel struct {
	RepositoryID int64     `gorm:"column:repository_id;primaryKey"`
	Name         string    `gorm:"column:name;primaryKey;size:255"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

// TableName returns the table name.
func (RepositoryBranchModel) TableName() string {
	return "scm_repo_branches"
}

// AuthorModel represents a deduplicated revision author.
type AuthorModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:255;not null;uniqueIndex"`
}

// TableName returns the table name.
func (AuthorModel) TableName() string {
	return "scm_authors"
}

// BranchModel represents a globally deduplicated branch label.
type BranchModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:255;not null;uniqueIndex"`
}

// TableName returns the table name.
func (BranchModel) TableName() string {
	return "scm_branches"
}

// TagModel represents a globally deduplicated tag label.
type TagModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:255;not null;uniqueIndex"`
}

// TableName returns the table name.
func (TagModel) TableName() string {
	return "scm_tags"
}

// LanguageModel represents a deduplicated language tag.
type LanguageModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:45;not null;uniqueIndex"`
}

// TableName returns the table name.
func (LanguageModel) TableName() string {
	return "scm_languages"
}

// FileModel represents a deduplicated path basename.
type FileModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:255;not null;uniqueIndex"`
}

// TableName returns the table name.
func (FileModel) TableName() string {
	return "scm_files"
}

// PathModel represents a deduplicated directory.
type PathModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Directory string `gorm:"column:directory;size:1024;not null;uniqueIndex"`
}

// TableName returns the table name.
func (PathModel) TableName() string {
	return "scm_paths"
}

// FilePathModel joins a file basename and a directory into one logical
// path identity.
type FilePathModel struct {
	ID     int64 `gorm:"primaryKey;autoIncrement"`
	FileID int64 `gorm:"column:file_id;not null;uniqueIndex:idx_file_paths_file_path"`
	PathID int64 `gorm:"column:path_id;not null;uniqueIndex:idx_file_paths_file_path"`
}

// TableName returns the table name.
func (FilePathModel) TableName() string {
	return "scm_file_paths"
}

// RevisionModel represents one imported revision.
type RevisionModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Number       int64     `gorm:"column:number;not null;uniqueIndex:idx_revisions_number_repo"`
	RepositoryID int64     `gorm:"column:repository_id;not null;index;uniqueIndex:idx_revisions_number_repo"`
	AuthorID     int64     `gorm:"column:author_id;not null;index"`
	Message      string    `gorm:"column:message;type:text;not null"`
	CommittedAt  time.Time `gorm:"column:committed_at;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

// TableName returns the table name.
func (RevisionModel) TableName() string {
	return "scm_revisions"
}

// ChangeModel represents one file change within a revision.
type ChangeModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	RevisionID int64  `gorm:"column:revision_id;not null;index;uniqueIndex:idx_changes_revision_file_path"`
	FilePathID int64  `gorm:"column:file_path_id;not null;index;uniqueIndex:idx_changes_revision_file_path"`
	ChangeType string `gorm:"column:change_type;size:1;not null"`
	BranchID   *int64 `gorm:"column:branch_id;index"`
	TagID      *int64 `gorm:"column:tag_id;index"`
}

// TableName returns the table name.
func (ChangeModel) TableName() string {
	return "scm_changes"
}

// LocModel represents the per-language line counts of one change.
type LocModel struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	LanguageID   int64 `gorm:"column:language_id;not null;uniqueIndex:idx_locs_language_change"`
	ChangeID     int64 `gorm:"column:change_id;not null;index;uniqueIndex:idx_locs_language_change"`
	CodeLines    int   `gorm:"column:code_lines;not null"`
	CommentLines int   `gorm:"column:comment_lines;not null"`
	BlankLines   int   `gorm:"column:blank_lines;not null"`
}

// TableName returns the table name.
func (LocModel) TableName() string {
	return "scm_locs"
}
