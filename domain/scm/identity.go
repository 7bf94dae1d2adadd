package scm

// The identity tables below form a shared, append-only dictionary: rows are
// created on first sight and never deleted, so they can anchor history even
// after the underlying file disappears from the repository head.

// Branch is a deduplicated branch label. Names are global, not scoped per
// repository: branch naming conventions recur across repositories.
type Branch struct {
	id   int64
	name string
}

// NewBranch creates a Branch that has not been persisted yet.
func NewBranch(name string) Branch { return Branch{name: name} }

// ReconstructBranch rebuilds a Branch from persisted state.
func ReconstructBranch(id int64, name string) Branch { return Branch{id: id, name: name} }

// ID returns the surrogate key (0 when not yet persisted).
func (b Branch) ID() int64 { return b.id }

// Name returns the branch label.
func (b Branch) Name() string { return b.name }

// Tag is a deduplicated tag label, global like Branch.
type Tag struct {
	id   int64
	name string
}

// NewTag creates a Tag that has not been persisted yet.
func NewTag(name string) Tag { return Tag{name: name} }

// ReconstructTag rebuilds a Tag from persisted state.
func ReconstructTag(id int64, name string) Tag { return Tag{id: id, name: name} }

// ID returns the surrogate key (0 when not yet persisted).
func (t Tag) ID() int64 { return t.id }

// Name returns the tag label.
func (t Tag) Name() string { return t.name }

// Language is a deduplicated language tag for LOC rows.
type Language struct {
	id   int64
	name string
}

// NewLanguage creates a Language that has not been persisted yet.
func NewLanguage(name string) Language { return Language{name: name} }

// ReconstructLanguage rebuilds a Language from persisted state.
func ReconstructLanguage(id int64, name string) Language { return Language{id: id, name: name} }

// ID returns the surrogate key (0 when not yet persisted).
func (l Language) ID() int64 { return l.id }

// Name returns the language name.
func (l Language) Name() string { return l.name }

// File is the basename component of a decomposed filesystem path.
type File struct {
	id   int64
	name string
}

// NewFile creates a File that has not been persisted yet.
func NewFile(name string) File { return File{name: name} }

// ReconstructFile rebuilds a File from persisted state.
func ReconstructFile(id int64, name string) File { return File{id: id, name: name} }

// ID returns the surrogate key (0 when not yet persisted).
func (f File) ID() int64 { return f.id }

// Name returns the basename.
func (f File) Name() string { return f.name }

// Path is the directory component of a decomposed filesystem path.
type Path struct {
	id        int64
	directory string
}

// NewPath creates a Path that has not been persisted yet.
func NewPath(directory string) Path { return Path{directory: directory} }

// ReconstructPath rebuilds a Path from persisted state.
func ReconstructPath(id int64, directory string) Path {
	return Path{id: id, directory: directory}
}

// ID returns the surrogate key (0 when not yet persisted).
func (p Path) ID() int64 { return p.id }

// Directory returns the directory string.
func (p Path) Directory() string { return p.directory }

// FilePath joins a File and a Path into a stable identity for one logical
// filesystem path, unique on the (fileID, pathID) pair.
type FilePath struct {
	id     int64
	fileID int64
	pathID int64
}

// NewFilePath creates a FilePath join that has not been persisted yet.
func NewFilePath(fileID, pathID int64) FilePath {
	return FilePath{fileID: fileID, pathID: pathID}
}

// ReconstructFilePath rebuilds a FilePath from persisted state.
func ReconstructFilePath(id, fileID, pathID int64) FilePath {
	return FilePath{id: id, fileID: fileID, pathID: pathID}
}

// ID returns the surrogate key (0 when not yet persisted).
func (fp FilePath) ID() int64 { return fp.id }

// FileID returns the basename identity key.
func (fp FilePath) FileID() int64 { return fp.fileID }

// PathID returns the directory identity key.
func (fp FilePath) PathID() int64 { return fp.pathID }
