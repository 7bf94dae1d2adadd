package scm

// WithID filters by the "id" column.
func WithID(id int64) Option {
	return WithCondition("id", id)
}

// WithName filters by the "name" column.
func WithName(name string) Option {
	return WithCondition("name", name)
}

// WithURL filters by the "url" column.
func WithURL(url string) Option {
	return WithCondition("url", url)
}

// WithKind filters by the "kind" column.
func WithKind(kind Kind) Option {
	return WithCondition("kind", string(kind))
}

// WithDirectory filters by the "directory" column.
func WithDirectory(dir string) Option {
	return WithCondition("directory", dir)
}

// WithRepositoryID filters by the "repository_id" column.
func WithRepositoryID(id int64) Option {
	return WithCondition("repository_id", id)
}

// WithRevisionID filters by the "revision_id" column.
func WithRevisionID(id int64) Option {
	return WithCondition("revision_id", id)
}

// WithRevisionNumber filters by the "number" column.
func WithRevisionNumber(n int64) Option {
	return WithCondition("number", n)
}

// WithFilePathID filters by the "file_path_id" column.
func WithFilePathID(id int64) Option {
	return WithCondition("file_path_id", id)
}

// WithFileID filters by the "file_id" column.
func WithFileID(id int64) Option {
	return WithCondition("file_id", id)
}

// WithPathID filters by the "path_id" column.
func WithPathID(id int64) Option {
	return WithCondition("path_id", id)
}

// WithChangeID filters by the "change_id" column.
func WithChangeID(id int64) Option {
	return WithCondition("change_id", id)
}

// WithChangeIDIn filters by the "change_id" column using IN.
func WithChangeIDIn(ids []int64) Option {
	return WithConditionIn("change_id", ids)
}

// WithLanguageID filters by the "language_id" column.
func WithLanguageID(id int64) Option {
	return WithCondition("language_id", id)
}
