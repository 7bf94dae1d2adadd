package git

import (
	"context"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/xray4scm/xray/domain/service"
)

type revisionIter struct {
	client *Client
	chain  []plumbing.Hash
	next   int64
	end    int64
	err    error
}

func (i *revisionIter) Next(ctx context.Context) (service.RevisionRecord, bool) {
	if i.err != nil || i.next > i.end {
		return nil, false
	}

	number := i.next
	i.next++

	commit, err := i.client.repo.CommitObject(i.chain[number-1])
	if err != nil {
		i.err = fmt.Errorf("load commit %s: %w", i.chain[number-1], err)
		return nil, false
	}
	return &revisionRecord{client: i.client, commit: commit, number: number, branch: i.client.branch}, true
}

func (i *revisionIter) Err() error { return i.err }

type revisionRecord struct {
	client *Client
	commit *object.Commit
	number int64
	branch string
}

func (r *revisionRecord) Number() int64   { return r.number }
func (r *revisionRecord) Author() string  { return r.commit.Author.Name }
func (r *revisionRecord) Message() string { return r.commit.Message }

func (r *revisionRecord) Date() (time.Time, bool) {
	when := r.commit.Committer.When
	return when, !when.IsZero()
}

// Changes diffs the commit against its first parent, with rename detection
// enabled so moved files come through as a single rename change.
func (r *revisionRecord) Changes(ctx context.Context) service.ChangeIter {
	commitTree, err := r.commit.Tree()
	if err != nil {
		return &changeIter{err: fmt.Errorf("get commit tree: %w", err)}
	}

	parentTree := &object.Tree{}
	if len(r.commit.ParentHashes) > 0 {
		parent, err := r.client.repo.CommitObject(r.commit.ParentHashes[0])
		if err != nil {
			return &changeIter{err: fmt.Errorf("get parent commit: %w", err)}
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return &changeIter{err: fmt.Errorf("get parent tree: %w", err)}
		}
	}

	diff, err := object.DiffTreeWithOptions(ctx, parentTree, commitTree, object.DefaultDiffTreeOptions)
	if err != nil {
		return &changeIter{err: fmt.Errorf("compute diff: %w", err)}
	}

	return &changeIter{record: r, diff: diff}
}

type changeIter struct {
	record *revisionRecord
	diff   object.Changes
	pos    int
	err    error
}

func (i *changeIter) Next(ctx context.Context) (service.ChangeRecord, bool) {
	if i.err != nil || i.pos >= len(i.diff) {
		return nil, false
	}
	diff := i.diff[i.pos]
	i.pos++
	return &changeRecord{record: i.record, diff: diff}, true
}

func (i *changeIter) Err() error { return i.err }

type changeRecord struct {
	record *revisionRecord
	diff   *object.Change

	content       []byte
	contentLoaded bool
}

func (c *changeRecord) Path() string {
	if c.diff.To.Name != "" {
		return "/" + c.diff.To.Name
	}
	return "/" + c.diff.From.Name
}

func (c *changeRecord) Type() string {
	switch {
	case c.diff.From.Name == "":
		return "A"
	case c.diff.To.Name == "":
		return "D"
	case c.diff.From.Name != c.diff.To.Name:
		return "R"
	default:
		return "M"
	}
}

// Branch attributes every change to the branch being walked; git has no
// per-path branch structure to classify against.
func (c *changeRecord) Branch() string { return c.record.branch }

func (c *changeRecord) Tag() string { return "" }

// IsDirectory reports true only for submodule entries: git tree diffs list
// blobs, so plain directories never show up as changes.
func (c *changeRecord) IsDirectory(context.Context) (bool, error) {
	entry := c.diff.To.TreeEntry
	if c.diff.To.Name == "" {
		entry = c.diff.From.TreeEntry
	}
	return entry.Mode == filemode.Submodule, nil
}

func (c *changeRecord) IsBinary(ctx context.Context) (bool, error) {
	if binary, known := binaryByExtension(c.Path()); known {
		return binary, nil
	}
	content, err := c.Content(ctx)
	if err != nil {
		return false, err
	}
	return sniffBinary(content), nil
}

func (c *changeRecord) Content(context.Context) ([]byte, error) {
	if c.contentLoaded {
		return c.content, nil
	}

	file, err := c.record.commit.File(c.diff.To.Name)
	if err != nil {
		return nil, fmt.Errorf("get file %s: %w", c.diff.To.Name, err)
	}
	text, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", c.diff.To.Name, err)
	}

	c.content = []byte(text)
	c.contentLoaded = true
	return c.content, nil
}

// CopiedFrom reports rename provenance. The source revision is the parent
// position on the first-parent chain, where the old path last existed.
func (c *changeRecord) CopiedFrom() (string, int64, bool) {
	if c.Type() != "R" {
		return "", 0, false
	}
	return "/" + c.diff.From.Name, c.record.number - 1, true
}
