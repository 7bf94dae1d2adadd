package scm

import "fmt"

// ChangeType classifies one file-path-level modification within a revision.
type ChangeType string

// ChangeType values.
const (
	ChangeAdd    ChangeType = "A"
	ChangeModify ChangeType = "M"
	ChangeDelete ChangeType = "D"
	ChangeRename ChangeType = "R"
)

// ParseChangeType converts an adapter-reported action letter.
func ParseChangeType(s string) (ChangeType, error) {
	switch ChangeType(s) {
	case ChangeAdd, ChangeModify, ChangeDelete, ChangeRename:
		return ChangeType(s), nil
	default:
		return "", fmt.Errorf("unknown change type %q", s)
	}
}

// IsDelete reports whether the change removes the path.
func (t ChangeType) IsDelete() bool { return t == ChangeDelete }

// Change is one file-path-level modification belonging to a Revision,
// unique on (revisionID, filePathID) and immutable after creation.
// Branch and tag labels are attributed per change: some VCS backends infer
// them from path prefix matching, so they are a property of the change
// record rather than of the revision.
type Change struct {
	id         int64
	revisionID int64
	filePathID int64
	changeType ChangeType
	branchID   int64
	tagID      int64
}

// NewChange creates a Change that has not been persisted yet.
// branchID and tagID are 0 when the change carries no label.
func NewChange(revisionID, filePathID int64, changeType ChangeType, branchID, tagID int64) Change {
	return Change{
		revisionID: revisionID,
		filePathID: filePathID,
		changeType: changeType,
		branchID:   branchID,
		tagID:      tagID,
	}
}

// ReconstructChange rebuilds a Change from persisted state.
func ReconstructChange(id, revisionID, filePathID int64, changeType ChangeType, branchID, tagID int64) Change {
	return Change{
		id:         id,
		revisionID: revisionID,
		filePathID: filePathID,
		changeType: changeType,
		branchID:   branchID,
		tagID:      tagID,
	}
}

// ID returns the surrogate key (0 when not yet persisted).
func (c Change) ID() int64 { return c.id }

// RevisionID returns the owning revision key.
func (c Change) RevisionID() int64 { return c.revisionID }

// FilePathID returns the resolved path identity key.
func (c Change) FilePathID() int64 { return c.filePathID }

// Type returns the change classification.
func (c Change) Type() ChangeType { return c.changeType }

// BranchID returns the attributed branch label key (0 when none).
func (c Change) BranchID() int64 { return c.branchID }

// TagID returns the attributed tag label key (0 when none).
func (c Change) TagID() int64 { return c.tagID }
