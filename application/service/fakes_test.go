package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/domain/service"
	"github.com/xray4scm/xray/infrastructure/persistence"
	"github.com/xray4scm/xray/internal/database"
	"github.com/xray4scm/xray/internal/testdb"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testStoresFactory(conn database.Conn) Stores {
	s := persistence.NewStores(conn)
	return Stores{
		Repositories: s.Repositories,
		Authors:      s.Authors,
		Branches:     s.Branches,
		Tags:         s.Tags,
		Languages:    s.Languages,
		Files:        s.Files,
		Paths:        s.Paths,
		FilePaths:    s.FilePaths,
		Revisions:    s.Revisions,
		Changes:      s.Changes,
		Locs:         s.Locs,
	}
}

func newTestRepository(t *testing.T, db database.Database, branches ...string) scm.Repository {
	t.Helper()
	stores := testStoresFactory(db)
	repo, err := stores.Repositories.Save(context.Background(),
		scm.NewRepository(scm.KindSVN, "svn://example.org/project", branches))
	if err != nil {
		t.Fatalf("save repository: %v", err)
	}
	return repo
}

// fakeClient serves a scripted revision history.
type fakeClient struct {
	mu        sync.Mutex
	exists    bool
	existsErr error
	rangeErr  error
	revisions []*fakeRevision
	branch    string
	requests  [][2]int64
}

func (c *fakeClient) Exists(context.Context) (bool, error) { return c.exists, c.existsErr }

func (c *fakeClient) SetBranch(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.branch = name
}

func (c *fakeClient) RevisionRange(context.Context) (int64, int64, error) {
	if c.rangeErr != nil {
		return 0, 0, c.rangeErr
	}
	if len(c.revisions) == 0 {
		return 0, 0, nil
	}
	return c.revisions[0].number, c.revisions[len(c.revisions)-1].number, nil
}

func (c *fakeClient) Revisions(_ context.Context, start, end int64) service.RevisionIter {
	c.mu.Lock()
	c.requests = append(c.requests, [2]int64{start, end})
	c.mu.Unlock()
	var window []*fakeRevision
	for _, rev := range c.revisions {
		if rev.number >= start && rev.number <= end {
			window = append(window, rev)
		}
	}
	return &fakeRevisionIter{revisions: window}
}

type fakeRevisionIter struct {
	revisions []*fakeRevision
	pos       int
}

func (i *fakeRevisionIter) Next(context.Context) (service.RevisionRecord, bool) {
	if i.pos >= len(i.revisions) {
		return nil, false
	}
	rev := i.revisions[i.pos]
	i.pos++
	return rev, true
}

func (i *fakeRevisionIter) Err() error { return nil }

type fakeRevision struct {
	number  int64
	author  string
	message string
	date    time.Time
	noDate  bool
	changes []*fakeChange
}

func (r *fakeRevision) Number() int64   { return r.number }
func (r *fakeRevision) Author() string  { return r.author }
func (r *fakeRevision) Message() string { return r.message }

func (r *fakeRevision) Date() (time.Time, bool) {
	if r.noDate {
		return time.Time{}, false
	}
	return r.date, true
}

func (r *fakeRevision) Changes(context.Context) service.ChangeIter {
	return &fakeChangeIter{changes: r.changes}
}

type fakeChangeIter struct {
	changes []*fakeChange
	pos     int
}

func (i *fakeChangeIter) Next(context.Context) (service.ChangeRecord, bool) {
	if i.pos >= len(i.changes) {
		return nil, false
	}
	ch := i.changes[i.pos]
	i.pos++
	return ch, true
}

func (i *fakeChangeIter) Err() error { return nil }

type fakeChange struct {
	path       string
	changeType string
	branch     string
	tag        string
	directory  bool
	binary     bool
	content    []byte
	contentErr error
	copyPath   string
	copyRev    int64
}

func (c *fakeChange) Path() string   { return c.path }
func (c *fakeChange) Type() string   { return c.changeType }
func (c *fakeChange) Branch() string { return c.branch }
func (c *fakeChange) Tag() string    { return c.tag }

func (c *fakeChange) IsDirectory(context.Context) (bool, error) { return c.directory, nil }
func (c *fakeChange) IsBinary(context.Context) (bool, error)    { return c.binary, nil }

func (c *fakeChange) Content(context.Context) ([]byte, error) {
	if c.contentErr != nil {
		return nil, c.contentErr
	}
	return c.content, nil
}

func (c *fakeChange) CopiedFrom() (string, int64, bool) {
	return c.copyPath, c.copyRev, c.copyPath != ""
}

// lineClassifier is a simple line-per-line classifier: lines starting with
// "#" are comments, empty lines are blank, everything else is code. It
// reports all content as one language keyed by file extension.
type lineClassifier struct {
	err error
}

func (c *lineClassifier) Classify(filename string, content []byte) ([]service.LineCount, error) {
	if c.err != nil {
		return nil, c.err
	}
	if len(content) == 0 {
		return nil, nil
	}
	count := service.LineCount{Language: scm.Extension(filename)}
	if count.Language == "" {
		count.Language = "text"
	}
	for _, line := range strings.Split(strings.TrimSuffix(string(content), "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			count.Blanks++
		case strings.HasPrefix(trimmed, "#"):
			count.Comments++
		default:
			count.Code++
		}
	}
	return []service.LineCount{count}, nil
}

func newTestImporter(t *testing.T, classifier service.Classifier) (database.Database, *RevisionImporter) {
	t.Helper()
	db := testdb.New(t)
	importer := NewRevisionImporter(db, testStoresFactory, classifier, testLogger())
	return db, importer
}

func makeRevision(number int64, changes ...*fakeChange) *fakeRevision {
	return &fakeRevision{
		number:  number,
		author:  "alice",
		message: fmt.Sprintf("revision %d", number),
		date:    time.Date(2009, 3, 14, 15, 9, 0, 0, time.UTC).Add(time.Duration(number) * time.Hour),
		changes: changes,
	}
}
