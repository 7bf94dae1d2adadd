package git

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/domain/service"
)

// ErrBranchNotFound indicates the requested branch was not found.
var ErrBranchNotFound = errors.New("branch not found")

// Client implements the version-control client over a local clone managed
// under cloneDir. The clone is created (or fetched) lazily on first use.
type Client struct {
	url      string
	cloneDir string
	branch   string
	logger   *slog.Logger

	repo    *gogit.Repository
	history map[string][]plumbing.Hash
}

func NewClient(url, cloneDir string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		url:      url,
		cloneDir: cloneDir,
		logger:   logger,
		history:  map[string][]plumbing.Hash{},
	}
}

// Exists probes the remote without cloning it.
func (c *Client) Exists(ctx context.Context) (bool, error) {
	remote := gogit.NewRemote(memory.NewStorage(), &gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{c.url},
	})
	_, err := remote.ListContext(ctx, &gogit.ListOptions{})
	if err != nil {
		if errors.Is(err, transport.ErrRepositoryNotFound) {
			return false, nil
		}
		return false, scm.NewAccessError(c.url, err)
	}
	return true, nil
}

// SetBranch scopes subsequent revision enumeration to the named branch.
func (c *Client) SetBranch(name string) {
	c.branch = name
}

// RevisionRange returns (1, n) where n is the length of the branch's
// first-parent chain, or (0, 0) for a branch with no commits.
func (c *Client) RevisionRange(ctx context.Context) (int64, int64, error) {
	chain, err := c.branchHistory(ctx)
	if err != nil {
		return 0, 0, err
	}
	if len(chain) == 0 {
		return 0, 0, nil
	}
	return 1, int64(len(chain)), nil
}

// Revisions returns a lazy iterator over revisions [start, end]. Commit
// objects are loaded one at a time as the iterator advances.
func (c *Client) Revisions(ctx context.Context, start, end int64) service.RevisionIter {
	chain, err := c.branchHistory(ctx)
	if err != nil {
		return &revisionIter{err: err}
	}
	if start < 1 {
		start = 1
	}
	if end > int64(len(chain)) {
		end = int64(len(chain))
	}
	return &revisionIter{client: c, chain: chain, next: start, end: end}
}

// ensure opens the local clone, creating or fetching it as needed.
func (c *Client) ensure(ctx context.Context) (*gogit.Repository, error) {
	if c.repo != nil {
		return c.repo, nil
	}

	clonePath := filepath.Join(c.cloneDir, sanitizeURLForPath(c.url))
	repo, err := gogit.PlainOpen(clonePath)
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		c.logger.InfoContext(ctx, "cloning repository", "url", c.url, "path", clonePath)
		repo, err = gogit.PlainCloneContext(ctx, clonePath, true, &gogit.CloneOptions{
			URL: c.url,
		})
		if err != nil {
			return nil, scm.NewAccessError(c.url, fmt.Errorf("clone repository: %w", err))
		}
		c.repo = repo
		return repo, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	err = repo.FetchContext(ctx, &gogit.FetchOptions{RemoteName: "origin", Force: true})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return nil, scm.NewAccessError(c.url, fmt.Errorf("fetch repository: %w", err))
	}

	c.repo = repo
	return repo, nil
}

// branchHistory returns the first-parent commit chain of the current
// branch, oldest first, so index i holds revision number i+1.
func (c *Client) branchHistory(ctx context.Context) ([]plumbing.Hash, error) {
	if chain, ok := c.history[c.branch]; ok {
		return chain, nil
	}

	repo, err := c.ensure(ctx)
	if err != nil {
		return nil, err
	}

	ref, err := c.branchRef(repo)
	if err != nil {
		return nil, err
	}

	var chain []plumbing.Hash
	for hash := ref.Hash(); !hash.IsZero(); {
		commit, err := repo.CommitObject(hash)
		if err != nil {
			return nil, fmt.Errorf("load commit %s: %w", hash, err)
		}
		chain = append(chain, hash)
		if len(commit.ParentHashes) == 0 {
			break
		}
		hash = commit.ParentHashes[0]
	}

	// Walked head to root; revision numbers count the other way.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	c.history[c.branch] = chain
	return chain, nil
}

func (c *Client) branchRef(repo *gogit.Repository) (*plumbing.Reference, error) {
	if c.branch == "" {
		head, err := repo.Head()
		if err != nil {
			return nil, fmt.Errorf("get HEAD: %w", err)
		}
		return head, nil
	}

	// Try local branch first, then remote.
	ref, err := repo.Reference(plumbing.NewBranchReferenceName(c.branch), true)
	if err == nil {
		return ref, nil
	}
	ref, err = repo.Reference(plumbing.NewRemoteReferenceName("origin", c.branch), true)
	if err == nil {
		return ref, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrBranchNotFound, c.branch)
}

func sanitizeURLForPath(url string) string {
	result := make([]byte, 0, len(url))
	for _, b := range []byte(url) {
		switch b {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', '@':
			result = append(result, '_')
		default:
			result = append(result, b)
		}
	}

	s := string(result)
	for _, prefix := range []string{"https___", "http___", "git___", "file____", "file___"} {
		if len(s) > len(prefix) && s[:len(prefix)] == prefix {
			s = s[len(prefix):]
			break
		}
	}

	// Keep the directory name short enough that the full clone path stays
	// under Windows MAX_PATH even with git internals appended.
	const maxLen = 80
	if len(s) > maxLen {
		hash := sha256.Sum256([]byte(url))
		suffix := hex.EncodeToString(hash[:8])
		s = s[:maxLen-len(suffix)-1] + "-" + suffix
	}
	return s
}

var _ service.Client = (*Client)(nil)
