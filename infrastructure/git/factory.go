// Package git implements the version-control client over go-git. A
// repository's commit history is mapped onto numbered revisions: revision 1
// is the root commit of the branch's first-parent chain and numbers grow
// toward the head, so sequence numbers stay stable as history is appended.
package git

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/domain/service"
)

// ErrUnsupportedKind indicates no adapter is available for a repository's
// SCM kind.
var ErrUnsupportedKind = errors.New("unsupported scm kind")

// Factory builds git clients bound to repositories. Clones are kept under
// cloneDir, one directory per repository URL.
type Factory struct {
	cloneDir string
	logger   *slog.Logger
}

func NewFactory(cloneDir string, logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{cloneDir: cloneDir, logger: logger}
}

// ClientFor returns a client for the repository. Only git repositories are
// supported; other kinds need their own adapter.
func (f *Factory) ClientFor(repo scm.Repository) (service.Client, error) {
	if repo.Kind() != scm.KindGit {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, repo.Kind())
	}
	return NewClient(repo.URL(), f.cloneDir, f.logger), nil
}
