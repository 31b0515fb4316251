package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reqdiff/domain"
)

const defaultHTTPTimeout = 15 * time.Second

// Loader implements domain.Source. It resolves manifest references from the
// local filesystem, stdin, HTTP(S) URLs, and git revisions.
type Loader struct {
	token   string
	timeout time.Duration
	stdin   io.Reader
}

// NewLoader creates a loader. The token, when non-empty, is sent as a bearer
// token on HTTP(S) requests.
func NewLoader(token string, timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &Loader{
		token:   token,
		timeout: timeout,
		stdin:   os.Stdin,
	}
}

var _ domain.Source = (*Loader)(nil)

// Load resolves a manifest reference to its raw text. "-" reads stdin,
// http(s) URLs are fetched, everything else is treated as a file path.
func (l *Loader) Load(ctx context.Context, ref string) (string, error) {
	switch {
	case ref == "-":
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil

	case strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://"):
		return l.fetch(ctx, ref)

	default:
		data, err := os.ReadFile(ref)
		if err != nil {
			return "", fmt.Errorf("failed to read manifest %q: %w", ref, err)
		}
		return string(data), nil
	}
}

// LoadAt reads the file at the given path as it exists at a git revision.
// The repository is discovered by walking up from the file's directory.
func (l *Loader) LoadAt(_ context.Context, path, revision string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %q: %w", path, err)
	}

	repo, err := gogit.PlainOpenWithOptions(filepath.Dir(absPath), &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to open git repository for %q: %w", path, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return "", fmt.Errorf("failed to resolve revision %q: %w", revision, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("failed to load commit %s: %w", hash, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to access worktree: %w", err)
	}

	relPath, err := filepath.Rel(worktree.Filesystem.Root(), absPath)
	if err != nil {
		return "", fmt.Errorf("failed to locate %q inside the repository: %w", path, err)
	}

	file, err := commit.File(filepath.ToSlash(relPath))
	if err != nil {
		return "", fmt.Errorf("failed to read %q at %s: %w", relPath, revision, err)
	}

	logger.Debugf("Loaded %q at revision %s (%s)", relPath, revision, hash)

	return file.Contents()
}

// fetch retrieves a manifest over HTTP(S).
func (l *Loader) fetch(ctx context.Context, url string) (string, error) {
	client := &http.Client{Timeout: l.timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %q: %w", url, err)
	}
	if l.token != "" {
		req.Header.Set("Authorization", "Bearer "+l.token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d fetching %q", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response from %q: %w", url, err)
	}

	return string(data), nil
}
