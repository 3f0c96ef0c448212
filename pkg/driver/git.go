package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GitFetcher materialises git sources into a local cache, one checkout per
// repository and pinned version.
type GitFetcher struct {
	cacheDir string
}

// NewGitFetcher returns a fetcher rooted at cacheDir.
func NewGitFetcher(cacheDir string) *GitFetcher {
	return &GitFetcher{cacheDir: cacheDir}
}

// CacheDir reports the fetcher's root.
func (f *GitFetcher) CacheDir() string {
	return f.cacheDir
}

// Fetch returns the checkout directory for src, cloning it when no cached
// checkout of the pinned version exists yet.
func (f *GitFetcher) Fetch(src *GitSource) (string, error) {
	if src == nil {
		return "", fmt.Errorf("git: nil source")
	}
	if strings.TrimSpace(f.cacheDir) == "" {
		return "", fmt.Errorf("git: cache directory not configured")
	}
	baseDir := filepath.Join(f.cacheDir, "git", sanitizePathSegment(src.URL))
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return "", fmt.Errorf("git: prepare cache %s: %w", baseDir, err)
	}

	revision, descriptor, err := gitRevisionFromSource(src)
	if err != nil {
		return "", err
	}

	// An explicit rev pins the checkout name before any network access.
	if src.Rev != "" {
		existing := filepath.Join(baseDir, sanitizePathSegment(src.Rev))
		if _, err := os.Stat(existing); err == nil {
			return existing, nil
		}
	}

	tmpDir, err := os.MkdirTemp(baseDir, "git-fetch-*")
	if err != nil {
		return "", err
	}
	if err := os.RemoveAll(tmpDir); err != nil {
		return "", err
	}

	repo, err := git.PlainClone(tmpDir, false, &git.CloneOptions{
		URL:  src.URL,
		Tags: git.AllTags,
	})
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("git clone %s: %w", src.URL, err)
	}

	hash, err := repo.ResolveRevision(revision)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("git: resolve revision %s of %s: %w", revision, src.URL, err)
	}

	version := gitPinnedVersion(descriptor, hash.String())
	if src.Rev != "" {
		version = src.Rev
	}
	targetDir := filepath.Join(baseDir, sanitizePathSegment(version))
	if _, err := os.Stat(targetDir); err == nil {
		_ = os.RemoveAll(tmpDir)
		return targetDir, nil
	}

	worktree, err := repo.Worktree()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", err
	}
	if err := worktree.Checkout(&git.CheckoutOptions{
		Hash:  *hash,
		Force: true,
	}); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("git checkout %s: %w", revision, err)
	}

	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", err
	}
	return targetDir, nil
}

// gitPinnedVersion names a checkout after the tag or branch plus the
// resolved commit, so a moved branch gets a fresh directory.
func gitPinnedVersion(descriptor, commit string) string {
	commit = strings.TrimSpace(commit)
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if descriptor == "" || descriptor == commit {
		return commit
	}
	return descriptor + "-" + commit
}

func gitRevisionFromSource(src *GitSource) (plumbing.Revision, string, error) {
	if rev := strings.TrimSpace(src.Rev); rev != "" {
		return plumbing.Revision(rev), rev, nil
	}
	if tag := strings.TrimSpace(src.Tag); tag != "" {
		return plumbing.Revision("refs/tags/" + tag), tag, nil
	}
	if branch := strings.TrimSpace(src.Branch); branch != "" {
		return plumbing.Revision("refs/remotes/origin/" + branch), branch, nil
	}
	return "", "", fmt.Errorf("git: source %s requires rev, tag, or branch", src.URL)
}

func sanitizePathSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return "head"
	}
	var b strings.Builder
	for _, r := range segment {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
