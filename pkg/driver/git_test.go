package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGitFetcherChecksOutPinnedVersions(t *testing.T) {
	repoDir := t.TempDir()
	writeFile(t, filepath.Join(repoDir, "src", "util.rox"), "var version = 1;\n")
	repo, first := initGitRepo(t, repoDir)
	if _, err := repo.CreateTag("v1.0.0", first, nil); err != nil {
		t.Fatalf("CreateTag: %v", err)
	}
	writeFile(t, filepath.Join(repoDir, "src", "util.rox"), "var version = 2;\n")
	second := commitAll(t, repo, repoDir, "bump")

	fetcher := NewGitFetcher(t.TempDir())

	cases := []struct {
		name string
		src  *GitSource
		want string
	}{
		{"tag", &GitSource{URL: repoDir, Tag: "v1.0.0", Paths: []string{"src/util.rox"}}, "var version = 1;\n"},
		{"rev", &GitSource{URL: repoDir, Rev: first.String(), Paths: []string{"src/util.rox"}}, "var version = 1;\n"},
		{"branch", &GitSource{URL: repoDir, Branch: "master", Paths: []string{"src/util.rox"}}, "var version = 2;\n"},
	}
	for _, tc := range cases {
		dir, err := fetcher.Fetch(tc.src)
		if err != nil {
			t.Fatalf("%s: Fetch: %v", tc.name, err)
		}
		if !strings.HasPrefix(dir, filepath.Join(fetcher.CacheDir(), "git")) {
			t.Fatalf("%s: checkout %s outside cache", tc.name, dir)
		}
		data, err := os.ReadFile(filepath.Join(dir, "src", "util.rox"))
		if err != nil {
			t.Fatalf("%s: read checkout: %v", tc.name, err)
		}
		if string(data) != tc.want {
			t.Fatalf("%s: contents = %q, want %q", tc.name, data, tc.want)
		}
	}

	// A cached rev is reused without cloning again.
	src := &GitSource{URL: repoDir, Rev: first.String(), Paths: []string{"src/util.rox"}}
	dir1, err := fetcher.Fetch(src)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if filepath.Base(dir1) != first.String() {
		t.Fatalf("rev checkout named %s", filepath.Base(dir1))
	}

	dir2, err := fetcher.Fetch(&GitSource{URL: repoDir, Rev: second.String(), Paths: []string{"src/util.rox"}})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if dir2 == dir1 {
		t.Fatalf("distinct revs share checkout %s", dir2)
	}
}

func TestGitFetcherErrors(t *testing.T) {
	fetcher := NewGitFetcher(t.TempDir())
	if _, err := fetcher.Fetch(&GitSource{URL: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatalf("expected error for source without a pin")
	}
	if _, err := fetcher.Fetch(&GitSource{URL: filepath.Join(t.TempDir(), "missing"), Tag: "v1"}); err == nil {
		t.Fatalf("expected clone error")
	}

	repoDir := t.TempDir()
	writeFile(t, filepath.Join(repoDir, "a.rox"), "print 1;\n")
	initGitRepo(t, repoDir)
	_, err := fetcher.Fetch(&GitSource{URL: repoDir, Tag: "nope", Paths: []string{"a.rox"}})
	if err == nil || !strings.Contains(err.Error(), "resolve revision") {
		t.Fatalf("expected resolve error, got %v", err)
	}
	if _, err := NewGitFetcher("").Fetch(&GitSource{URL: repoDir, Tag: "v1"}); err == nil {
		t.Fatalf("expected error without cache dir")
	}
}

func TestManifestSourcePathsPutsGitFirst(t *testing.T) {
	repoDir := t.TempDir()
	writeFile(t, filepath.Join(repoDir, "lib", "greet.rox"), "fun greet(n) { return \"hi \" + n; }\n")
	repo, hash := initGitRepo(t, repoDir)
	if _, err := repo.CreateTag("v0.1.0", hash, nil); err != nil {
		t.Fatalf("CreateTag: %v", err)
	}

	projectDir := t.TempDir()
	writeFile(t, filepath.Join(projectDir, "main.rox"), "print greet(\"rox\");\n")
	manifestPath := filepath.Join(projectDir, ManifestFileName)
	writeFile(t, manifestPath, "name: demo\nsources: main.rox\ngit:\n  - url: "+repoDir+"\n    tag: v0.1.0\n    paths: [lib/greet.rox]\n")

	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	paths, err := manifest.SourcePaths(NewGitFetcher(t.TempDir()))
	if err != nil {
		t.Fatalf("SourcePaths: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v", paths)
	}
	if filepath.Base(paths[0]) != "greet.rox" || paths[1] != filepath.Join(projectDir, "main.rox") {
		t.Fatalf("unexpected order %v", paths)
	}
	if _, err := manifest.SourcePaths(nil); err == nil {
		t.Fatalf("expected error without fetcher")
	}
}

func TestSanitizePathSegment(t *testing.T) {
	cases := map[string]string{
		"":                            "head",
		"https://example.com/lib.git": "https___example.com_lib.git",
		"v1.0.0":                      "v1.0.0",
	}
	for in, want := range cases {
		if got := sanitizePathSegment(in); got != want {
			t.Fatalf("sanitizePathSegment(%q) = %q, want %q", in, got, want)
		}
	}
}
