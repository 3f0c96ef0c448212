package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the project manifest looked up by FindManifest.
const ManifestFileName = "rox.yml"

// ErrManifestNotFound is returned by FindManifest when no directory up to
// the filesystem root holds a manifest.
var ErrManifestNotFound = errors.New("manifest: rox.yml not found")

// Manifest represents the parsed contents of rox.yml.
type Manifest struct {
	Path        string
	Name        string
	Sources     []string
	Git         []*GitSource
	Interpreter InterpreterSettings
}

// GitSource names files to load from a pinned revision of a git repository.
type GitSource struct {
	URL    string
	Rev    string
	Tag    string
	Branch string
	Paths  []string
}

// InterpreterSettings carries interpreter overrides from the manifest.
type InterpreterSettings struct {
	MaxCallDepth int
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest parses rox.yml from disk, returning a validated manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest := raw.toManifest(absPath)
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

// FindManifest walks from dir up through its parents looking for rox.yml.
func FindManifest(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("manifest: resolve %s: %w", dir, err)
	}
	for {
		candidate := filepath.Join(current, ManifestFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrManifestNotFound
		}
		current = parent
	}
}

// Dir is the directory relative source paths are resolved against.
func (m *Manifest) Dir() string {
	return filepath.Dir(m.Path)
}

// SourcePaths resolves the ordered list of files to load: every git
// source in manifest order, then the local sources.
func (m *Manifest) SourcePaths(fetcher *GitFetcher) ([]string, error) {
	paths := make([]string, 0, len(m.Sources))
	for _, src := range m.Git {
		if fetcher == nil {
			return nil, fmt.Errorf("manifest: git source %s requires a fetcher", src.URL)
		}
		dir, err := fetcher.Fetch(src)
		if err != nil {
			return nil, err
		}
		for _, rel := range src.Paths {
			paths = append(paths, filepath.Join(dir, filepath.FromSlash(rel)))
		}
	}
	for _, rel := range m.Sources {
		if filepath.IsAbs(rel) {
			paths = append(paths, rel)
			continue
		}
		paths = append(paths, filepath.Join(m.Dir(), filepath.FromSlash(rel)))
	}
	return paths, nil
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if m.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}
	if len(m.Sources) == 0 && len(m.Git) == 0 {
		errs.Issues = append(errs.Issues, "at least one source must be provided")
	}
	for idx, src := range m.Git {
		for _, issue := range src.validate() {
			errs.Issues = append(errs.Issues, fmt.Sprintf("git[%d]: %s", idx, issue))
		}
	}
	if m.Interpreter.MaxCallDepth < 0 {
		errs.Issues = append(errs.Issues, "interpreter.max_call_depth must not be negative")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func (g *GitSource) validate() []string {
	var errs []string
	if g.URL == "" {
		errs = append(errs, "url must be provided")
	}
	pins := 0
	for _, pin := range []string{g.Rev, g.Tag, g.Branch} {
		if pin != "" {
			pins++
		}
	}
	if pins != 1 {
		errs = append(errs, "exactly one of rev, tag, or branch must be provided")
	}
	if len(g.Paths) == 0 {
		errs = append(errs, "at least one path must be provided")
	}
	for _, p := range g.Paths {
		if filepath.IsAbs(p) || strings.HasPrefix(filepath.Clean(filepath.FromSlash(p)), "..") {
			errs = append(errs, fmt.Sprintf("path %q must stay inside the repository", p))
		}
	}
	return errs
}

type manifestFile struct {
	Name        string          `yaml:"name"`
	Sources     stringList      `yaml:"sources"`
	Git         []gitSourceYAML `yaml:"git"`
	Interpreter interpreterYAML `yaml:"interpreter"`
}

type gitSourceYAML struct {
	URL    string     `yaml:"url"`
	Rev    string     `yaml:"rev"`
	Tag    string     `yaml:"tag"`
	Branch string     `yaml:"branch"`
	Paths  stringList `yaml:"paths"`
}

type interpreterYAML struct {
	MaxCallDepth int `yaml:"max_call_depth"`
}

type stringList []string

func (mf manifestFile) toManifest(path string) *Manifest {
	result := &Manifest{
		Path:    path,
		Name:    strings.TrimSpace(mf.Name),
		Sources: mf.Sources.Clone(),
		Git:     make([]*GitSource, 0, len(mf.Git)),
		Interpreter: InterpreterSettings{
			MaxCallDepth: mf.Interpreter.MaxCallDepth,
		},
	}
	for _, src := range mf.Git {
		result.Git = append(result.Git, &GitSource{
			URL:    strings.TrimSpace(src.URL),
			Rev:    strings.TrimSpace(src.Rev),
			Tag:    strings.TrimSpace(src.Tag),
			Branch: strings.TrimSpace(src.Branch),
			Paths:  src.Paths.Clone(),
		})
	}
	return result
}

func (l stringList) Clone() []string {
	if len(l) == 0 {
		return nil
	}
	out := make([]string, 0, len(l))
	for _, item := range l {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.TrimSpace(value.Value) == "" {
			*l = nil
			return nil
		}
		*l = stringList{strings.TrimSpace(value.Value)}
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			var str string
			if err := node.Decode(&str); err != nil {
				return err
			}
			str = strings.TrimSpace(str)
			if str == "" {
				continue
			}
			items = append(items, str)
		}
		*l = stringList(items)
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(value.Alias)
	case 0:
		*l = nil
		return nil
	default:
		return fmt.Errorf("manifest: expected string or sequence for list but found %s", value.ShortTag())
	}
}
