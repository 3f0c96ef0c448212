package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"rox/interpreter-go/pkg/interpreter"
)

// HomeEnv overrides the directory holding the git cache and REPL history.
const HomeEnv = "ROX_HOME"

// Config is the resolved driver configuration. Sources apply in order of
// increasing precedence: defaults, rox.yml, environment, flags.
type Config struct {
	MaxCallDepth int
	Color        bool
	Verbose      bool
	HistoryFile  string
	CacheDir     string
}

// DefaultConfig returns the built-in defaults with ROX_HOME applied. Colour
// follows the terminal detection of the color package.
func DefaultConfig() (Config, error) {
	home, err := ResolveCacheDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		MaxCallDepth: interpreter.DefaultMaxCallDepth,
		Color:        !color.NoColor,
		HistoryFile:  filepath.Join(home, "history"),
		CacheDir:     home,
	}, nil
}

// ApplyManifest layers manifest settings over c.
func (c *Config) ApplyManifest(m *Manifest) {
	if m == nil {
		return
	}
	if m.Interpreter.MaxCallDepth > 0 {
		c.MaxCallDepth = m.Interpreter.MaxCallDepth
	}
}

// InterpreterOptions derives interpreter options from c.
func (c Config) InterpreterOptions() interpreter.Options {
	return interpreter.Options{MaxCallDepth: c.MaxCallDepth}
}

// ResolveCacheDir returns $ROX_HOME, or $HOME/.rox when it is unset.
func ResolveCacheDir() (string, error) {
	if home := strings.TrimSpace(os.Getenv(HomeEnv)); home != "" {
		abs, err := filepath.Abs(home)
		if err != nil {
			return "", fmt.Errorf("resolve %s %q: %w", HomeEnv, home, err)
		}
		return abs, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}
	return filepath.Join(userHome, ".rox"), nil
}
