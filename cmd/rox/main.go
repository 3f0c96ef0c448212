package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"

	"rox/interpreter-go/pkg/ast"
	"rox/interpreter-go/pkg/driver"
)

const cliToolVersion = "rox 0.1.0-dev"

// exitUsage follows the sysexits convention used by the other statuses.
const exitUsage = 64

const usage = `usage: rox [-hVvn] [-d depth] [-m manifest] [-t | -a] [file ...]

Runs the given files as one program. Without files, runs the rox.yml
manifest found in the working directory, or starts an interactive session.

options:
  -h           print this help and exit
  -V           print the version and exit
  -v           report stage timings on stderr
  -n           disable coloured output
  -d depth     maximum nesting of function calls
  -m manifest  run the sources listed in this manifest
  -t           print the token stream instead of running
  -a           print the syntax tree instead of running
`

type options struct {
	verbose      bool
	noColor      bool
	depth        int
	manifestPath string
	dumpTokens   bool
	dumpAST      bool
	files        []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, code, done := parseFlags(args, stdout, stderr)
	if done {
		return code
	}

	cfg, err := driver.DefaultConfig()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if opts.noColor {
		cfg.Color = false
	}
	cfg.Verbose = opts.verbose

	var paths []string
	switch {
	case len(opts.files) > 0:
		paths = opts.files
	default:
		manifest, err := locateManifest(opts.manifestPath)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		if manifest == nil {
			applyDepth(&cfg, opts)
			return runRepl(cfg, stdout, stderr)
		}
		cfg.ApplyManifest(manifest)
		paths, err = manifest.SourcePaths(driver.NewGitFetcher(cfg.CacheDir))
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	applyDepth(&cfg, opts)

	reporter := driver.NewReporter(stderr, cfg.Color, cfg.Verbose)
	source, err := driver.LoadFiles(paths)
	if err != nil {
		reporter.Error(err)
		return 1
	}

	interpOpts := cfg.InterpreterOptions()
	interpOpts.Stdout = stdout
	session := driver.NewSession(interpOpts, reporter)

	switch {
	case opts.dumpTokens:
		res := session.Scan(source)
		for _, tok := range res.Tokens {
			fmt.Fprintln(stdout, tok)
		}
		return res.ExitCode()
	case opts.dumpAST:
		res := session.Parse(source)
		if len(res.Statements) > 0 {
			fmt.Fprintln(stdout, ast.PrintProgram(res.Statements))
		}
		return res.ExitCode()
	}
	return session.Run(source).ExitCode()
}

// parseFlags reports done when the process should exit with code without
// running anything.
func parseFlags(args []string, stdout, stderr io.Writer) (options, int, bool) {
	var opts options
	argv := append([]string{"rox"}, args...)
	parsed, optind, err := getopt.Getopts(argv, "hVvnd:m:ta")
	if err != nil {
		fmt.Fprintf(stderr, "rox: %v\n%s", err, usage)
		return opts, exitUsage, true
	}
	for _, opt := range parsed {
		switch opt.Option {
		case 'h':
			fmt.Fprint(stdout, usage)
			return opts, driver.ExitOK, true
		case 'V':
			fmt.Fprintln(stdout, cliToolVersion)
			return opts, driver.ExitOK, true
		case 'v':
			opts.verbose = true
		case 'n':
			opts.noColor = true
		case 'd':
			depth, err := strconv.Atoi(opt.Value)
			if err != nil || depth <= 0 {
				fmt.Fprintf(stderr, "rox: invalid -d value %q\n", opt.Value)
				return opts, exitUsage, true
			}
			opts.depth = depth
		case 'm':
			opts.manifestPath = opt.Value
		case 't':
			opts.dumpTokens = true
		case 'a':
			opts.dumpAST = true
		}
	}
	if opts.dumpTokens && opts.dumpAST {
		fmt.Fprintf(stderr, "rox: -t and -a are mutually exclusive\n%s", usage)
		return opts, exitUsage, true
	}
	opts.files = argv[optind:]
	if len(opts.files) > 0 && opts.manifestPath != "" {
		fmt.Fprintf(stderr, "rox: -m cannot be combined with files\n%s", usage)
		return opts, exitUsage, true
	}
	return opts, 0, false
}

// locateManifest loads the manifest named by -m, or the nearest rox.yml.
// A nil manifest without error means none was found.
func locateManifest(path string) (*driver.Manifest, error) {
	if path != "" {
		return driver.LoadManifest(path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	found, err := driver.FindManifest(cwd)
	if errors.Is(err, driver.ErrManifestNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return driver.LoadManifest(found)
}

// applyDepth lets -d win over rox.yml.
func applyDepth(cfg *driver.Config, opts options) {
	if opts.depth > 0 {
		cfg.MaxCallDepth = opts.depth
	}
}
