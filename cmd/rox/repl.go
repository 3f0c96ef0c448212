package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"rox/interpreter-go/pkg/driver"
	"rox/interpreter-go/pkg/lexer"
	"rox/interpreter-go/pkg/parser"
	"rox/interpreter-go/pkg/runtime"
)

const (
	promptMain = "> "
	promptCont = ". "
)

func runRepl(cfg driver.Config, stdout, stderr io.Writer) int {
	fmt.Fprintf(stdout, "%s (type exit or press Ctrl-D to leave)\n", cliToolVersion)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer saveHistory(ln, cfg.HistoryFile)

	reporter := driver.NewReporter(stderr, cfg.Color, cfg.Verbose)
	interpOpts := cfg.InterpreterOptions()
	interpOpts.Stdout = stdout
	session := driver.NewSession(interpOpts, reporter)

	valueColor := color.New(color.FgCyan)
	if cfg.Color {
		valueColor.EnableColor()
	} else {
		valueColor.DisableColor()
	}

	for {
		src, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(stdout)
			return driver.ExitOK
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" {
			return driver.ExitOK
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		_, value := session.RunInteractive([]byte(src))
		if value != nil {
			fmt.Fprintln(stdout, valueColor.Sprint(runtime.Format(value)))
		}
	}
}

// readByParseProbe keeps prompting while the accumulated input only fails
// because it ran out, such as an unclosed block or string.
// It returns false on end of input.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !needsMoreInput(b.String()) {
			return b.String(), true
		}
	}
}

func needsMoreInput(src string) bool {
	if strings.TrimSpace(src) == "exit" {
		return false
	}
	tokens, lexErrs := lexer.Scan(src)
	if len(lexErrs) > 0 {
		for _, err := range lexErrs {
			if err.Kind != lexer.TokenMissing {
				return false
			}
		}
		return true
	}
	_, parseErrs := parser.Parse(tokens)
	return parser.IsIncomplete(parseErrs)
}

func saveHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	if f, err := os.Create(path); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
}
