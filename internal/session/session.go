// Package session holds the process-wide state a running shell mutates:
// the working directory, the resolved search path, and the handles for
// history and completion that persist across prompts.
package session

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arraywaves/codecrafters-shell-go/internal/history"
	"github.com/arraywaves/codecrafters-shell-go/internal/trie"
)

// Session is the process-wide state shared across every line the shell
// reads. It is mutated only from the main loop: the working directory by
// cd, the history store by the history built-in and the exit group, never
// from within a pipeline stage.
type Session struct {
	CWD         string
	HomeDir     string
	PreviousDir string
	PathDirs    []string // directories from $PATH, in search order

	History *history.Store
	Trie    *trie.Trie
}

// New builds a session rooted at the process's actual working directory.
func New(histStore *history.Store, completions *trie.Trie) (*Session, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	home, _ := os.UserHomeDir()

	return &Session{
		CWD:      cwd,
		HomeDir:  home,
		PathDirs: SplitPath(os.Getenv("PATH")),
		History:  histStore,
		Trie:     completions,
	}, nil
}

// SplitPath splits a PATH-style environment value on the platform delimiter,
// dropping empty entries.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, string(os.PathListSeparator))
	dirs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			dirs = append(dirs, p)
		}
	}
	return dirs
}

// ResolvePath resolves a user-supplied path argument against CWD, HomeDir,
// and PreviousDir, without touching the file system.
func (s *Session) ResolvePath(path string) string {
	if path == "" {
		return s.CWD
	}
	if path == "-" {
		if s.PreviousDir == "" {
			return s.CWD
		}
		return s.PreviousDir
	}
	if path == "~" {
		return s.HomeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(s.HomeDir, path[2:])
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(s.CWD, path))
}
