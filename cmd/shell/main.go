// Command shell is an interactive, POSIX-flavored command-line shell: it
// tokenizes and parses pipelines, dispatches built-ins and external
// executables, and completes commands from a trie populated at startup.
package main

import (
	"fmt"
	"os"

	"github.com/arraywaves/codecrafters-shell-go/internal/commands"
	"github.com/arraywaves/codecrafters-shell-go/internal/config"
	"github.com/arraywaves/codecrafters-shell-go/internal/history"
	"github.com/arraywaves/codecrafters-shell-go/internal/session"
	"github.com/arraywaves/codecrafters-shell-go/internal/shell"
	"github.com/arraywaves/codecrafters-shell-go/internal/trie"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shell: %v\n", err)
		os.Exit(1)
	}

	hist := history.New()
	if err := hist.LoadStartup(cfg.HistoryFile); err != nil {
		fmt.Fprintf(os.Stderr, "shell: failed to load history: %v\n", err)
	}

	sess, err := session.New(hist, trie.New())
	if err != nil {
		fmt.Fprintf(os.Stderr, "shell: %v\n", err)
		os.Exit(1)
	}
	populateTrie(sess)

	sh, err := shell.New(sess, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shell: failed to start: %v\n", err)
		os.Exit(1)
	}

	os.Exit(sh.Run())
}

// populateTrie seeds the completion trie from every built-in name, every
// escape word (exit/quit/q/escape/esc), and every executable file found
// in each $PATH directory, skipping directories that can't be read
// (spec.md §4.7).
func populateTrie(sess *session.Session) {
	for _, name := range commands.Names() {
		sess.Trie.Insert(name)
	}
	for word := range commands.EscapeWords {
		sess.Trie.Insert(word)
	}

	for _, dir := range sess.PathDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.Mode()&0o111 == 0 {
				continue
			}
			sess.Trie.Insert(entry.Name())
		}
	}
}
