package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/arraywaves/codecrafters-shell-go/internal/session"
	"github.com/arraywaves/codecrafters-shell-go/internal/ui"
	"github.com/spf13/pflag"
)

func init() {
	Register(&Command{Name: "history", Run: historyCmd})
}

// historyCmd implements the four forms spec.md §4.6 names: a bare listing,
// a numeric tail (N), -r/-w/-a against a file.
func historyCmd(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	readFile := fs.StringP("read", "r", "", "append each nonempty line of file to the history")
	writeFile := fs.StringP("write", "w", "", "write the full history to file")
	appendFile := fs.StringP("append", "a", "", "append new history entries to file")

	if err := fs.Parse(ReorderArgsForFlags(fs, args)); err != nil {
		return err
	}

	switch {
	case *readFile != "":
		return s.History.ReadFile(*readFile)
	case *writeFile != "":
		return s.History.WriteFile(*writeFile)
	case *appendFile != "":
		return s.History.AppendFile(*appendFile)
	}

	positional := fs.Args()
	entries := s.History.All()
	if len(positional) > 0 {
		n, err := strconv.Atoi(positional[0])
		if err != nil {
			return fmt.Errorf("history: %s: numeric argument required", positional[0])
		}
		entries = s.History.Last(n)
	}

	listHistory(env, entries, s.History.Len()-len(entries))
	return nil
}

func listHistory(env *ExecutionEnv, entries []string, startOffset int) {
	for i, e := range entries {
		index := ui.MutedStyle.Render(fmt.Sprintf("%5d", startOffset+i+1))
		fmt.Fprintf(env.Stdout, "%s  %s\n", index, ui.CommandStyle.Render(e))
	}
}
