package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arraywaves/codecrafters-shell-go/internal/session"
	"github.com/arraywaves/codecrafters-shell-go/internal/ui"
)

// EscapeWords is the exit group (spec.md §4.2/§4.6): recognized only as
// the head of stage 0 of a pipeline, never dispatched through Registry.
var EscapeWords = map[string]bool{
	"exit": true, "quit": true, "q": true, "escape": true, "esc": true,
}

// IsShellCommand reports whether name is implemented inside the shell
// (a built-in or an escape word), as opposed to an external executable.
func IsShellCommand(name string) bool {
	if EscapeWords[name] {
		return true
	}
	_, ok := Get(name)
	return ok
}

func init() {
	Register(&Command{Name: "type", Run: typeCmd})
}

func typeCmd(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("type: please include an argument")
	}
	name := args[0]

	styled := ui.CommandStyle.Render(name)

	if IsShellCommand(name) {
		fmt.Fprintf(env.Stdout, "%s is a shell builtin\n", styled)
		return nil
	}

	if len(s.PathDirs) == 0 {
		fmt.Fprintf(env.Stdout, "%s\n", ui.MutedStyle.Render(name+": please set PATH"))
		return nil
	}

	if path, ok := ResolveExecutable(s, name); ok {
		fmt.Fprintf(env.Stdout, "%s is %s\n", styled, path)
		return nil
	}

	fmt.Fprintf(env.Stdout, "%s\n", ui.MutedStyle.Render(name+": not found"))
	return nil
}

// ResolveExecutable searches s.PathDirs, in order, for an executable file
// named name. Used both by the type built-in and the dispatcher's
// CommandKind classification.
func ResolveExecutable(s *session.Session, name string) (string, bool) {
	for _, dir := range s.PathDirs {
		full := filepath.Join(dir, name)
		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			continue
		}
		if isExecutable(info) {
			return full, true
		}
	}
	return "", false
}

func isExecutable(info os.FileInfo) bool {
	return info.Mode()&0o111 != 0
}
