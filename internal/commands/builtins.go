package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arraywaves/codecrafters-shell-go/internal/session"
)

func init() {
	Register(&Command{Name: "echo", Run: echo})
	Register(&Command{Name: "pwd", Run: pwd})
	Register(&Command{Name: "cd", Run: cd})
}

// echo writes argv joined by single spaces, followed by a newline (spec.md
// §4.6). Trimming trailing whitespace and ensuring exactly one final
// newline are left to the redirection engine.
func echo(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	fmt.Fprintln(env.Stdout, strings.Join(args, " "))
	return nil
}

// pwd writes the current working directory.
func pwd(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	fmt.Fprintln(env.Stdout, s.CWD)
	return nil
}

// cd resolves dir to an absolute path, fails if inaccessible, otherwise
// canonicalizes symlinks and sets the process working directory.
func cd(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	target := s.HomeDir
	if len(args) > 0 {
		target = args[0]
	}

	if target == "-" {
		if s.PreviousDir == "" {
			return fmt.Errorf("cd: OLDPWD not set")
		}
		target = s.PreviousDir
	}

	abs := s.ResolvePath(target)

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("cd: %s: No such file or directory", abs)
	}
	if !info.IsDir() {
		return fmt.Errorf("cd: %s: Not a directory", abs)
	}

	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		real = abs
	}

	if err := os.Chdir(real); err != nil {
		return fmt.Errorf("cd: %s: %v", real, err)
	}

	s.PreviousDir = s.CWD
	s.CWD = real
	return nil
}
