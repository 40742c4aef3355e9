// Package commands implements the shell's five built-ins — echo, type,
// pwd, cd, history — per spec.md §4.6. This is the complete built-in
// surface; anything else is dispatched to an externally resolved
// executable.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/arraywaves/codecrafters-shell-go/internal/session"
	"github.com/spf13/pflag"
)

// ExecutionEnv is the stdio a built-in runs against. Output that the shell
// routes through the redirection engine (a single command's, or a
// pipeline's last stage's) goes to in-memory buffers, and streams that
// connect pipeline stages (spec.md §4.4) are in-memory pipes; the first
// stage's stdin, and an earlier stage's stream that feeds no pipe, are the
// terminal's own descriptors.
type ExecutionEnv struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Command is a built-in's registry entry.
type Command struct {
	Run  func(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error
	Name string
}

// Registry holds every built-in, keyed by name.
var Registry = make(map[string]*Command)

func Register(cmd *Command) {
	Registry[cmd.Name] = cmd
}

// Get looks up a built-in by name.
func Get(name string) (*Command, bool) {
	cmd, ok := Registry[name]
	return cmd, ok
}

// Names returns every registered built-in name, used to seed the
// completion trie at startup (spec.md §4.7).
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	return names
}

// ReorderArgsForFlags reorders arguments so flags come before positional
// args, allowing interspersed Unix-style usage like "history -r file" and
// "history file -r" to parse the same way.
func ReorderArgsForFlags(fs *pflag.FlagSet, args []string) []string {
	var flags []string
	var positional []string

	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if strings.HasPrefix(arg, "-") && arg != "-" {
			flags = append(flags, arg)
			name := strings.TrimLeft(arg, "-")
			if idx := strings.Index(name, "="); idx >= 0 {
				i++
				continue
			}
			f := fs.Lookup(name)
			if f != nil {
				if f.Value.Type() == "bool" {
					i++
					continue
				}
				if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
					i++
					flags = append(flags, args[i])
				}
			}
		} else {
			positional = append(positional, arg)
		}
		i++
	}

	return append(flags, positional...)
}
