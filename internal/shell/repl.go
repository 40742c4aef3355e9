package shell

import (
	"context"
	"fmt"
	"os"

	"github.com/arraywaves/codecrafters-shell-go/internal/commands"
	"github.com/arraywaves/codecrafters-shell-go/internal/config"
	"github.com/arraywaves/codecrafters-shell-go/internal/session"
	"github.com/arraywaves/codecrafters-shell-go/internal/ui"
	"github.com/chzyer/readline"
)

// prompt is the literal string spec.md §6 mandates; it is never styled.
const prompt = "$ "

// Shell is the interactive main loop (spec.md §4.7): read a line, tokenize,
// parse, execute, repeat — never more than one pipeline in flight.
type Shell struct {
	Session     *session.Session
	RL          *readline.Instance
	HistoryFile string
}

// New builds the terminal driver (readline) with the completion callback
// wired to s.Trie, per spec.md §6's "out of scope" line-editor collaborator.
func New(s *session.Session, cfg *config.Config) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       prompt,
		AutoComplete: NewCompleter(s.Trie),
	})
	if err != nil {
		return nil, err
	}

	return &Shell{
		Session:     s,
		RL:          rl,
		HistoryFile: cfg.HistoryFile,
	}, nil
}

// Run is the REPL loop. It returns the process exit code the caller
// should pass to os.Exit: 0 on a normal exit-group command or EOF, 1 if
// the exit-group history flush fails. A panic raised on the loop's own
// goroutine is reported to stderr and ends the process with exit code 1.
func (sh *Shell) Run() int {
	defer sh.RL.Close()
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(fmt.Sprintf("shell: internal error: %v", r)))
			sh.RL.Close()
			os.Exit(1)
		}
	}()

	ctx := context.Background()

	for {
		line, err := sh.RL.Readline()
		if err != nil {
			return sh.shutdown()
		}

		if line == "" {
			continue
		}
		sh.Session.History.Add(line)

		pipeline, err := Parse(line, sh.Session)
		if err != nil {
			Write(err.Error(), true, nil, os.Stdout, os.Stderr)
			continue
		}
		if pipeline == nil {
			continue
		}

		if pipeline.Stages[0].Kind == CommandEscape {
			return sh.shutdown()
		}

		if err := pipeline.Execute(ctx, sh.Session, line); err != nil {
			Write(err.Error(), true, nil, os.Stdout, os.Stderr)
		}
	}
}

func (sh *Shell) shutdown() int {
	if err := commands.Shutdown(sh.Session, sh.HistoryFile); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(err.Error()))
		return 1
	}
	return 0
}
