package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/arraywaves/codecrafters-shell-go/internal/commands"
	"github.com/arraywaves/codecrafters-shell-go/internal/session"
)

// Execute runs the pipeline per spec.md §4.4. A single stage runs
// synchronously; multiple stages are wired stage-by-stage and run
// concurrently, every stage uniformly exposing stdin/stdout/stderr
// regardless of whether it is a built-in or an external process. Only the
// last stage's output is ever redirected; it is always routed through the
// Redirection/Output Engine, even when going to the terminal.
func (p *Pipeline) Execute(ctx context.Context, sess *session.Session, line string) error {
	if p == nil || len(p.Stages) == 0 {
		return nil
	}
	if len(p.Stages) == 1 {
		return p.executeSingle(ctx, sess, line)
	}
	return p.executeMulti(ctx, sess, line)
}

func (p *Pipeline) executeSingle(ctx context.Context, sess *session.Session, line string) error {
	stage := p.Stages[0]
	var stdoutBuf, stderrBuf bytes.Buffer

	switch stage.Kind {
	case CommandBuiltin:
		cmd, _ := commands.Get(stage.CommandName)
		env := &commands.ExecutionEnv{Stdin: os.Stdin, Stdout: &stdoutBuf, Stderr: &stderrBuf}
		if err := cmd.Run(ctx, sess, env, stage.Args); err != nil {
			fmt.Fprintln(&stderrBuf, err.Error())
		}

	case CommandExternal:
		runExternal(ctx, stage, os.Stdin, &stdoutBuf, &stderrBuf)

	case CommandUnknown:
		fmt.Fprintf(&stderrBuf, "%s: command not found", line)
	}

	outErr := Write(stdoutBuf.String(), false, stage.Redirect, os.Stdout, os.Stderr)
	errErr := Write(stderrBuf.String(), true, stage.Redirect, os.Stdout, os.Stderr)
	if outErr != nil {
		return outErr
	}
	return errErr
}

func (p *Pipeline) executeMulti(ctx context.Context, sess *session.Session, line string) error {
	n := len(p.Stages)
	stdins := make([]io.Reader, n)
	stdouts := make([]io.Writer, n)
	stderrs := make([]io.Writer, n)
	var closers []io.Closer

	stdins[0] = os.Stdin
	for k := 0; k < n-1; k++ {
		pr, pw := io.Pipe()
		closers = append(closers, pw)
		stdins[k+1] = pr

		if p.Stages[k+1].PipeSourceFD == 2 {
			stderrs[k] = pw
			stdouts[k] = os.Stdout
		} else {
			stdouts[k] = pw
			stderrs[k] = os.Stderr
		}
	}

	var lastOut, lastErr bytes.Buffer
	stdouts[n-1] = &lastOut
	stderrs[n-1] = &lastErr

	var wg sync.WaitGroup
	for k := 0; k < n; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			runStage(ctx, sess, p.Stages[k], stdins[k], stdouts[k], stderrs[k])
			if pw, ok := stdouts[k].(*io.PipeWriter); ok {
				pw.Close()
			}
			if pw, ok := stderrs[k].(*io.PipeWriter); ok {
				pw.Close()
			}
			if pr, ok := stdins[k].(*io.PipeReader); ok {
				pr.Close()
			}
		}(k)
	}
	wg.Wait()
	closeAll(closers)

	last := p.Stages[n-1]
	outErr := Write(lastOut.String(), false, last.Redirect, os.Stdout, os.Stderr)
	errErr := Write(lastErr.String(), true, last.Redirect, os.Stdout, os.Stderr)
	if outErr != nil {
		return outErr
	}
	return errErr
}

// runStage runs one stage of a multi-stage pipeline against the given
// stdio, used uniformly for built-ins and external processes per the
// executor's heterogeneous-stage model.
func runStage(ctx context.Context, sess *session.Session, stage *Stage, stdin io.Reader, stdout, stderr io.Writer) {
	switch stage.Kind {
	case CommandBuiltin:
		cmd, _ := commands.Get(stage.CommandName)
		env := &commands.ExecutionEnv{Stdin: stdin, Stdout: stdout, Stderr: stderr}
		if err := cmd.Run(ctx, sess, env, stage.Args); err != nil {
			fmt.Fprintln(stderr, err.Error())
		}

	case CommandExternal:
		runExternal(ctx, stage, stdin, stdout, stderr)

	case CommandUnknown:
		runExternal(ctx, stage, stdin, stdout, stderr)
	}
}

func runExternal(ctx context.Context, stage *Stage, stdin io.Reader, stdout, stderr io.Writer) {
	path := stage.ResolvedPath
	if path == "" {
		path = stage.CommandName
	}
	c := exec.CommandContext(ctx, path, stage.Args...)
	c.Stdin = stdin
	c.Stdout = stdout
	c.Stderr = stderr
	if err := c.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			fmt.Fprintf(stderr, "%s: %v", stage.CommandName, err)
		}
	}
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}
