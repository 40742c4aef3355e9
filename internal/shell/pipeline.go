package shell

import (
	"fmt"

	"github.com/arraywaves/codecrafters-shell-go/internal/commands"
	"github.com/arraywaves/codecrafters-shell-go/internal/session"
)

// Mode is a RedirectionSpec's file-open mode.
type Mode int

const (
	ModeTruncate Mode = iota
	ModeAppend
)

// RedirectionSpec is at most one per stage (spec.md §3): which descriptor
// it rebinds, the open mode, and the (not-yet-resolved) target path.
type RedirectionSpec struct {
	FD   int // 1 or 2
	Mode Mode
	Path string
}

// CommandKind is the tagged variant spec.md §3 names: Escape, Builtin,
// External, Unknown. Escape is only ever produced for a pipeline's first
// stage; every other stage can only be Builtin, External, or Unknown.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandEscape
	CommandBuiltin
	CommandExternal
)

// Stage is one command in a pipeline: its argv, optional redirection
// (only ever set on the pipeline's last stage; see Parse), which of the
// previous stage's descriptors feeds this stage's stdin, and its
// classification.
type Stage struct {
	Args         []string
	CommandName  string
	Redirect     *RedirectionSpec
	PipeSourceFD int // which of the PREVIOUS stage's fds feeds this stage's stdin
	Kind         CommandKind
	ResolvedPath string // set when Kind == CommandExternal
}

// Pipeline is an ordered, nonempty sequence of Stages.
type Pipeline struct {
	Stages []*Stage
}

// Parse tokenizes line and builds a Pipeline per spec.md §4.2: split on
// pipe operators, extract at most one redirection per segment (a
// redirection on any segment but the final one is a syntax error —
// intermediate-stage redirection is out of scope per spec.md §4.4), then
// classify every stage's head token.
func Parse(line string, sess *session.Session) (*Pipeline, error) {
	tokens, err := Tokenize(line, sess.HomeDir)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	segments, sourceFDs := SplitByPipe(tokens)

	pipeline := &Pipeline{Stages: make([]*Stage, len(segments))}
	for i, segTokens := range segments {
		if len(segTokens) == 0 {
			return nil, fmt.Errorf("syntax error near unexpected token `|'")
		}
		stage, err := parseStage(segTokens, i == len(segments)-1)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			stage.PipeSourceFD = sourceFDs[i-1]
		} else {
			stage.PipeSourceFD = 1
		}
		classify(stage, sess, i == 0)
		pipeline.Stages[i] = stage
	}

	return pipeline, nil
}

// parseStage extracts the redirection (if any, and only if isLast) from
// segTokens and returns the remaining words as argv.
func parseStage(segTokens []Token, isLast bool) (*Stage, error) {
	stage := &Stage{}
	var cmdTokens []Token
	redirected := false

	for i := 0; i < len(segTokens); i++ {
		tok := segTokens[i]
		fd, mode, isRedirect := redirectKind(tok.Type)
		if !isRedirect {
			cmdTokens = append(cmdTokens, tok)
			continue
		}
		if !isLast {
			return nil, fmt.Errorf("syntax error: redirection only allowed on the last stage of a pipeline")
		}
		if redirected {
			return nil, fmt.Errorf("syntax error: duplicate redirection")
		}
		if i+1 >= len(segTokens) || segTokens[i+1].Type != TokenWord {
			return nil, fmt.Errorf("syntax error: missing filename after '%s'", tok.Value)
		}
		stage.Redirect = &RedirectionSpec{FD: fd, Mode: mode, Path: segTokens[i+1].Value}
		redirected = true
		i++
	}

	if len(cmdTokens) == 0 {
		return nil, fmt.Errorf("syntax error: empty command")
	}

	stage.CommandName = cmdTokens[0].Value
	for _, tok := range cmdTokens[1:] {
		stage.Args = append(stage.Args, tok.Value)
	}
	return stage, nil
}

func redirectKind(t TokenType) (fd int, mode Mode, ok bool) {
	switch t {
	case TokenRedirectOut:
		return 1, ModeTruncate, true
	case TokenRedirectAppend:
		return 1, ModeAppend, true
	case TokenRedirectErr:
		return 2, ModeTruncate, true
	case TokenRedirectErrAppend:
		return 2, ModeAppend, true
	default:
		return 0, 0, false
	}
}

// classify resolves a stage's CommandKind per spec.md §4.2 step 3: escape
// words are recognized only for the pipeline's first stage; every stage is
// then checked against the built-in registry and the search path, in that
// order.
func classify(stage *Stage, sess *session.Session, isFirst bool) {
	if isFirst && commands.EscapeWords[stage.CommandName] {
		stage.Kind = CommandEscape
		return
	}
	if _, ok := commands.Get(stage.CommandName); ok {
		stage.Kind = CommandBuiltin
		return
	}
	if path, ok := commands.ResolveExecutable(sess, stage.CommandName); ok {
		stage.Kind = CommandExternal
		stage.ResolvedPath = path
		return
	}
	stage.Kind = CommandUnknown
}
