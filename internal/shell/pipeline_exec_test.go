package shell_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arraywaves/codecrafters-shell-go/internal/commands"
	"github.com/arraywaves/codecrafters-shell-go/internal/history"
	"github.com/arraywaves/codecrafters-shell-go/internal/session"
	"github.com/arraywaves/codecrafters-shell-go/internal/shell"
	"github.com/arraywaves/codecrafters-shell-go/internal/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockCommands registers temporary commands for testing pipelines.
// Returns a cleanup function to remove them.
func setupMockCommands() func() {
	commands.Register(&commands.Command{
		Name: "mock-reverse",
		Run: func(ctx context.Context, s *session.Session, env *commands.ExecutionEnv, args []string) error {
			buf, err := io.ReadAll(env.Stdin)
			if err != nil {
				return err
			}
			input := strings.TrimRight(string(buf), "\n")
			runes := []rune(input)
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			fmt.Fprintln(env.Stdout, string(runes))
			return nil
		},
	})

	commands.Register(&commands.Command{
		Name: "mock-upper",
		Run: func(ctx context.Context, s *session.Session, env *commands.ExecutionEnv, args []string) error {
			buf, err := io.ReadAll(env.Stdin)
			if err != nil {
				return err
			}
			fmt.Fprint(env.Stdout, strings.ToUpper(string(buf)))
			return nil
		},
	})

	return func() {
		delete(commands.Registry, "mock-reverse")
		delete(commands.Registry, "mock-upper")
	}
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.New(history.New(), trie.New())
	require.NoError(t, err)
	return s
}

func TestPipeline_Execute_BuiltinChain(t *testing.T) {
	cleanup := setupMockCommands()
	defer cleanup()

	s := newTestSession(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "output.txt")

	input := fmt.Sprintf("echo abc | mock-reverse | mock-upper > %s", out)
	pipeline, err := shell.Parse(input, s)
	require.NoError(t, err)

	err = pipeline.Execute(context.Background(), s, input)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "CBA\n", string(data))
}

func TestPipeline_Parse_SingleBuiltinNoRedirection(t *testing.T) {
	s := newTestSession(t)
	pipeline, err := shell.Parse("pwd", s)
	require.NoError(t, err)
	require.Len(t, pipeline.Stages, 1)
	assert.Equal(t, shell.CommandBuiltin, pipeline.Stages[0].Kind)
}

func TestPipeline_Parse_UnknownSingleStage(t *testing.T) {
	s := newTestSession(t)
	pipeline, err := shell.Parse("nonexistent_xyz_command", s)
	require.NoError(t, err)
	assert.Equal(t, shell.CommandUnknown, pipeline.Stages[0].Kind)
}

func TestPipeline_Execute_PwdRedirectCreatesDir(t *testing.T) {
	s := newTestSession(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "sub", "dir", "out.txt")

	input := fmt.Sprintf("pwd > %s", target)
	pipeline, err := shell.Parse(input, s)
	require.NoError(t, err)

	err = pipeline.Execute(context.Background(), s, input)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, s.CWD+"\n", string(data))
}

func TestPipeline_Execute_StderrRedirectLeavesStdoutFileUntouched(t *testing.T) {
	s := newTestSession(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "err.txt")

	input := fmt.Sprintf("echo hi 2> %s", target)
	pipeline, err := shell.Parse(input, s)
	require.NoError(t, err)

	err = pipeline.Execute(context.Background(), s, input)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "", string(data))
}
