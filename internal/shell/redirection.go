package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Write is the single function every line of shell-internal output passes
// through (spec.md §4.3): content is trimmed of trailing whitespace,
// NFC-normalized, and given exactly one trailing newline when nonempty,
// then routed to the terminal or to a file depending on redir and whether
// this call concerns the error stream.
func Write(content string, isError bool, redir *RedirectionSpec, stdout, stderr io.Writer) error {
	content = normalize(content)

	switch {
	case redir == nil:
		if isError {
			return writeTo(stderr, content)
		}
		return writeTo(stdout, content)

	case redir.FD == 1:
		if isError {
			return writeTo(stderr, content)
		}
		return writeToFile(content, redir)

	case redir.FD == 2:
		if isError {
			return writeToFile(content, redir)
		}
		return writeTo(stdout, content)
	}
	return nil
}

func normalize(content string) string {
	content = strings.TrimRight(content, " \t\r\n")
	content = norm.NFC.String(content)
	if content == "" {
		return ""
	}
	return content + "\n"
}

func writeTo(w io.Writer, content string) error {
	if content == "" {
		return nil
	}
	_, err := io.WriteString(w, content)
	return err
}

// writeToFile opens redir.Path (creating its parent directory if needed)
// in truncate or append mode and writes content, even when content is
// empty (spec.md §8 scenario 4: a stderr redirection with nothing written
// still creates a zero-byte file).
func writeToFile(content string, redir *RedirectionSpec) error {
	if err := ensureParentDir(redir.Path); err != nil {
		return fmt.Errorf("%s: %v", redir.Path, err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if redir.Mode == ModeAppend {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(redir.Path, flags, 0644)
	if err != nil {
		return fmt.Errorf("%s: %v", redir.Path, err)
	}
	defer f.Close()

	if content == "" {
		return nil
	}
	_, err = io.WriteString(f, content)
	return err
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
