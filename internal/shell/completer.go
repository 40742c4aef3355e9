package shell

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/arraywaves/codecrafters-shell-go/internal/trie"
	"github.com/arraywaves/codecrafters-shell-go/internal/ui"
	"golang.org/x/term"
)

const doubleTabThreshold = time.Second

// Completer implements readline.AutoCompleter against the trie populated
// at startup (spec.md §4.5): single match completes it, multiple matches
// with a longer LCP extend to the LCP, and an ambiguous double-tab within
// doubleTabThreshold prints every match in columns.
type Completer struct {
	Trie *trie.Trie

	lastLine      string
	lastTimestamp time.Time
	now           func() time.Time
}

// NewCompleter returns a Completer backed by t.
func NewCompleter(t *trie.Trie) *Completer {
	return &Completer{Trie: t, now: time.Now}
}

// Do implements readline.AutoCompleter. Only the first word of the line is
// completed; spec.md's trie holds built-in and executable names only, no
// argument or path completion.
func (c *Completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	prefix := string(line[:pos])
	if idx := strings.IndexAny(prefix, " \t"); idx >= 0 {
		return nil, 0
	}

	matches := c.Trie.Matches(prefix)
	if len(matches) == 0 {
		ringBell()
		return nil, 0
	}

	if len(matches) == 1 {
		suffix := matches[0][len(prefix):] + " "
		return [][]rune{[]rune(suffix)}, len(prefix)
	}

	lcp := trie.LongestCommonPrefix(matches)
	if len(lcp) > len(prefix) {
		return [][]rune{[]rune(lcp[len(prefix):])}, len(prefix)
	}

	now := c.now()
	isSecondTab := prefix == c.lastLine && now.Sub(c.lastTimestamp) < doubleTabThreshold
	c.lastLine = prefix
	c.lastTimestamp = now

	if !isSecondTab {
		ringBell()
		return nil, 0
	}

	width := terminalWidth()
	grid := ui.Columns(matches, width)
	fmt.Fprint(os.Stderr, "\n"+grid)
	return nil, 0
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// ringBell writes the bell character to stderr (spec.md §4.5's portable
// fallback; no OS-specific sound device is wired here).
func ringBell() {
	fmt.Fprint(os.Stderr, "\x07")
}
