package commands

import (
	"github.com/arraywaves/codecrafters-shell-go/internal/session"
)

// Shutdown runs the exit group's side effect (spec.md §4.6/§4.7): flushing
// every entry added since startup to histPath. It does not call os.Exit
// itself; the main loop does that once this returns, so callers such as
// tests can observe the flush without killing the process.
func Shutdown(s *session.Session, histPath string) error {
	return s.History.FlushTail(histPath)
}
