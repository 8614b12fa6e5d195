package strval

import (
	"bufio"
	"fmt"
	"io"

	"github.com/emberlang/ember-runtime/heap"
)

// Scanner reads whitespace-delimited input tokens for Ember's input
// builtin. Each token is duplicated into the tracker so the shutdown
// sweep reclaims inputs the program never released.
type Scanner struct {
	sc *bufio.Scanner
	tr *heap.Tracker
}

// NewScanner creates a token scanner over r backed by tr.
func NewScanner(tr *heap.Tracker, r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Scanner{sc: sc, tr: tr}
}

// Input writes prompt to w, then blocks until one whitespace-delimited
// token is read or the stream ends. The token is registered with the
// tracker; end of stream yields the empty string with nothing
// registered.
func (s *Scanner) Input(w io.Writer, prompt string) string {
	fmt.Fprint(w, prompt)
	if !s.sc.Scan() {
		return ""
	}
	_, data := s.tr.Duplicate(s.sc.Text())
	return string(data)
}
