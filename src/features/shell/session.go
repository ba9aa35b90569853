// Package shell holds the state shared by the interactive command handlers:
// the input and output streams and the numbered result set of the previous
// command.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/contre95/mediashelf/src/media"
)

// Session is one interactive conversation.
type Session struct {
	ctx     context.Context
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
	last    []*media.Record
}

// NewSession creates a session reading commands from in and writing to out.
func NewSession(ctx context.Context, in io.Reader, out io.Writer, prompt string) *Session {
	if prompt == "" {
		prompt = "> "
	}
	return &Session{
		ctx:     ctx,
		scanner: bufio.NewScanner(in),
		out:     out,
		prompt:  prompt,
	}
}

func (s *Session) Context() context.Context {
	return s.ctx
}

// Printf writes formatted output.
func (s *Session) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// Println writes a line of output.
func (s *Session) Println(args ...any) {
	fmt.Fprintln(s.out, args...)
}

// ReadLine prints the prompt and reads one line. ok is false at end of input.
func (s *Session) ReadLine() (line string, ok bool) {
	fmt.Fprint(s.out, s.prompt)
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

// Ask prints question and returns the trimmed answer.
func (s *Session) Ask(question string) (string, bool) {
	s.Println(question)
	line, ok := s.ReadLine()
	return strings.TrimSpace(line), ok
}

// Last returns the result set of the previous command.
func (s *Session) Last() []*media.Record {
	return s.last
}

// SetLast replaces the result set.
func (s *Session) SetLast(records []*media.Record) {
	s.last = records
}

// ShowResults prints the result set, numbered for later commands.
func (s *Session) ShowResults() {
	for i, r := range s.last {
		s.Printf("%d: %s\n", i, r)
	}
}

// Pick returns the record at the numbered position raw in the last result
// set. It fails with ErrMissingResultSet when there is none and with
// ErrInvalidParameters when raw is not a valid position.
func (s *Session) Pick(raw string) (*media.Record, error) {
	if len(s.last) == 0 {
		return nil, ErrMissingResultSet
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= len(s.last) {
		return nil, ErrInvalidParameters
	}
	return s.last[i], nil
}
