// Package prompt asks the user whether existing files may be overwritten.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// OverwriteQuestion is asked once per artifact kind when files already exist
const OverwriteQuestion = "Do you want to overwrite the existing files? (Yes/No):"

// Decision says whether an existing file is written again
type Decision int

const (
	DecisionSkip Decision = iota
	DecisionWrite
)

// String returns the string representation of Decision
func (d Decision) String() string {
	if d == DecisionWrite {
		return "write"
	}
	return "skip"
}

// Decide turns the batch state and the user's answer into a decision for
// existing files. Without existing files there is nothing to overwrite.
func Decide(existingNonEmpty, answer bool) Decision {
	if existingNonEmpty && answer {
		return DecisionWrite
	}
	return DecisionSkip
}

// Confirmer answers yes/no questions
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Static always gives the same answer
type Static bool

// Confirm implements Confirmer
func (s Static) Confirm(question string) (bool, error) {
	logrus.Debugf("%s %v (non-interactive)", question, bool(s))
	return bool(s), nil
}

// Terminal reads the answer from an input stream
type Terminal struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewTerminal creates a confirmer reading from in and writing the question to
// out. When in is not a terminal every question is answered no.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	interactive := true
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}

	return &Terminal{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Confirm implements Confirmer
func (t *Terminal) Confirm(question string) (bool, error) {
	if !t.interactive {
		logrus.Warnf("%s no (stdin is not a terminal, use --force to overwrite)", question)
		return false, nil
	}

	fmt.Fprintf(t.out, "%s [no] ", question)

	line, err := t.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	return isYes(line), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
