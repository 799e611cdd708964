// Package prompt reads free-text answers from a line-oriented input stream.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrClosed is returned once the input stream has no more lines.
var ErrClosed = errors.New("input closed")

// Prompter writes questions to out and reads one answer per line from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Ask prints the question and returns the next answer with surrounding
// whitespace removed.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		return "", ErrClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Say prints a line of text.
func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Choose asks until validate accepts the answer. Each rejected answer prints
// the message returned by validate, if any, and asks again.
func (p *Prompter) Choose(question string, validate func(answer string) (ok bool, complaint string)) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		ok, complaint := validate(answer)
		if ok {
			return answer, nil
		}
		if complaint != "" {
			p.Say("%s", complaint)
		}
	}
}

// YesNo asks until the answer is "yes" or "no", ignoring case.
func (p *Prompter) YesNo(question string) (bool, error) {
	answer, err := p.Choose(question, func(a string) (bool, string) {
		switch strings.ToLower(a) {
		case "yes", "no":
			return true, ""
		}
		return false, "Please enter 'yes' or 'no'."
	})
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}
