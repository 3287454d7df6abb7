// Package prompt reads line-oriented answers from a terminal and re-asks until
// an answer parses.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"csvsift/internal/present"
)

// Prompter asks questions on out and reads one line per answer from in.
type Prompter struct {
	rd     *bufio.Reader
	out    io.Writer
	styles present.Styles
}

// New returns a prompter over in and out.
func New(in io.Reader, out io.Writer, styles present.Styles) *Prompter {
	return &Prompter{rd: bufio.NewReader(in), out: out, styles: styles}
}

// Out is the writer prompts are printed to.
func (p *Prompter) Out() io.Writer { return p.out }

// Ask prints label and returns the next input line without its line ending.
// Lines of any length are accepted. It returns io.EOF once input is exhausted.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprintf(p.out, "\n%s", p.styles.Prompt.Render(label))
	line, err := p.rd.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Say prints a message on its own line, preceded by a blank line.
func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, "\n%s\n", fmt.Sprintf(format, args...))
}

// Done prints a completion message in the success style.
func (p *Prompter) Done(msg string) {
	fmt.Fprintf(p.out, "\n%s\n", p.styles.Success.Render(msg))
}

// Warn prints a validation message.
func (p *Prompter) Warn(msg string) {
	fmt.Fprintf(p.out, "\n%s\n", p.styles.Error.Render(msg))
}

// Until asks label until parse accepts the answer, printing each rejection.
func Until[T any](p *Prompter, label string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := p.Ask(label)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		p.Warn(err.Error())
	}
}

// ErrYesNo is the rejection for anything other than Y or N.
var ErrYesNo = errors.New("Invalid input. Please enter 'Y' or 'N'.")

// ParseYesNo accepts Y or N in any case, ignoring surrounding space.
func ParseYesNo(s string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	}
	return false, ErrYesNo
}

// YesNo asks label until the answer is Y or N.
func YesNo(p *Prompter, label string) (bool, error) {
	return Until(p, label, ParseYesNo)
}

// IntParser returns a parser for whole numbers. Non-numeric input is rejected
// with notNumber; parsed values are then passed to check, if set.
func IntParser(notNumber string, check func(int) error) func(string) (int, error) {
	return func(s string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, errors.New(notNumber)
		}
		if check != nil {
			if err := check(n); err != nil {
				return 0, err
			}
		}
		return n, nil
	}
}

// Text asks label until a non-blank answer is given and returns it trimmed.
func Text(p *Prompter, label, emptyMsg string) (string, error) {
	return Until(p, label, func(s string) (string, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", errors.New(emptyMsg)
		}
		return s, nil
	})
}
