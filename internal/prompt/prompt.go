// Package prompt reads operator answers line by line, re-asking until an
// answer passes its check.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrClosed is returned once the input has no more lines.
var ErrClosed = errors.New("input closed")

type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

func New(in io.Reader, out, errOut io.Writer) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

// Out is where prompts are written.
func (p *Prompter) Out() io.Writer { return p.out }

// ErrOut is where rejected answers are reported.
func (p *Prompter) ErrOut() io.Writer { return p.errOut }

// Line prints label and reads one line without its line ending.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask keeps prompting until check accepts the answer. Rejections are printed
// to the error stream.
func (p *Prompter) Ask(label string, check func(string) error) (string, error) {
	for {
		answer, err := p.Line(label)
		if err != nil {
			return "", err
		}
		if check == nil {
			return answer, nil
		}
		if err := check(answer); err != nil {
			fmt.Fprintln(p.errOut, err)
			continue
		}
		return answer, nil
	}
}

// AskInt keeps prompting until the answer parses as an integer and passes
// check, which may be nil.
func (p *Prompter) AskInt(label string, check func(int) error) (int, error) {
	var n int
	_, err := p.Ask(label, func(answer string) error {
		v, err := ParseInt(answer)
		if err != nil {
			return err
		}
		if check != nil {
			if err := check(v); err != nil {
				return err
			}
		}
		n = v
		return nil
	})
	return n, err
}

// ParseInt accepts an optionally signed decimal integer with no surrounding
// whitespace.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("For input string: %q", s)
	}
	return v, nil
}
