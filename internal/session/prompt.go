// SPDX-License-Identifier: MPL-2.0

package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

type (
	// TermPrompter prompts on an interactive terminal.
	TermPrompter struct{}

	// LinePrompter reads bare lines from a reader, for piped input and other
	// non-terminal sessions.
	LinePrompter struct {
		in  *bufio.Reader
		out io.Writer
	}
)

// NewTermPrompter creates a terminal prompter.
func NewTermPrompter() *TermPrompter {
	return &TermPrompter{}
}

// Prompt implements Prompter. Escape or Ctrl+C ends the session.
func (*TermPrompter) Prompt(label string) (string, error) {
	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(label).
			Value(&name),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", io.EOF
		}
		return "", err
	}
	return name, nil
}

// NewLinePrompter creates a prompter that echoes the label to out and reads
// one line from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Prompt implements Prompter.
func (p *LinePrompter) Prompt(label string) (string, error) {
	fmt.Fprintf(p.out, "%s ", label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			// Final unterminated line still counts.
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
