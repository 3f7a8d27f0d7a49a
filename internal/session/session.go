// SPDX-License-Identifier: MPL-2.0

package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hw-lunemann/respi/internal/craft"
	"github.com/hw-lunemann/respi/internal/suggest"
)

type (
	// Prompter supplies one raw name per call. Implementations return io.EOF
	// when the user ends the session (end of input, escape, interrupt).
	Prompter interface {
		Prompt(label string) (string, error)
	}

	// Options tunes session output.
	Options struct {
		// Separator is placed between consecutive path elements.
		Separator string
		// Suggestions caps the "did you mean" list for unresolved names.
		// Zero disables suggestions.
		Suggestions int
	}

	// Session runs repeated shortest-path queries against a built graph.
	Session struct {
		graph       *craft.Graph
		prompter    Prompter
		out         io.Writer
		separator   string
		suggestions int
		names       []string
	}
)

// New creates a session over g, reading names from p and writing results to
// out.
func New(g *craft.Graph, p Prompter, out io.Writer, opts Options) *Session {
	sep := opts.Separator
	if sep == "" {
		sep = " -> "
	}
	return &Session{
		graph:       g,
		prompter:    p,
		out:         out,
		separator:   sep,
		suggestions: opts.Suggestions,
		names:       g.ItemNames(),
	}
}

// Run loops until the prompter reports the end of input. Unresolvable names
// re-prompt; they never end the session.
func (s *Session) Run() error {
	for {
		start, err := s.resolve("start:")
		if err != nil {
			return sessionEnd(err)
		}
		goal, err := s.resolve("goal:")
		if err != nil {
			return sessionEnd(err)
		}

		if path, ok := s.graph.ShortestPath(start, goal); ok {
			fmt.Fprintf(s.out, "shortest path: %s\n\n", s.graph.RenderPath(path, s.separator))
		} else {
			fmt.Fprint(s.out, "shortest path: none\n\n")
		}
	}
}

// resolve prompts under label until the answer names an existing item.
func (s *Session) resolve(label string) (craft.NodeID, error) {
	for {
		name, err := s.prompter.Prompt(label)
		if err != nil {
			return 0, err
		}
		if id, ok := s.graph.FindItem(name); ok {
			return id, nil
		}
		fmt.Fprintf(s.out, "no item named %q\n", name)
		if near := suggest.Closest(name, s.names, s.suggestions); len(near) > 0 {
			fmt.Fprintf(s.out, "did you mean: %s?\n", strings.Join(near, ", "))
		}
	}
}

// sessionEnd maps the prompter's end-of-input signal to a clean exit.
func sessionEnd(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
