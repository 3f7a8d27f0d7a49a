// SPDX-License-Identifier: MPL-2.0

// Package session drives the interactive query loop: prompt for a start item
// and a goal item, run a shortest-path query, render the result, repeat.
//
// The loop holds no state beyond the current prompt and never mutates the
// graph. Input is abstracted behind the Prompter interface so the loop is
// testable without a terminal; the two shipped implementations cover an
// interactive terminal (huh) and plain line-oriented reads.
package session
