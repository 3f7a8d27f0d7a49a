// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines error types that include remediation steps and
// Markdown-formatted guidance for the fatal dataset failures: an unreadable or
// malformed item table, and the unresolved name references that abort graph
// construction.
package issue
