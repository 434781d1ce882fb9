// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types with actionable context.
//
// Errors produced during plan or configuration loading carry the operation
// that failed, the file involved, and suggestions for fixing the problem,
// so the CLI can render something more helpful than a bare error string.
package issue
