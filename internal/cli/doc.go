// Package cli parses the optional command-line flags, validates them and
// handles process-level concerns like exit codes. The analysis itself is
// driven conversationally by the app package.
package cli
