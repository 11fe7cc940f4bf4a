// Package logging wraps log/slog construction for the CLI.
//
// Diagnostics from avtool itself go to stderr so they never mix with the
// rendered probe output on stdout. The probe subprocess has its own,
// unrelated log level (see internal/probe).
package logging
