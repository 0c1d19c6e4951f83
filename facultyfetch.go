// Package facultyfetch provides a small CLI tool that loads faculty records
// from a delimited text file, looks faculties up by name, and measures the
// content served at each matched faculty's URL.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, fs/, slog/).
package facultyfetch
