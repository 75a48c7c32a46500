// Package diag defines the diagnostic model the CLI uses to report
// generation problems.
//
// The pipeline itself returns plain errors; this package turns them into
// records with a severity, a stable code, and an optional document
// position, and renders them for the terminal. It performs no IO beyond
// writing to the io.Writer it is handed.
package diag
