// Package cli implements the command-line interface for hof-voting.
//
// The cli package provides the Cobra-based CLI for fetching one year's
// Hall of Fame voting results and formatting the output (text/JSON/table).
// It coordinates the scraper and voting packages and maps the scraper's
// error taxonomy onto process exit codes.
package cli
