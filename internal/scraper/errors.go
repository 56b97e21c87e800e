package scraper

import "fmt"

// FetchError reports a failed page fetch: a transport error or a
// non-success HTTP status. Fetches are single-attempt; the first failure
// surfaces to the caller.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: unexpected status code %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NotAvailableError means the page loaded but carries no voting results
// for the year: a future year, or one with no induction vote.
type NotAvailableError struct {
	Year int
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("no voting results for year %d", e.Year)
}

// StructureError means a voting page is missing an expected substructure,
// usually a sign the upstream page format changed.
type StructureError struct {
	Missing string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("unexpected page structure: missing %s", e.Missing)
}

// ParseError means a located substructure's text did not match the
// expected pattern. Input carries the offending text or href.
type ParseError struct {
	What  string
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s from %q", e.What, e.Input)
}

// RowStructureError reports a table body row without a rank header cell.
// Row is the zero-based index within the table body.
type RowStructureError struct {
	Row int
}

func (e *RowStructureError) Error() string {
	return fmt.Sprintf("table row %d has no rank cell", e.Row)
}
