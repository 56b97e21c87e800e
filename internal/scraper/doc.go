// Package scraper provides HTTP fetching and HTML parsing for Hall of
// Fame voting result pages.
//
// The scraper fetches the public BBWAA voting results page for one year
// and extracts the voting table into structured records: one per entrant,
// carrying the raw cell values, a player id derived from the entrant's
// profile link, and the year's total ballot count taken from the summary
// prose above the table. Each call is a single synchronous fetch-then-parse
// pass; there is no caching, retrying, or shared state between calls.
package scraper
