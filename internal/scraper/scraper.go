package scraper

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/hof-voting/internal/voting"
)

const (
	BaseURL   = "https://www.baseball-reference.com/"
	UserAgent = "hof-voting-cli/1.0 (github.com/pfrederiksen/hof-voting)"
	Timeout   = 30 * time.Second
)

// Structural identifiers of the voting results page. The section heading
// holds the summary prose (ballot counts); the table holds the results.
const (
	sectionHeadingID = "hof_BBWAA_sh"
	tableID          = "hof_BBWAA"
	titlePhrase      = "hall of fame voting"
)

var (
	// Total ballots is the leading digit run of the summary line
	// ("397 ballots cast, ...").
	totalBallotsPattern = regexp.MustCompile(`^\d+`)
	// Player ids are the letters/periods-then-digits segment right before
	// the trailing ".shtml" of a profile href.
	playerIDPattern = regexp.MustCompile(`([A-Za-z.]+\d+)\.shtml$`)
)

// Scraper handles fetching and parsing Hall of Fame voting pages
type Scraper struct {
	client  *http.Client
	baseURL string
}

// New creates a new Scraper instance pointed at the production site
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: BaseURL,
	}
}

// FetchVoting fetches the voting results page for a year and parses it
// into a ResultSet. A single attempt only: transport failures and
// non-200 responses surface immediately as a *FetchError.
func (s *Scraper) FetchVoting(year int) (*voting.ResultSet, error) {
	url := s.votingURL(year)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	return s.parseVoting(resp.Body, year)
}

// votingURL builds the year-specific page URL
func (s *Scraper) votingURL(year int) string {
	return fmt.Sprintf("%s/awards/hof_%d.shtml", strings.TrimSuffix(s.baseURL, "/"), year)
}

// parseVoting extracts the voting table from a results page. The page
// title must contain "hall of fame voting"; pages without it (future
// years, years with no induction vote) yield a *NotAvailableError.
func (s *Scraper) parseVoting(r io.Reader, year int) (*voting.ResultSet, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	title := doc.Find("title").Text()
	if !strings.Contains(strings.ToLower(title), titlePhrase) {
		return nil, &NotAvailableError{Year: year}
	}

	heading := doc.Find("#" + sectionHeadingID)
	if heading.Length() == 0 {
		return nil, &StructureError{Missing: "section heading #" + sectionHeadingID}
	}

	table := doc.Find("#" + tableID)
	if table.Length() == 0 {
		return nil, &StructureError{Missing: "table #" + tableID}
	}

	columns, err := parseHeader(table.Find("thead"))
	if err != nil {
		return nil, err
	}

	totalBallots, err := parseTotalBallots(heading)
	if err != nil {
		return nil, err
	}

	records, err := parseBody(table.Find("tbody"))
	if err != nil {
		return nil, err
	}

	return &voting.ResultSet{
		Year:         year,
		TotalBallots: totalBallots,
		Columns:      columns,
		Records:      records,
	}, nil
}

// parseHeader reads column names from the table header. The first header
// row is a grouping band on the source page and is always skipped; names
// come from the second row's cells.
func parseHeader(header *goquery.Selection) ([]string, error) {
	rows := header.Find("tr")
	if rows.Length() < 2 {
		return nil, &StructureError{Missing: fmt.Sprintf("second header row (found %d)", rows.Length())}
	}

	columns := make([]string, 0)
	rows.Eq(1).Find("th").Each(func(_ int, cell *goquery.Selection) {
		columns = append(columns, strings.TrimSpace(cell.Text()))
	})

	return columns, nil
}

// parseTotalBallots extracts the ballot count from the first list item of
// the section heading's summary block. Only the leading number is
// authoritative; the rest of the line is prose.
func parseTotalBallots(heading *goquery.Selection) (int, error) {
	item := heading.Find(".section_heading_text li").First()
	if item.Length() == 0 {
		return 0, &ParseError{What: "total ballots", Input: "section heading without summary text"}
	}

	text := strings.TrimSpace(item.Text())
	matched := totalBallotsPattern.FindString(text)
	if matched == "" {
		return 0, &ParseError{What: "total ballots", Input: text}
	}

	total, err := strconv.Atoi(matched)
	if err != nil {
		return 0, &ParseError{What: "total ballots", Input: matched}
	}

	return total, nil
}

// parseBody converts the table body into records, preserving row order.
func parseBody(body *goquery.Selection) ([]voting.Record, error) {
	records := make([]voting.Record, 0)
	var rowErr error

	body.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		record, err := parseRow(i, row)
		if err != nil {
			rowErr = err
			return false
		}
		records = append(records, record)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return records, nil
}

// parseRow converts one body row. The rank comes from the row's header
// cell; data cells contribute their raw text, except hyperlinked cells
// which contribute the link's visible text. A row with several
// hyperlinked cells takes its player id from the last link encountered —
// earlier ids are overwritten. That rule is kept here, in one place, for
// compatibility with the source table's output.
func parseRow(index int, row *goquery.Selection) (voting.Record, error) {
	rank := row.Find("th")
	if rank.Length() == 0 {
		return voting.Record{}, &RowStructureError{Row: index}
	}

	fields := []string{rank.First().Text()}
	playerID := ""
	var cellErr error

	row.Find("td").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		link := cell.Find("a")
		if link.Length() == 0 {
			fields = append(fields, cell.Text())
			return true
		}

		link = link.First()
		fields = append(fields, link.Text())

		id, err := playerIDFromLink(link)
		if err != nil {
			cellErr = err
			return false
		}
		playerID = id
		return true
	})
	if cellErr != nil {
		return voting.Record{}, cellErr
	}

	return voting.Record{Fields: fields, PlayerID: playerID}, nil
}

// playerIDFromLink derives the entrant's id from their profile link
func playerIDFromLink(link *goquery.Selection) (string, error) {
	href, ok := link.Attr("href")
	if !ok {
		return "", &ParseError{What: "player id", Input: "hyperlink without href"}
	}
	return playerIDFromHref(href)
}

// playerIDFromHref extracts the id segment of a profile href, e.g.
// "/players/h/henderi01.shtml" -> "henderi01".
func playerIDFromHref(href string) (string, error) {
	matches := playerIDPattern.FindStringSubmatch(href)
	if matches == nil {
		return "", &ParseError{What: "player id", Input: href}
	}
	return matches[1], nil
}
