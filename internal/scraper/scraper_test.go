package scraper

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
)

const fixturePath = "../../testdata/fixtures/hof_2009.html"

func loadFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return string(data)
}

func TestParseVoting(t *testing.T) {
	html := loadFixture(t)

	s := New()
	results, err := s.parseVoting(strings.NewReader(html), 2009)
	if err != nil {
		t.Fatalf("parseVoting failed: %v", err)
	}

	if results.Year != 2009 {
		t.Errorf("Year = %d, want 2009", results.Year)
	}
	if results.TotalBallots != 539 {
		t.Errorf("TotalBallots = %d, want 539", results.TotalBallots)
	}

	wantColumns := []string{"Rk", "Name", "YoB", "Votes", "%vote", "HOFm", "HOFs", "Yrs", "WAR"}
	if !reflect.DeepEqual(results.Columns, wantColumns) {
		t.Errorf("Columns = %v, want %v", results.Columns, wantColumns)
	}

	if len(results.Records) != 4 {
		t.Fatalf("got %d records, want 4", len(results.Records))
	}

	// Every record carries one field per header column; the player id is
	// appended separately.
	for i, rec := range results.Records {
		if len(rec.Fields) != len(results.Columns) {
			t.Errorf("record %d has %d fields, want %d", i, len(rec.Fields), len(results.Columns))
		}
	}

	first := results.Records[0]
	if first.PlayerID != "henderi01" {
		t.Errorf("record 0 PlayerID = %q, want henderi01", first.PlayerID)
	}
	if first.Fields[1] != "Rickey Henderson" {
		t.Errorf("record 0 name = %q, want Rickey Henderson", first.Fields[1])
	}
	if first.Rank() != "1" {
		t.Errorf("record 0 rank = %q, want 1", first.Rank())
	}

	// Row without a hyperlink keeps its cell text but gets no player id.
	last := results.Records[3]
	if last.PlayerID != "" {
		t.Errorf("record 3 PlayerID = %q, want empty", last.PlayerID)
	}
	if last.Fields[1] != "Write-in candidate" {
		t.Errorf("record 3 name = %q, want 'Write-in candidate'", last.Fields[1])
	}
}

func TestParseVoting_Idempotent(t *testing.T) {
	html := loadFixture(t)
	s := New()

	first, err := s.parseVoting(strings.NewReader(html), 2009)
	if err != nil {
		t.Fatalf("first parse failed: %v", err)
	}
	second, err := s.parseVoting(strings.NewReader(html), 2009)
	if err != nil {
		t.Fatalf("second parse failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("parsing the same page twice produced different results")
	}
}

func TestParseVoting_NotAvailable(t *testing.T) {
	html := `<html><head><title>2030 Awards | Baseball-Reference.com</title></head><body></body></html>`

	s := New()
	_, err := s.parseVoting(strings.NewReader(html), 2030)

	var notAvailable *NotAvailableError
	if !errors.As(err, &notAvailable) {
		t.Fatalf("error = %v, want *NotAvailableError", err)
	}
	if notAvailable.Year != 2030 {
		t.Errorf("error year = %d, want 2030", notAvailable.Year)
	}
	if !strings.Contains(err.Error(), "2030") {
		t.Errorf("error message %q should name the year", err.Error())
	}
}

func TestParseVoting_StructureErrors(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{
			name: "missing section heading",
			html: `<html><head><title>Hall of Fame Voting</title></head><body>
				<table id="hof_BBWAA"><thead><tr></tr><tr></tr></thead><tbody></tbody></table>
			</body></html>`,
		},
		{
			name: "missing table",
			html: `<html><head><title>Hall of Fame Voting</title></head><body>
				<div id="hof_BBWAA_sh"><div class="section_heading_text"><ul><li>10 ballots cast</li></ul></div></div>
			</body></html>`,
		},
		{
			name: "single header row",
			html: `<html><head><title>Hall of Fame Voting</title></head><body>
				<div id="hof_BBWAA_sh"><div class="section_heading_text"><ul><li>10 ballots cast</li></ul></div></div>
				<table id="hof_BBWAA"><thead><tr><th>Rk</th></tr></thead><tbody></tbody></table>
			</body></html>`,
		},
	}

	s := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.parseVoting(strings.NewReader(tt.html), 2009)

			var structureErr *StructureError
			if !errors.As(err, &structureErr) {
				t.Fatalf("error = %v, want *StructureError", err)
			}
		})
	}
}

func TestParseVoting_MissingSummaryText(t *testing.T) {
	// A section heading without the summary block means the ballot count
	// cannot be parsed at all.
	html := `<html><head><title>Hall of Fame Voting</title></head><body>
		<div id="hof_BBWAA_sh"><h2>BBWAA Voting</h2></div>
		<table id="hof_BBWAA"><thead><tr></tr><tr><th>Rk</th></tr></thead><tbody></tbody></table>
	</body></html>`

	s := New()
	_, err := s.parseVoting(strings.NewReader(html), 2009)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
}

func TestParseVoting_BallotCountNotNumeric(t *testing.T) {
	html := `<html><head><title>Hall of Fame Voting</title></head><body>
		<div id="hof_BBWAA_sh"><div class="section_heading_text"><ul><li>ballots: many</li></ul></div></div>
		<table id="hof_BBWAA"><thead><tr></tr><tr><th>Rk</th></tr></thead><tbody></tbody></table>
	</body></html>`

	s := New()
	_, err := s.parseVoting(strings.NewReader(html), 2009)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if !strings.Contains(err.Error(), "ballots: many") {
		t.Errorf("error message %q should include the offending text", err.Error())
	}
}

func TestParseVoting_RowWithoutRankCell(t *testing.T) {
	html := `<html><head><title>Hall of Fame Voting</title></head><body>
		<div id="hof_BBWAA_sh"><div class="section_heading_text"><ul><li>10 ballots cast</li></ul></div></div>
		<table id="hof_BBWAA"><thead><tr></tr><tr><th>Rk</th><th>Name</th></tr></thead>
		<tbody>
			<tr><th>1</th><td><a href="/players/h/henderi01.shtml">Rickey Henderson</a></td></tr>
			<tr><td>no rank here</td></tr>
		</tbody></table>
	</body></html>`

	s := New()
	_, err := s.parseVoting(strings.NewReader(html), 2009)

	var rowErr *RowStructureError
	if !errors.As(err, &rowErr) {
		t.Fatalf("error = %v, want *RowStructureError", err)
	}
	if rowErr.Row != 1 {
		t.Errorf("error row = %d, want 1", rowErr.Row)
	}
}

func TestParseVoting_LastLinkWins(t *testing.T) {
	// A row with several hyperlinked cells takes its id from the last link.
	html := `<html><head><title>Hall of Fame Voting</title></head><body>
		<div id="hof_BBWAA_sh"><div class="section_heading_text"><ul><li>10 ballots cast</li></ul></div></div>
		<table id="hof_BBWAA"><thead><tr></tr><tr><th>Rk</th><th>Name</th><th>Team</th></tr></thead>
		<tbody>
			<tr>
				<th>1</th>
				<td><a href="/players/h/henderi01.shtml">Rickey Henderson</a></td>
				<td><a href="/players/r/riceji01.shtml">Jim Rice</a></td>
			</tr>
		</tbody></table>
	</body></html>`

	s := New()
	results, err := s.parseVoting(strings.NewReader(html), 2009)
	if err != nil {
		t.Fatalf("parseVoting failed: %v", err)
	}

	if got := results.Records[0].PlayerID; got != "riceji01" {
		t.Errorf("PlayerID = %q, want riceji01 (last link wins)", got)
	}
}

func TestPlayerIDFromHref(t *testing.T) {
	tests := []struct {
		href    string
		want    string
		wantErr bool
	}{
		{"/players/h/henderi01.shtml", "henderi01", false},
		{"https://www.baseball-reference.com/players/r/riceji01.shtml", "riceji01", false},
		{"/players/o/o.reilly02.shtml", "o.reilly02", false},
		{"/players/x/noDigits.shtml", "", true},
		{"/about/", "", true},
		{"/players/h/henderi01.shtml?tab=batting", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			got, err := playerIDFromHref(tt.href)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("playerIDFromHref(%q) expected error, got %q", tt.href, got)
				}
				if !strings.Contains(err.Error(), tt.href) {
					t.Errorf("error message %q should name the href", err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("playerIDFromHref(%q) unexpected error: %v", tt.href, err)
			}
			if got != tt.want {
				t.Errorf("playerIDFromHref(%q) = %q, want %q", tt.href, got, tt.want)
			}
		})
	}
}

func TestVotingURL(t *testing.T) {
	s := New()
	want := "https://www.baseball-reference.com/awards/hof_2009.shtml"
	if got := s.votingURL(2009); got != want {
		t.Errorf("votingURL(2009) = %q, want %q", got, want)
	}
}

func TestNew(t *testing.T) {
	s := New()

	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.client == nil {
		t.Error("scraper client is nil")
	}
	if s.baseURL != BaseURL {
		t.Errorf("scraper baseURL = %q, want %q", s.baseURL, BaseURL)
	}
}
