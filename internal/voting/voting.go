package voting

// PlayerIDColumn is the name of the derived identifier column appended
// after the columns parsed from the table header.
const PlayerIDColumn = "playerId"

// Record is one row of a voting table. Fields holds the raw cell text in
// table order, rank first; for hyperlinked cells the link's visible text
// is used. PlayerID is empty for rows with no hyperlinked cell.
type Record struct {
	Fields   []string `json:"fields"`
	PlayerID string   `json:"player_id,omitempty"`
}

// Rank returns the record's leading rank value, or "" for an empty record.
func (r Record) Rank() string {
	if len(r.Fields) == 0 {
		return ""
	}
	return r.Fields[0]
}

// ResultSet is the full voting table for one year. Every Record has
// exactly len(Columns) fields; Year is echoed from the request, not read
// from the page.
type ResultSet struct {
	Year         int      `json:"year"`
	TotalBallots int      `json:"total_ballots"`
	Columns      []string `json:"columns"`
	Records      []Record `json:"records"`
}

// ColumnNames returns the header columns followed by the derived player id
// column, matching the order fields are emitted per record.
func (rs *ResultSet) ColumnNames() []string {
	names := make([]string, 0, len(rs.Columns)+1)
	names = append(names, rs.Columns...)
	names = append(names, PlayerIDColumn)
	return names
}
