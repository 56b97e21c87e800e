// Package voting provides the types for Hall of Fame voting results.
//
// The voting package represents one year's BBWAA voting table as a
// ResultSet: the ordered header columns, one Record per entrant row, the
// year's total ballot count, and the year itself. Records carry the raw
// cell values from the source table plus a player id derived from the
// entrant's profile-page link.
package voting
