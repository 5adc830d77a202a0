package repository

import "strings"

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern builds a case-insensitive LIKE pattern; use with ESCAPE '!'.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
}

// PageQuery selects a window of rows.
type PageQuery struct {
	Search  string
	Offset  int
	Limit   int // zero means no limit
	OrderBy string
}
