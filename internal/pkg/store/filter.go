package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Match is how a filter value is compared with a column.
type Match int

const (
	// MatchExact compares case-sensitively.
	MatchExact Match = iota
	// MatchFold compares case-insensitively.
	MatchFold
	// MatchPartial is a case-insensitive substring match.
	MatchPartial
)

func (m Match) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchFold:
		return "fold"
	case MatchPartial:
		return "partial"
	}
	return fmt.Sprintf("Match(%d)", int(m))
}

var likeReplacer = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

func containsPattern(text string) string {
	return "%" + likeReplacer.Replace(text) + "%"
}

// Where builds the condition matching column against value.
func Where(m Match, column string, value any) sq.Sqlizer {
	switch m {
	case MatchFold:
		return sq.Expr(fmt.Sprintf("UPPER(%s) = UPPER(?)", column), value)
	case MatchPartial:
		return sq.Expr(fmt.Sprintf("LOWER(%s) LIKE LOWER(?) ESCAPE '%s'", column, likeEscape), containsPattern(fmt.Sprint(value)))
	default:
		return sq.Eq{column: value}
	}
}

// Search matches text as a substring of any of columns. A blank text matches
// everything and yields nil.
func Search(columns []string, text string) sq.Sqlizer {
	text = strings.TrimSpace(text)
	if text == "" || len(columns) == 0 {
		return nil
	}

	or := make(sq.Or, 0, len(columns))
	for _, c := range columns {
		or = append(or, Where(MatchPartial, c, text))
	}
	return or
}
