package db

import (
	"strings"

	"gorm.io/gorm"

	"github.com/deskhub/deskhub/internal/shared/constants"
)

// Paginate applies LIMIT/OFFSET for a 1-based page. Non-positive sizes
// leave the query unbounded. page is capped at constants.MaxPage so the
// offset cannot overflow.
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return q
		}
		if page < 1 {
			page = 1
		}
		if page > constants.MaxPage {
			page = constants.MaxPage
		}
		return q.Limit(pageSize).Offset((page - 1) * pageSize)
	}
}

// SearchAny matches term case-insensitively against any of columns. An empty
// term is a no-op. LOWER/LIKE keeps the scope portable across drivers.
func SearchAny(term string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return q
		}
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		clauses := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			clauses[i] = "LOWER(" + col + ") LIKE ? ESCAPE '!'"
			args[i] = pattern
		}
		return q.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}

var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
