package db

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/deskhub/deskhub/internal/shared/constants"
)

func dryRun(t *testing.T, scopes ...func(*gorm.DB) *gorm.DB) *gorm.Statement {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{DryRun: true})
	require.NoError(t, err)
	var rows []map[string]interface{}
	return gdb.Table("tickets").Scopes(scopes...).Find(&rows).Statement
}

func limitOf(t *testing.T, stmt *gorm.Statement) clause.Limit {
	t.Helper()
	c, ok := stmt.Clauses["LIMIT"]
	require.True(t, ok, "no LIMIT clause")
	limit, ok := c.Expression.(clause.Limit)
	require.True(t, ok)
	return limit
}

func TestPaginate(t *testing.T) {
	limit := limitOf(t, dryRun(t, Paginate(3, 20)))
	require.NotNil(t, limit.Limit)
	assert.Equal(t, 20, *limit.Limit)
	assert.Equal(t, 40, limit.Offset)

	limit = limitOf(t, dryRun(t, Paginate(math.MaxInt, 20)))
	assert.Equal(t, (constants.MaxPage-1)*20, limit.Offset)

	_, ok := dryRun(t, Paginate(1, 0)).Clauses["LIMIT"]
	assert.False(t, ok)
}

func TestSearchAny(t *testing.T) {
	stmt := dryRun(t, SearchAny(" 50%_off ", "title", "description"))
	assert.Contains(t, stmt.SQL.String(), "LOWER(title) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!'")
	assert.Contains(t, stmt.Vars, "%50!%!_off%")
}
