package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhub/deskhub/internal/shared/logger"
)

func newSeededEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	e, err := NewMemoryEnforcer(logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, SeedDefaultPolicies(e, logger.NewNop()))
	return e
}

func TestEnforcer_DefaultTable(t *testing.T) {
	e := newSeededEnforcer(t)

	tests := []struct {
		role, resource, action string
		want                   bool
	}{
		{"employee", "ticket", "create", true},
		{"employee", "ticket", "read_queue", false},
		{"it_staff", "ticket", "self_assign", true},
		{"it_staff", "ticket", "close", false},
		{"admin", "ticket", "close", true},
		{"it_staff", "asset", "manage", true},
		{"it_staff", "asset", "delete", false},
		{"employee", "article", "delete", false},
		{"admin", "article", "delete", true},
		{"it_staff", "user", "list_staff", true},
		{"it_staff", "user", "manage", false},
		{"admin", "dashboard", "stats", true},
		{"guest", "ticket", "create", false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.resource+"/"+tt.action, func(t *testing.T) {
			allowed, err := e.Enforce(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestEnforcer_SeedIsIdempotent(t *testing.T) {
	e := newSeededEnforcer(t)
	before, err := e.Policies()
	require.NoError(t, err)

	require.NoError(t, SeedDefaultPolicies(e, logger.NewNop()))

	after, err := e.Policies()
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestEnforcer_RemovePolicy(t *testing.T) {
	e := newSeededEnforcer(t)

	require.NoError(t, e.RemovePolicy("it_staff", "article", "create"))

	allowed, err := e.Enforce("it_staff", "article", "create")
	require.NoError(t, err)
	assert.False(t, allowed)
}
