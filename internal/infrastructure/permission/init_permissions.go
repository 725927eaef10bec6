package permission

import (
	"fmt"

	"github.com/deskhub/deskhub/internal/domain/permission"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

// SeedDefaultPolicies adds the built-in role table. Existing rows are kept,
// so operators may add grants directly in casbin_rule.
func SeedDefaultPolicies(enforcer permission.PermissionEnforcer, log logger.Interface) error {
	policies := permission.DefaultPolicies()
	for _, p := range policies {
		s := p.Strings()
		if err := enforcer.AddPolicy(s[0], s[1], s[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", s[0], s[1], s[2], err)
		}
	}
	log.Infow("default permissions initialized", "policies", len(policies))
	return nil
}
