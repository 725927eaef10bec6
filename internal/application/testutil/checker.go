// Package testutil provides shared fakes for the use case tests.
package testutil

import (
	"github.com/deskhub/deskhub/internal/application/permission"
	domain "github.com/deskhub/deskhub/internal/domain/permission"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

// PolicyEnforcer is an in-memory PermissionEnforcer over explicit grants.
type PolicyEnforcer struct {
	grants map[[3]string]bool
}

func NewPolicyEnforcer(policies []domain.Policy) *PolicyEnforcer {
	e := &PolicyEnforcer{grants: make(map[[3]string]bool, len(policies))}
	for _, p := range policies {
		e.grants[[3]string{string(p.Role), string(p.Resource), string(p.Action)}] = true
	}
	return e
}

func (e *PolicyEnforcer) Enforce(role, resource, action string) (bool, error) {
	return e.grants[[3]string{role, resource, action}], nil
}

func (e *PolicyEnforcer) AddPolicy(role, resource, action string) error {
	e.grants[[3]string{role, resource, action}] = true
	return nil
}

func (e *PolicyEnforcer) RemovePolicy(role, resource, action string) error {
	delete(e.grants, [3]string{role, resource, action})
	return nil
}

func (e *PolicyEnforcer) Policies() ([][]string, error) {
	out := make([][]string, 0, len(e.grants))
	for k := range e.grants {
		out = append(out, []string{k[0], k[1], k[2]})
	}
	return out, nil
}

func (e *PolicyEnforcer) LoadPolicy() error { return nil }

// NewDefaultChecker returns a permission service enforcing the default
// policy table.
func NewDefaultChecker() *permission.Service {
	return permission.NewService(NewPolicyEnforcer(domain.DefaultPolicies()), logger.NewNop())
}
