package permission

import (
	"context"
	"fmt"

	"github.com/deskhub/deskhub/internal/domain/permission"
	vo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

// Checker is the role check every workflow runs before touching the store.
type Checker interface {
	Require(ctx context.Context, principal authorization.Principal, resource vo.Resource, action vo.Action) error
	Allowed(ctx context.Context, principal authorization.Principal, resource vo.Resource, action vo.Action) bool
}

type Service struct {
	enforcer permission.PermissionEnforcer
	logger   logger.Interface
}

func NewService(enforcer permission.PermissionEnforcer, logger logger.Interface) *Service {
	return &Service{enforcer: enforcer, logger: logger}
}

// Require returns a forbidden error unless the principal's role grants
// action on resource. Enforcer failures deny.
func (s *Service) Require(ctx context.Context, principal authorization.Principal, resource vo.Resource, action vo.Action) error {
	if principal.IsZero() {
		return errors.NewUnauthorizedError("authentication required")
	}
	if s.Allowed(ctx, principal, resource, action) {
		return nil
	}
	s.logger.Warnw("permission denied",
		"user_id", principal.UserID,
		"role", principal.Role,
		"resource", resource,
		"action", action,
	)
	return errors.NewForbiddenError(
		fmt.Sprintf("Unauthorized: You do not have permission to %s %s.", verb(action), noun(resource)),
	)
}

func (s *Service) Allowed(_ context.Context, principal authorization.Principal, resource vo.Resource, action vo.Action) bool {
	ok, err := s.enforcer.Enforce(principal.Role.String(), resource.String(), action.String())
	if err != nil {
		s.logger.Errorw("permission check failed", "error", err, "user_id", principal.UserID)
		return false
	}
	return ok
}

func verb(a vo.Action) string {
	switch a {
	case vo.ActionReadOwn, vo.ActionRead, vo.ActionReadQueue:
		return "view"
	case vo.ActionSelfAssign, vo.ActionAssign:
		return "assign"
	case vo.ActionUpdateStatus:
		return "update the status of"
	case vo.ActionListStaff:
		return "list staff for"
	case vo.ActionStats:
		return "view statistics for"
	default:
		return a.String()
	}
}

func noun(r vo.Resource) string {
	switch r {
	case vo.ResourceDashboard:
		return "the dashboard"
	case vo.ResourceUser:
		return "users"
	default:
		return r.String() + "s"
	}
}
