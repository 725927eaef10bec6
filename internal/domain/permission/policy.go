package permission

import (
	vo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/authorization"
)

// Policy grants one role one action on one resource.
type Policy struct {
	Role     authorization.UserRole
	Resource vo.Resource
	Action   vo.Action
}

func (p Policy) Strings() []string {
	return []string{p.Role.String(), p.Resource.String(), p.Action.String()}
}

var (
	everyone = []authorization.UserRole{authorization.RoleEmployee, authorization.RoleITStaff, authorization.RoleAdmin}
	staff    = []authorization.UserRole{authorization.RoleITStaff, authorization.RoleAdmin}
	admins   = []authorization.UserRole{authorization.RoleAdmin}
)

type grant struct {
	resource vo.Resource
	action   vo.Action
	roles    []authorization.UserRole
}

var defaultGrants = []grant{
	{vo.ResourceTicket, vo.ActionCreate, everyone},
	{vo.ResourceTicket, vo.ActionReadOwn, everyone},
	{vo.ResourceTicket, vo.ActionReadQueue, staff},
	{vo.ResourceTicket, vo.ActionSelfAssign, staff},
	{vo.ResourceTicket, vo.ActionAssign, staff},
	{vo.ResourceTicket, vo.ActionUpdateStatus, staff},
	{vo.ResourceTicket, vo.ActionClose, admins},
	{vo.ResourceTicket, vo.ActionUpdate, admins},
	{vo.ResourceTicket, vo.ActionDelete, admins},

	{vo.ResourceAsset, vo.ActionReadOwn, everyone},
	{vo.ResourceAsset, vo.ActionManage, staff},
	{vo.ResourceAsset, vo.ActionDelete, admins},

	{vo.ResourceArticle, vo.ActionRead, everyone},
	{vo.ResourceArticle, vo.ActionCreate, staff},
	{vo.ResourceArticle, vo.ActionUpdate, staff},
	{vo.ResourceArticle, vo.ActionDelete, admins},

	{vo.ResourceUser, vo.ActionManage, admins},
	{vo.ResourceUser, vo.ActionListStaff, staff},

	{vo.ResourceDashboard, vo.ActionStats, admins},
}

// DefaultPolicies expands the built-in role table into one Policy per
// (role, resource, action).
func DefaultPolicies() []Policy {
	var out []Policy
	for _, g := range defaultGrants {
		for _, r := range g.roles {
			out = append(out, Policy{Role: r, Resource: g.resource, Action: g.action})
		}
	}
	return out
}
