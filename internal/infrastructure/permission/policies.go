package permission

import (
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/shared/authorization"
)

func rule(role authorization.UserRole, resource permission.Resource, action permission.Action) []string {
	return []string{role.String(), string(resource), string(action)}
}

func staffRules(role authorization.UserRole) [][]string {
	return [][]string{
		rule(role, permission.ResourceTicket, permission.ActionManage),
		rule(role, permission.ResourceTicketAll, permission.ActionRead),
		rule(role, permission.ResourceTicketStatus, permission.ActionUpdate),
		rule(role, permission.ResourceTicketAssignment, permission.ActionUpdate),
		rule(role, permission.ResourceTicketAssignment, permission.ActionReceive),
		rule(role, permission.ResourceTicketPriority, permission.ActionUpdate),
		rule(role, permission.ResourceTicketBulk, permission.ActionUpdate),
		rule(role, permission.ResourceCommentInternal, permission.ActionManage),
		rule(role, permission.ResourceTimeEntry, permission.ActionManage),
		rule(role, permission.ResourceReport, permission.ActionRead),
		rule(role, permission.ResourceArticle, permission.ActionManage),
	}
}

// DefaultPolicies is the role capability table seeded at startup. Ownership of
// a ticket is checked in the use cases, not here.
func DefaultPolicies() [][]string {
	policies := staffRules(authorization.RoleAdmin)
	policies = append(policies, rule(authorization.RoleAdmin, permission.ResourceUser, permission.ActionManage))
	policies = append(policies, staffRules(authorization.RoleITStaff)...)

	return append(policies,
		rule(authorization.RoleUser, permission.ResourceTicket, permission.ActionCreate),
		rule(authorization.RoleUser, permission.ResourceTicket, permission.ActionRead),
		rule(authorization.RoleUser, permission.ResourceTicket, permission.ActionUpdate),
		rule(authorization.RoleUser, permission.ResourceTimeEntry, permission.ActionCreate),
		rule(authorization.RoleUser, permission.ResourceTimeEntry, permission.ActionRead),
		rule(authorization.RoleUser, permission.ResourceArticle, permission.ActionRead),
	)
}
