// Package permission names the resources and actions of the role capability
// table. Ownership rules stay with the use cases.
package permission

type Resource string

const (
	ResourceTicket           Resource = "ticket"
	ResourceTicketAll        Resource = "ticket_all"
	ResourceTicketStatus     Resource = "ticket_status"
	ResourceTicketAssignment Resource = "ticket_assignment"
	ResourceTicketPriority   Resource = "ticket_priority"
	ResourceTicketBulk       Resource = "ticket_bulk"
	ResourceCommentInternal  Resource = "comment_internal"
	ResourceTimeEntry        Resource = "time_entry"
	ResourceReport           Resource = "report"
	ResourceUser             Resource = "user"
	ResourceArticle          Resource = "article"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionManage Action = "manage"
	// ActionReceive marks roles a ticket may be assigned to.
	ActionReceive Action = "receive"
)

// Enforcer answers whether a subject (a role name) may perform action on
// resource.
type Enforcer interface {
	Enforce(subject, resource, action string) (bool, error)
}
