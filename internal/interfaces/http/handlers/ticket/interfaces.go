package ticket

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/authorization"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

type EditTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.EditTicketCommand) (*dto.TicketDTO, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*dto.TicketDTO, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.AssignTicketCommand) (*dto.TicketDTO, error)
}

type ChangePriorityExecutor interface {
	Execute(ctx context.Context, cmd usecases.ChangePriorityCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error
}

type BulkUpdateExecutor interface {
	Execute(ctx context.Context, cmd usecases.BulkUpdateCommand) (*usecases.BulkUpdateResult, error)
}

type DashboardExecutor interface {
	Execute(ctx context.Context, actor authorization.Actor) (*dto.DashboardDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd usecases.AddCommentCommand) (*dto.CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query usecases.ListCommentsQuery) ([]dto.CommentDTO, error)
}

type AddTimeEntryExecutor interface {
	Execute(ctx context.Context, cmd usecases.AddTimeEntryCommand) (*dto.TimeEntryDTO, error)
}

type ListTimeEntriesExecutor interface {
	Execute(ctx context.Context, query usecases.ListTimeEntriesQuery) (*usecases.ListTimeEntriesResult, error)
}

type ListMyTimeEntriesExecutor interface {
	Execute(ctx context.Context, actor authorization.Actor) ([]dto.TimeEntryDTO, error)
}
