package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/mapper"
)

type AddCommentCommand struct {
	Actor      authorization.Actor
	TicketID   uint
	Content    string
	IsInternal bool
}

// AddCommentUseCase appends a comment and bumps the ticket. A public comment
// from staff counts as the first response when none is recorded yet.
type AddCommentUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	checker     PermissionChecker
	txMgr       db.Transactor
	logger      logger.Interface
	now         func() time.Time
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	checker PermissionChecker,
	txMgr db.Transactor,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		checker:     checker,
		txMgr:       txMgr,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case",
		"ticket_id", cmd.TicketID,
		"user_id", cmd.Actor.UserID,
		"internal", cmd.IsInternal)

	if cmd.IsInternal {
		if err := uc.checker.Require(cmd.Actor, permission.ResourceCommentInternal, permission.ActionCreate); err != nil {
			return nil, err
		}
	}

	var comment *ticket.Comment
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if err := ensureTicketVisible(uc.checker, cmd.Actor, t); err != nil {
			return err
		}

		now := uc.now()
		comment, err = ticket.NewComment(t.ID(), cmd.Actor.UserID, cmd.Content, cmd.IsInternal, now)
		if err != nil {
			return err
		}
		if err := uc.commentRepo.Create(txCtx, comment); err != nil {
			return err
		}

		t.Touch(now)
		if cmd.Actor.IsStaff() && !cmd.IsInternal && t.RecordFirstResponse(now) {
			uc.logger.Infow("first response recorded", "ticket_id", t.ID(), "user_id", cmd.Actor.UserID)
		}
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to add comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	result := dto.FromComment(comment)
	return &result, nil
}

type ListCommentsQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type ListCommentsUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	checker     PermissionChecker
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	checker PermissionChecker,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		checker:     checker,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
	uc.logger.Infow("executing list comments use case", "ticket_id", query.TicketID, "user_id", query.Actor.UserID)

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	if err := ensureTicketVisible(uc.checker, query.Actor, t); err != nil {
		return nil, err
	}

	includeInternal := uc.checker.Allowed(query.Actor, permission.ResourceCommentInternal, permission.ActionRead)
	comments, err := uc.commentRepo.ListByTicket(ctx, t.ID(), includeInternal)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}
	return mapper.MapSlice(comments, dto.ToCommentDTO), nil
}
