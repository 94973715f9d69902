package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	Actor    authorization.Actor
	TicketID uint
	StatusID uint
}

type ChangeStatusUseCase struct {
	ticketRepo  ticket.Repository
	catalogRepo catalog.Repository
	checker     PermissionChecker
	txMgr       db.Transactor
	logger      logger.Interface
	now         func() time.Time
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	catalogRepo catalog.Repository,
	checker PermissionChecker,
	txMgr db.Transactor,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:  ticketRepo,
		catalogRepo: catalogRepo,
		checker:     checker,
		txMgr:       txMgr,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing change ticket status use case",
		"ticket_id", cmd.TicketID,
		"status_id", cmd.StatusID,
		"user_id", cmd.Actor.UserID)

	if err := uc.checker.Require(cmd.Actor, permission.ResourceTicketStatus, permission.ActionUpdate); err != nil {
		return nil, err
	}
	status, err := uc.catalogRepo.GetStatus(ctx, cmd.StatusID)
	if err != nil {
		return nil, err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		t.ChangeStatus(status, uc.now())
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to change ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status changed", "ticket_id", cmd.TicketID, "status", status.Name())
	return reload(ctx, uc.ticketRepo, cmd.TicketID, uc.now())
}

type AssignTicketCommand struct {
	Actor    authorization.Actor
	TicketID uint
	// AssigneeID nil unassigns the ticket.
	AssigneeID *uint
}

type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	checker    PermissionChecker
	txMgr      db.Transactor
	logger     logger.Interface
	now        func() time.Time
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	checker PermissionChecker,
	txMgr db.Transactor,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		checker:    checker,
		txMgr:      txMgr,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID,
		"assignee_id", cmd.AssigneeID,
		"user_id", cmd.Actor.UserID)

	if err := uc.checker.Require(cmd.Actor, permission.ResourceTicketAssignment, permission.ActionUpdate); err != nil {
		return nil, err
	}
	if cmd.AssigneeID != nil {
		if err := checkAssignee(ctx, uc.userRepo, uc.checker, *cmd.AssigneeID); err != nil {
			return nil, err
		}
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		t.AssignTo(cmd.AssigneeID, uc.now())
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket assignment changed", "ticket_id", cmd.TicketID)
	return reload(ctx, uc.ticketRepo, cmd.TicketID, uc.now())
}

type ChangePriorityCommand struct {
	Actor      authorization.Actor
	TicketID   uint
	PriorityID uint
}

// ChangePriorityUseCase leaves the SLA deadlines set at creation untouched.
type ChangePriorityUseCase struct {
	ticketRepo  ticket.Repository
	catalogRepo catalog.Repository
	checker     PermissionChecker
	txMgr       db.Transactor
	logger      logger.Interface
	now         func() time.Time
}

func NewChangePriorityUseCase(
	ticketRepo ticket.Repository,
	catalogRepo catalog.Repository,
	checker PermissionChecker,
	txMgr db.Transactor,
	logger logger.Interface,
) *ChangePriorityUseCase {
	return &ChangePriorityUseCase{
		ticketRepo:  ticketRepo,
		catalogRepo: catalogRepo,
		checker:     checker,
		txMgr:       txMgr,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *ChangePriorityUseCase) Execute(ctx context.Context, cmd ChangePriorityCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing change ticket priority use case",
		"ticket_id", cmd.TicketID,
		"priority_id", cmd.PriorityID,
		"user_id", cmd.Actor.UserID)

	if err := uc.checker.Require(cmd.Actor, permission.ResourceTicketPriority, permission.ActionUpdate); err != nil {
		return nil, err
	}
	if _, err := uc.catalogRepo.GetPriority(ctx, cmd.PriorityID); err != nil {
		return nil, err
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		t.ChangePriority(cmd.PriorityID, uc.now())
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to change ticket priority", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return reload(ctx, uc.ticketRepo, cmd.TicketID, uc.now())
}

type DeleteTicketCommand struct {
	Actor    authorization.Actor
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	checker    PermissionChecker
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	checker PermissionChecker,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		checker:    checker,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	if err := uc.checker.Require(cmd.Actor, permission.ResourceTicket, permission.ActionDelete); err != nil {
		return err
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	return nil
}

// checkAssignee rejects assignees whose role may not receive tickets.
func checkAssignee(ctx context.Context, userRepo user.Repository, checker PermissionChecker, assigneeID uint) error {
	assignee, err := userRepo.GetByID(ctx, assigneeID)
	if err != nil {
		return err
	}
	if !checker.RoleCanReceive(assignee.Role()) {
		return errors.NewValidationError("assignee must be an admin or IT staff member", assignee.Username())
	}
	return nil
}
