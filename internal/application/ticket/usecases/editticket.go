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
	"helpdesk/internal/shared/logger"
)

type EditTicketCommand struct {
	Actor       authorization.Actor
	TicketID    uint
	Title       string
	Description string
	CategoryID  uint
	PriorityID  uint
	// AssigneeID is only honoured for staff; nil unassigns.
	AssigneeID *uint
}

// EditTicketUseCase is the full-form update. Status is changed through
// ChangeStatusUseCase only.
type EditTicketUseCase struct {
	ticketRepo  ticket.Repository
	catalogRepo catalog.Repository
	userRepo    user.Repository
	checker     PermissionChecker
	txMgr       db.Transactor
	logger      logger.Interface
	now         func() time.Time
}

func NewEditTicketUseCase(
	ticketRepo ticket.Repository,
	catalogRepo catalog.Repository,
	userRepo user.Repository,
	checker PermissionChecker,
	txMgr db.Transactor,
	logger logger.Interface,
) *EditTicketUseCase {
	return &EditTicketUseCase{
		ticketRepo:  ticketRepo,
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		checker:     checker,
		txMgr:       txMgr,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *EditTicketUseCase) Execute(ctx context.Context, cmd EditTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing edit ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	if err := uc.checker.Require(cmd.Actor, permission.ResourceTicket, permission.ActionUpdate); err != nil {
		return nil, err
	}
	if _, err := uc.catalogRepo.GetCategory(ctx, cmd.CategoryID); err != nil {
		return nil, err
	}
	if _, err := uc.catalogRepo.GetPriority(ctx, cmd.PriorityID); err != nil {
		return nil, err
	}

	canAssign := uc.checker.Allowed(cmd.Actor, permission.ResourceTicketAssignment, permission.ActionUpdate)
	if canAssign && cmd.AssigneeID != nil {
		if err := checkAssignee(ctx, uc.userRepo, uc.checker, *cmd.AssigneeID); err != nil {
			return nil, err
		}
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if err := ensureTicketVisible(uc.checker, cmd.Actor, t); err != nil {
			return err
		}

		now := uc.now()
		if err := t.Edit(cmd.Title, cmd.Description, cmd.CategoryID, cmd.PriorityID, now); err != nil {
			return err
		}
		if canAssign {
			t.AssignTo(cmd.AssigneeID, now)
		}
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to edit ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket edited successfully", "ticket_id", cmd.TicketID)
	return reload(ctx, uc.ticketRepo, cmd.TicketID, uc.now())
}

// reload returns the read model of a ticket after a write.
func reload(ctx context.Context, repo ticket.Repository, id uint, now time.Time) (*dto.TicketDTO, error) {
	details, err := repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	result := dto.ToTicketDTO(details, now)
	return &result, nil
}
