package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils/setutil"
)

// BulkUpdateCommand applies any subset of status, priority and assignee to
// every listed ticket. Set ClearAssignee to unassign.
type BulkUpdateCommand struct {
	Actor         authorization.Actor
	TicketIDs     []uint
	StatusID      *uint
	PriorityID    *uint
	AssigneeID    *uint
	ClearAssignee bool
}

type BulkUpdateResult struct {
	Updated int
}

type BulkUpdateUseCase struct {
	ticketRepo  ticket.Repository
	catalogRepo catalog.Repository
	userRepo    user.Repository
	checker     PermissionChecker
	txMgr       db.Transactor
	logger      logger.Interface
	now         func() time.Time
}

func NewBulkUpdateUseCase(
	ticketRepo ticket.Repository,
	catalogRepo catalog.Repository,
	userRepo user.Repository,
	checker PermissionChecker,
	txMgr db.Transactor,
	logger logger.Interface,
) *BulkUpdateUseCase {
	return &BulkUpdateUseCase{
		ticketRepo:  ticketRepo,
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		checker:     checker,
		txMgr:       txMgr,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *BulkUpdateUseCase) Execute(ctx context.Context, cmd BulkUpdateCommand) (*BulkUpdateResult, error) {
	uc.logger.Infow("executing bulk update use case",
		"ticket_count", len(cmd.TicketIDs),
		"user_id", cmd.Actor.UserID)

	if err := uc.checker.Require(cmd.Actor, permission.ResourceTicketBulk, permission.ActionUpdate); err != nil {
		return nil, err
	}

	ids := setutil.NewUintSet(cmd.TicketIDs...)
	if ids.Len() == 0 {
		return nil, errors.NewValidationError("at least one ticket must be selected")
	}
	if cmd.StatusID == nil && cmd.PriorityID == nil && cmd.AssigneeID == nil && !cmd.ClearAssignee {
		return nil, errors.NewValidationError("nothing to update")
	}
	if cmd.AssigneeID != nil && cmd.ClearAssignee {
		return nil, errors.NewValidationError("assignee cannot be set and cleared at once")
	}

	var status *catalog.Status
	if cmd.StatusID != nil {
		var err error
		if status, err = uc.catalogRepo.GetStatus(ctx, *cmd.StatusID); err != nil {
			return nil, err
		}
	}
	if cmd.PriorityID != nil {
		if _, err := uc.catalogRepo.GetPriority(ctx, *cmd.PriorityID); err != nil {
			return nil, err
		}
	}
	if cmd.AssigneeID != nil {
		if err := checkAssignee(ctx, uc.userRepo, uc.checker, *cmd.AssigneeID); err != nil {
			return nil, err
		}
	}

	var updated int
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		tickets, err := uc.ticketRepo.GetByIDs(txCtx, ids.Sorted())
		if err != nil {
			return err
		}

		found := setutil.NewUintSet()
		for _, t := range tickets {
			found.Add(t.ID())
		}
		if missing := found.Missing(ids); len(missing) > 0 {
			return errors.NewNotFoundError("tickets not found", formatIDs(missing))
		}

		now := uc.now()
		for _, t := range tickets {
			if status != nil {
				t.ChangeStatus(status, now)
			}
			if cmd.PriorityID != nil {
				t.ChangePriority(*cmd.PriorityID, now)
			}
			if cmd.AssigneeID != nil || cmd.ClearAssignee {
				t.AssignTo(cmd.AssigneeID, now)
			}
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				return err
			}
		}
		updated = len(tickets)
		return nil
	})
	if err != nil {
		uc.logger.Errorw("bulk update failed, nothing applied", "error", err)
		return nil, err
	}

	uc.logger.Infow("bulk update applied", "updated", updated)
	return &BulkUpdateResult{Updated: updated}, nil
}

func formatIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return "ids: " + strings.Join(parts, ", ")
}
