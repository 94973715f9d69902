package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const maxNumberAttempts = 5

type CreateTicketCommand struct {
	Actor       authorization.Actor
	Title       string
	Description string
	CategoryID  uint
	PriorityID  uint
}

type CreateTicketResult struct {
	TicketID         uint
	Number           string
	StatusName       string
	SLAResponseDue   *time.Time
	SLAResolutionDue *time.Time
	CreatedAt        time.Time
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.Repository
	catalogRepo catalog.Repository
	numbers     ticket.NumberGenerator
	checker     PermissionChecker
	txMgr       db.Transactor
	logger      logger.Interface
	now         func() time.Time
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	catalogRepo catalog.Repository,
	numbers ticket.NumberGenerator,
	checker PermissionChecker,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		catalogRepo: catalogRepo,
		numbers:     numbers,
		checker:     checker,
		txMgr:       txMgr,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case",
		"requester_id", cmd.Actor.UserID,
		"category_id", cmd.CategoryID,
		"priority_id", cmd.PriorityID)

	if err := uc.checker.Require(cmd.Actor, permission.ResourceTicket, permission.ActionCreate); err != nil {
		return nil, err
	}

	category, err := uc.catalogRepo.GetCategory(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}
	priority, err := uc.catalogRepo.GetPriority(ctx, cmd.PriorityID)
	if err != nil {
		return nil, err
	}
	open, err := uc.catalogRepo.GetStatusByName(ctx, catalog.StatusNameOpen)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Errorw("open status missing from catalog", "error", err)
			return nil, errors.NewConfigurationError("status \"Open\" is not configured")
		}
		return nil, err
	}

	now := uc.now()
	var created *ticket.Ticket

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
			t, err := ticket.NewTicket(cmd.Actor.UserID, cmd.Title, cmd.Description, category, priority, open, now)
			if err != nil {
				return err
			}

			number := uc.numbers.Generate(now)
			exists, err := uc.ticketRepo.ExistsByNumber(txCtx, number)
			if err != nil {
				return err
			}
			if exists {
				uc.logger.Warnw("ticket number clash, retrying", "number", number, "attempt", attempt)
				continue
			}
			if err := t.SetNumber(number); err != nil {
				return err
			}

			if err := uc.ticketRepo.Create(txCtx, t); err != nil {
				if errors.IsConflictError(err) {
					uc.logger.Warnw("ticket number taken on insert, retrying", "number", number, "attempt", attempt)
					continue
				}
				return err
			}
			created = t
			return nil
		}
		return errors.NewConflictError("could not allocate a unique ticket number")
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", created.ID(), "number", created.Number())

	return &CreateTicketResult{
		TicketID:         created.ID(),
		Number:           created.Number(),
		StatusName:       open.Name(),
		SLAResponseDue:   created.SLAResponseDue(),
		SLAResolutionDue: created.SLAResolutionDue(),
		CreatedAt:        created.CreatedAt(),
	}, nil
}
