package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/mapper"
)

type ListUsersUseCase struct {
	userRepo user.Repository
	checker  PermissionChecker
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, checker PermissionChecker, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, checker: checker, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, actor authorization.Actor) ([]*dto.UserDTO, error) {
	uc.logger.Infow("executing list users use case", "user_id", actor.UserID)

	if err := uc.checker.Require(actor, permission.ResourceUser, permission.ActionRead); err != nil {
		return nil, err
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}
	ids := mapper.MapSlice(users, func(u *user.User) uint { return u.ID() })
	stats, err := uc.userRepo.GetStats(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load user stats", "error", err)
		return nil, err
	}

	return mapper.MapSlice(users, func(u *user.User) *dto.UserDTO {
		return dto.ToUserDTOWithStats(u, stats[u.ID()])
	}), nil
}

type CreateUserCommand struct {
	Actor      authorization.Actor
	Username   string
	Email      string
	FullName   string
	Password   string
	Role       string
	Department string
}

type CreateUserUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	checker        PermissionChecker
	txMgr          db.Transactor
	logger         logger.Interface
	now            func() time.Time
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	checker PermissionChecker,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		checker:        checker,
		txMgr:          txMgr,
		logger:         logger,
		now:            biztime.NowUTC,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "username", cmd.Username, "role", cmd.Role)

	if err := uc.checker.Require(cmd.Actor, permission.ResourceUser, permission.ActionCreate); err != nil {
		return nil, err
	}

	role, err := authorization.ParseUserRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError("invalid role", cmd.Role)
	}
	if cmd.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}
	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	newUser, err := user.NewUser(user.Profile{
		Username:   cmd.Username,
		Email:      cmd.Email,
		FullName:   cmd.FullName,
		Role:       role,
		Department: cmd.Department,
	}, hash, uc.now())
	if err != nil {
		return nil, err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := ensureUnique(txCtx, uc.userRepo, newUser.Username(), newUser.Email(), 0); err != nil {
			return err
		}
		return uc.userRepo.Create(txCtx, newUser)
	})
	if err != nil {
		uc.logger.Errorw("failed to create user", "username", cmd.Username, "error", err)
		return nil, err
	}

	uc.logger.Infow("user created successfully", "user_id", newUser.ID(), "username", newUser.Username())
	return dto.ToUserDTO(newUser), nil
}

type UpdateUserCommand struct {
	Actor      authorization.Actor
	UserID     uint
	Username   string
	Email      string
	FullName   string
	Role       string
	Department string
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	checker  PermissionChecker
	txMgr    db.Transactor
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, checker PermissionChecker, txMgr db.Transactor, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, checker: checker, txMgr: txMgr, logger: logger}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update user use case", "target_user_id", cmd.UserID, "user_id", cmd.Actor.UserID)

	if err := uc.checker.Require(cmd.Actor, permission.ResourceUser, permission.ActionUpdate); err != nil {
		return nil, err
	}
	role, err := authorization.ParseUserRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError("invalid role", cmd.Role)
	}

	var updated *user.User
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		u, err := uc.userRepo.GetByID(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		if err := u.UpdateByAdmin(user.Profile{
			Username:   cmd.Username,
			Email:      cmd.Email,
			FullName:   cmd.FullName,
			Role:       role,
			Department: cmd.Department,
		}); err != nil {
			return err
		}
		if err := ensureUnique(txCtx, uc.userRepo, u.Username(), u.Email(), u.ID()); err != nil {
			return err
		}
		if err := uc.userRepo.Update(txCtx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update user", "target_user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user updated successfully", "target_user_id", cmd.UserID)
	return dto.ToUserDTO(updated), nil
}

type DeleteUserCommand struct {
	Actor  authorization.Actor
	UserID uint
}

// DeleteUserUseCase refuses while tickets, comments, time entries or
// articles still reference the user.
type DeleteUserUseCase struct {
	userRepo user.Repository
	checker  PermissionChecker
	txMgr    db.Transactor
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, checker PermissionChecker, txMgr db.Transactor, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, checker: checker, txMgr: txMgr, logger: logger}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	uc.logger.Infow("executing delete user use case", "target_user_id", cmd.UserID, "user_id", cmd.Actor.UserID)

	if err := uc.checker.Require(cmd.Actor, permission.ResourceUser, permission.ActionDelete); err != nil {
		return err
	}
	if cmd.UserID == cmd.Actor.UserID {
		return errors.NewValidationError("you cannot delete your own account")
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.userRepo.GetByID(txCtx, cmd.UserID); err != nil {
			return err
		}
		referenced, err := uc.userRepo.HasReferences(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		if referenced {
			return errors.NewConflictError("user is still referenced by other records")
		}
		return uc.userRepo.Delete(txCtx, cmd.UserID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete user", "target_user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("user deleted successfully", "target_user_id", cmd.UserID)
	return nil
}

type ListStaffUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListStaffUseCase(userRepo user.Repository, logger logger.Interface) *ListStaffUseCase {
	return &ListStaffUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListStaffUseCase) Execute(ctx context.Context) ([]dto.StaffDTO, error) {
	uc.logger.Infow("executing list staff use case")

	staff, err := uc.userRepo.ListStaff(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list staff", "error", err)
		return nil, err
	}
	return mapper.MapSlice(staff, dto.ToStaffDTO), nil
}

func ensureUnique(ctx context.Context, repo user.Repository, username, email string, excludeID uint) error {
	taken, err := repo.ExistsByUsername(ctx, username, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return errors.NewConflictError("username already exists", username)
	}
	taken, err = repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return errors.NewConflictError("email already exists", email)
	}
	return nil
}
