package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, actor authorization.Actor) (*dto.UserDTO, error) {
	uc.logger.Infow("executing get profile use case", "user_id", actor.UserID)

	u, err := uc.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	stats, err := uc.userRepo.GetStats(ctx, []uint{u.ID()})
	if err != nil {
		uc.logger.Errorw("failed to load user stats", "user_id", u.ID(), "error", err)
		return nil, err
	}
	return dto.ToUserDTOWithStats(u, stats[u.ID()]), nil
}

// UpdateProfileCommand leaves the password alone when NewPassword is empty.
type UpdateProfileCommand struct {
	Actor           authorization.Actor
	Email           string
	FullName        string
	Department      string
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// UpdateProfileUseCase validates every field before writing any of them.
type UpdateProfileUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	txMgr          db.Transactor
	logger         logger.Interface
}

func NewUpdateProfileUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update profile use case", "user_id", cmd.Actor.UserID)

	var updated *user.User
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		u, err := uc.userRepo.GetByID(txCtx, cmd.Actor.UserID)
		if err != nil {
			return err
		}

		newHash := ""
		if cmd.NewPassword != "" {
			if cmd.CurrentPassword == "" {
				return errors.NewValidationError("current password is required to change it")
			}
			if !uc.passwordHasher.Verify(cmd.CurrentPassword, u.PasswordHash()) {
				return errors.NewValidationError("current password is incorrect")
			}
			if cmd.NewPassword != cmd.ConfirmPassword {
				return errors.NewValidationError("new passwords do not match")
			}
			if newHash, err = uc.passwordHasher.Hash(cmd.NewPassword); err != nil {
				return errors.NewInternalError("failed to hash password")
			}
		}

		if err := u.UpdateProfile(cmd.Email, cmd.FullName, cmd.Department); err != nil {
			return err
		}
		exists, err := uc.userRepo.ExistsByEmail(txCtx, u.Email(), u.ID())
		if err != nil {
			return err
		}
		if exists {
			return errors.NewConflictError("email already exists", u.Email())
		}
		if newHash != "" {
			if err := u.ChangePasswordHash(newHash); err != nil {
				return err
			}
		}
		if err := uc.userRepo.Update(txCtx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		uc.logger.Warnw("profile update rejected", "user_id", cmd.Actor.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("profile updated successfully", "user_id", cmd.Actor.UserID, "password_changed", cmd.NewPassword != "")
	return dto.ToUserDTO(updated), nil
}
