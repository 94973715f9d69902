package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const invalidCredentials = "invalid username or password"

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, username string, role authorization.UserRole) (string, int64, error)
}

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	User        *user.User
	AccessToken string
	ExpiresIn   int64
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokens         TokenIssuer
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// Authenticate checks credentials. Unknown users and wrong passwords produce
// the same Unauthorized error.
func (uc *LoginUseCase) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.NewUnauthorizedError(invalidCredentials)
	}

	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError(invalidCredentials)
		}
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, err
	}

	if !uc.passwordHasher.Verify(password, existing.PasswordHash()) {
		return nil, errors.NewUnauthorizedError(invalidCredentials)
	}
	return existing, nil
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	uc.logger.Infow("executing login use case", "username", cmd.Username)

	authenticated, err := uc.Authenticate(ctx, cmd.Username, cmd.Password)
	if err != nil {
		if errors.IsUnauthorizedError(err) {
			uc.logger.Warnw("login rejected", "username", cmd.Username)
		}
		return nil, err
	}

	token, expiresIn, err := uc.tokens.Generate(authenticated.ID(), authenticated.Username(), authenticated.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", authenticated.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	uc.logger.Infow("user logged in successfully", "user_id", authenticated.ID(), "role", authenticated.Role())

	return &LoginResult{
		User:        authenticated,
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
