package mappers

import (
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Email:        u.Email(),
		FullName:     u.FullName(),
		Role:         u.Role().String(),
		Department:   u.Department(),
		CreatedAt:    u.CreatedAt(),
	}
}

func UserToDomain(model *models.UserModel) (*user.User, error) {
	u, err := user.ReconstructUser(model.ID, user.Profile{
		Username:   model.Username,
		Email:      model.Email,
		FullName:   model.FullName,
		Role:       authorization.UserRole(model.Role),
		Department: model.Department,
	}, model.PasswordHash, model.CreatedAt.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to map user ID %d: %w", model.ID, err)
	}
	return u, nil
}
