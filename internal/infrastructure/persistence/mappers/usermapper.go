package mappers

import (
	"fmt"

	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/infrastructure/persistence/models"
)

// UserMapper converts between User entities and profile rows.
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	u, err := user.ReconstructUser(user.State{
		ID:                   model.ID,
		Email:                model.Email,
		PasswordHash:         model.PasswordHash,
		FullName:             model.FullName,
		Role:                 model.Role,
		IsActive:             model.IsActive,
		JobTitle:             model.JobTitle,
		Department:           model.Department,
		AvatarURL:            model.AvatarURL,
		PhoneNumber:          model.PhoneNumber,
		OfficeLocation:       model.OfficeLocation,
		ReceiveNotifications: model.ReceiveNotifications,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user %d: %w", model.ID, err)
	}
	return u, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	return &models.UserModel{
		ID:                   entity.ID(),
		Email:                entity.Email().String(),
		PasswordHash:         entity.PasswordHash(),
		FullName:             entity.FullName(),
		Role:                 entity.Role().String(),
		IsActive:             entity.IsActive(),
		JobTitle:             entity.JobTitle(),
		Department:           entity.Department(),
		AvatarURL:            entity.AvatarURL(),
		PhoneNumber:          entity.PhoneNumber(),
		OfficeLocation:       entity.OfficeLocation(),
		ReceiveNotifications: entity.ReceiveNotifications(),
		CreatedAt:            entity.CreatedAt(),
		UpdatedAt:            entity.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToEntities(rows []models.UserModel) ([]*user.User, error) {
	out := make([]*user.User, 0, len(rows))
	for i := range rows {
		u, err := m.ToEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}
