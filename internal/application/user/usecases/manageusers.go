package usecases

import (
	"context"
	"strings"

	"github.com/deskhub/deskhub/internal/application/common"
	"github.com/deskhub/deskhub/internal/application/permission"
	"github.com/deskhub/deskhub/internal/application/user/dto"
	"github.com/deskhub/deskhub/internal/application/user/helpers"
	permvo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/domain/user"
	vo "github.com/deskhub/deskhub/internal/domain/user/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/constants"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type ListUsersQuery struct {
	Principal authorization.Principal
	Search    string
	Role      string
	SortBy    string
	Page      int
	PageSize  int
}

type ListUsersResult struct {
	Users      []*dto.UserDTO `json:"users"`
	TotalCount int64          `json:"total_count"`
}

type CreateUserCommand struct {
	Principal  authorization.Principal
	Email      string
	Password   string
	FullName   string
	Role       string
	JobTitle   string
	Department string
}

type UpdateUserProfileCommand struct {
	Principal  authorization.Principal
	UserID     uint
	FullName   string
	JobTitle   string
	Department string
}

type ChangeUserRoleCommand struct {
	Principal authorization.Principal
	UserID    uint
	Role      string
}

type SetUserActiveCommand struct {
	Principal authorization.Principal
	UserID    uint
	Active    bool
}

type ManageUsersExecutor interface {
	List(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
	Create(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, cmd UpdateUserProfileCommand) (*dto.UserDTO, error)
	ChangeRole(ctx context.Context, cmd ChangeUserRoleCommand) (*dto.UserDTO, error)
	SetActive(ctx context.Context, cmd SetUserActiveCommand) (*dto.UserDTO, error)
	ListStaff(ctx context.Context, principal authorization.Principal) ([]*dto.StaffDTO, error)
}

// ManageUsersUseCase is the admin user directory.
type ManageUsersUseCase struct {
	userRepo    user.Repository
	authHelper  *helpers.AuthHelper
	permissions permission.Checker
	cache       common.CacheInvalidator
	logger      logger.Interface
}

func NewManageUsersUseCase(
	userRepo user.Repository,
	authHelper *helpers.AuthHelper,
	permissions permission.Checker,
	cache common.CacheInvalidator,
	logger logger.Interface,
) *ManageUsersUseCase {
	return &ManageUsersUseCase{
		userRepo:    userRepo,
		authHelper:  authHelper,
		permissions: permissions,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *ManageUsersUseCase) List(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if err := uc.permissions.Require(ctx, query.Principal, permvo.ResourceUser, permvo.ActionManage); err != nil {
		return nil, err
	}

	filter := user.ListFilter{
		Search:   strings.TrimSpace(query.Search),
		SortBy:   query.SortBy,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 || filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.DefaultPageSize
	}
	if query.Role != "" {
		role, err := authorization.ParseUserRole(query.Role)
		if err != nil {
			return nil, err
		}
		filter.Role = &role
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}
	return &ListUsersResult{Users: dto.ToUserDTOs(users), TotalCount: total}, nil
}

func (uc *ManageUsersUseCase) Create(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "actor_id", cmd.Principal.UserID, "role", cmd.Role)

	if err := uc.permissions.Require(ctx, cmd.Principal, permvo.ResourceUser, permvo.ActionManage); err != nil {
		return nil, err
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	role := authorization.RoleEmployee
	if cmd.Role != "" {
		if role, err = authorization.ParseUserRole(cmd.Role); err != nil {
			return nil, err
		}
	}
	if err := uc.authHelper.EnsureEmailAvailable(ctx, email); err != nil {
		return nil, err
	}
	hash, err := uc.authHelper.HashNewPassword(cmd.Password)
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(email, cmd.FullName, role, hash)
	if err != nil {
		return nil, err
	}
	if err := u.UpdateEmployment(cmd.FullName, cmd.JobTitle, cmd.Department); err != nil {
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("An account with this email already exists.")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)

	uc.logger.Infow("user created successfully", "user_id", u.ID(), "role", u.Role())
	return dto.ToUserDTO(u), nil
}

func (uc *ManageUsersUseCase) UpdateProfile(ctx context.Context, cmd UpdateUserProfileCommand) (*dto.UserDTO, error) {
	return uc.mutate(ctx, cmd.Principal, cmd.UserID, func(u *user.User) error {
		return u.UpdateEmployment(cmd.FullName, cmd.JobTitle, cmd.Department)
	})
}

func (uc *ManageUsersUseCase) ChangeRole(ctx context.Context, cmd ChangeUserRoleCommand) (*dto.UserDTO, error) {
	role, err := authorization.ParseUserRole(cmd.Role)
	if err != nil {
		return nil, err
	}
	return uc.mutate(ctx, cmd.Principal, cmd.UserID, func(u *user.User) error {
		return u.ChangeRole(role, cmd.Principal.UserID)
	})
}

func (uc *ManageUsersUseCase) SetActive(ctx context.Context, cmd SetUserActiveCommand) (*dto.UserDTO, error) {
	return uc.mutate(ctx, cmd.Principal, cmd.UserID, func(u *user.User) error {
		return u.SetActive(cmd.Active, cmd.Principal.UserID)
	})
}

// ListStaff returns active assignees for ticket pickers.
func (uc *ManageUsersUseCase) ListStaff(ctx context.Context, principal authorization.Principal) ([]*dto.StaffDTO, error) {
	if err := uc.permissions.Require(ctx, principal, permvo.ResourceUser, permvo.ActionListStaff); err != nil {
		return nil, err
	}
	users, err := uc.userRepo.ListStaff(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list staff", "error", err)
		return nil, errors.NewInternalError("failed to list staff")
	}
	return dto.ToStaffDTOs(users), nil
}

func (uc *ManageUsersUseCase) mutate(ctx context.Context, principal authorization.Principal, userID uint, change func(*user.User) error) (*dto.UserDTO, error) {
	if err := uc.permissions.Require(ctx, principal, permvo.ResourceUser, permvo.ActionManage); err != nil {
		return nil, err
	}

	u, err := uc.authHelper.LoadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := change(u); err != nil {
		return nil, err
	}
	if err := uc.authHelper.SaveUser(ctx, u); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)

	uc.logger.Infow("user updated successfully", "user_id", u.ID(), "actor_id", principal.UserID)
	return dto.ToUserDTO(u), nil
}
