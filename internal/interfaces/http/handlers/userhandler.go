package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/deskhub/deskhub/internal/application/user/dto"
	"github.com/deskhub/deskhub/internal/application/user/usecases"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/logger"
	"github.com/deskhub/deskhub/internal/shared/utils"
)

// UserHandler is the admin user directory plus the staff picker.
type UserHandler struct {
	manageUsersUC usecases.ManageUsersExecutor
	logger        logger.Interface
}

func NewUserHandler(manageUsersUC usecases.ManageUsersExecutor, log logger.Interface) *UserHandler {
	return &UserHandler{
		manageUsersUC: manageUsersUC,
		logger:        log,
	}
}

type CreateUserRequest struct {
	Email      string `json:"email" binding:"required,email,max=255"`
	Password   string `json:"password" binding:"required,min=8,max=72"`
	FullName   string `json:"full_name" binding:"required,min=2,max=100"`
	Role       string `json:"role" binding:"required,user_role"`
	JobTitle   string `json:"job_title" binding:"max=100"`
	Department string `json:"department" binding:"max=100"`
}

type UpdateUserProfileRequest struct {
	FullName   string `json:"full_name" binding:"required,min=2,max=100"`
	JobTitle   string `json:"job_title" binding:"max=100"`
	Department string `json:"department" binding:"max=100"`
}

type ChangeUserRoleRequest struct {
	Role string `json:"role" binding:"required,user_role"`
}

type SetUserActiveRequest struct {
	Active *bool `json:"is_active" binding:"required"`
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	q := utils.ParseListQuery(c)
	principal, _ := authorization.PrincipalFromContext(c)

	result, err := h.manageUsersUC.List(c.Request.Context(), usecases.ListUsersQuery{
		Principal: principal,
		Search:    q.Search,
		Role:      strings.TrimSpace(c.Query("role")),
		SortBy:    q.Sort,
		Page:      q.Page,
		PageSize:  q.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := result.Users
	if items == nil {
		items = []*dto.UserDTO{}
	}
	utils.ListSuccessResponse(c, items, result.TotalCount, q.Page, q.PageSize)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.manageUsersUC.Create(c.Request.Context(), usecases.CreateUserCommand{
		Principal:  principal,
		Email:      req.Email,
		Password:   req.Password,
		FullName:   req.FullName,
		Role:       req.Role,
		JobTitle:   req.JobTitle,
		Department: req.Department,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// UpdateUserProfile handles PUT /users/:id
func (h *UserHandler) UpdateUserProfile(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.manageUsersUC.UpdateProfile(c.Request.Context(), usecases.UpdateUserProfileCommand{
		Principal:  principal,
		UserID:     userID,
		FullName:   req.FullName,
		JobTitle:   req.JobTitle,
		Department: req.Department,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// ChangeUserRole handles PATCH /users/:id/role
func (h *UserHandler) ChangeUserRole(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	h.logger.Infow("change user role request", "admin_id", principal.UserID, "user_id", userID, "role", req.Role)

	result, err := h.manageUsersUC.ChangeRole(c.Request.Context(), usecases.ChangeUserRoleCommand{
		Principal: principal,
		UserID:    userID,
		Role:      req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User role updated", result)
}

// SetUserActive handles PATCH /users/:id/active
func (h *UserHandler) SetUserActive(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.manageUsersUC.SetActive(c.Request.Context(), usecases.SetUserActiveCommand{
		Principal: principal,
		UserID:    userID,
		Active:    *req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	msg := "User deactivated"
	if *req.Active {
		msg = "User activated"
	}
	utils.SuccessResponse(c, http.StatusOK, msg, result)
}

// ListStaff handles GET /users/staff
func (h *UserHandler) ListStaff(c *gin.Context) {
	principal, _ := authorization.PrincipalFromContext(c)
	result, err := h.manageUsersUC.ListStaff(c.Request.Context(), principal)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		result = []*dto.StaffDTO{}
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
