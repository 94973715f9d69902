package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateUserRequest struct {
	Username   string `json:"username" validate:"required,max=50"`
	Email      string `json:"email" validate:"required,email,max=255"`
	FullName   string `json:"full_name" validate:"required,max=100"`
	Password   string `json:"password" validate:"required,max=200"`
	Role       string `json:"role" validate:"required,oneof=admin it_staff user"`
	Department string `json:"department" validate:"max=100"`
}

type UpdateUserRequest struct {
	Username   string `json:"username" validate:"required,max=50"`
	Email      string `json:"email" validate:"required,email,max=255"`
	FullName   string `json:"full_name" validate:"required,max=100"`
	Role       string `json:"role" validate:"required,oneof=admin it_staff user"`
	Department string `json:"department" validate:"max=100"`
}

type UserHandler struct {
	listUsersUC  ListUsersExecutor
	createUserUC CreateUserExecutor
	updateUserUC UpdateUserExecutor
	deleteUserUC DeleteUserExecutor
	listStaffUC  ListStaffExecutor
	logger       logger.Interface
}

func NewUserHandler(
	listUsersUC ListUsersExecutor,
	createUserUC CreateUserExecutor,
	updateUserUC UpdateUserExecutor,
	deleteUserUC DeleteUserExecutor,
	listStaffUC ListStaffExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUsersUC:  listUsersUC,
		createUserUC: createUserUC,
		updateUserUC: updateUserUC,
		deleteUserUC: deleteUserUC,
		listStaffUC:  listStaffUC,
		logger:       logger,
	}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateUserRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), userusecases.CreateUserCommand{
		Actor:      actor,
		Username:   req.Username,
		Email:      req.Email,
		FullName:   req.FullName,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), userusecases.UpdateUserCommand{
		Actor:      actor,
		UserID:     userID,
		Username:   req.Username,
		Email:      req.Email,
		FullName:   req.FullName,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUserUC.Execute(c.Request.Context(), userusecases.DeleteUserCommand{
		Actor:  actor,
		UserID: userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListStaff handles GET /catalog/staff
func (h *UserHandler) ListStaff(c *gin.Context) {
	result, err := h.listStaffUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
