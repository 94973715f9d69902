package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// UpdateProfileRequest changes the password only when new_password is set.
type UpdateProfileRequest struct {
	Email           string `json:"email" validate:"required,email,max=255"`
	FullName        string `json:"full_name" validate:"required,max=100"`
	Department      string `json:"department" validate:"max=100"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type ProfileHandler struct {
	getProfileUC    GetProfileExecutor
	updateProfileUC UpdateProfileExecutor
	logger          logger.Interface
}

func NewProfileHandler(getProfileUC GetProfileExecutor, updateProfileUC UpdateProfileExecutor, logger logger.Interface) *ProfileHandler {
	return &ProfileHandler{
		getProfileUC:    getProfileUC,
		updateProfileUC: updateProfileUC,
		logger:          logger,
	}
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateProfile handles PUT /profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), userusecases.UpdateProfileCommand{
		Actor:           actor,
		Email:           req.Email,
		FullName:        req.FullName,
		Department:      req.Department,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", result)
}
