package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userdto "helpdesk/internal/application/user/dto"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	ExpiresIn   int64            `json:"expires_in"`
	User        *userdto.UserDTO `json:"user"`
}

type AuthHandler struct {
	loginUC LoginExecutor
	logger  logger.Interface
}

func NewAuthHandler(loginUC LoginExecutor, logger logger.Interface) *AuthHandler {
	return &AuthHandler{loginUC: loginUC, logger: logger}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), userusecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnw("login failed", "username", req.Username, "client_ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   result.ExpiresIn,
		User:        userdto.ToUserDTO(result.User),
	})
}
