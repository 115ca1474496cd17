package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/soraho/account-api/internal/application"
	"github.com/soraho/account-api/pkg/response"
	"github.com/soraho/account-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signInRequest struct {
	SignInID string `json:"sign_in_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type signInResponse struct {
	AccessToken string `json:"access_token"`
}

// SignIn handles POST /auth/sign_in. A rejected credential gets a
// deliberately field-free 400: the response never distinguishes an
// unknown identifier from a wrong password.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	result, accessToken := h.Svc.SignIn(c.Request.Context(), req.SignInID, req.Password)
	switch result {
	case application.ResultSuccess:
		response.Success(c, http.StatusOK, signInResponse{AccessToken: accessToken}, "signed in", nil)
	case application.ResultInternalError:
		h.Logger.Error("sign-in hit an internal error")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	default:
		response.Error[any](c, http.StatusBadRequest, "sign in failed", nil)
	}
}
