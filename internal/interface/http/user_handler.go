package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/soraho/account-api/internal/application"
	"github.com/soraho/account-api/internal/infrastructure/token"
	"github.com/soraho/account-api/pkg/response"
	"github.com/soraho/account-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Tokens *token.Issuer
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, tokens *token.Issuer, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Tokens: tokens, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	SignInID string `json:"sign_in_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerValidationResponse struct {
	UserNameOK    bool `json:"user_name_ok"`
	SignInIDOK    bool `json:"sign_in_id_ok"`
	RawPasswordOK bool `json:"raw_password_ok"`
}

// Register handles POST /users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	result, fields := h.Svc.Register(c.Request.Context(), req.Name, req.SignInID, req.Password)
	switch result {
	case application.ResultSuccess:
		response.Success[any](c, http.StatusOK, nil, "user registered", nil)
	case application.ResultInternalError:
		h.Logger.Error("user registration hit an internal error")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	default:
		response.Error[any](c, http.StatusBadRequest, "validation failed", registerValidationResponse{
			UserNameOK:    fields.UserNameOK,
			SignInIDOK:    fields.SignInIDOK,
			RawPasswordOK: fields.RawPasswordOK,
		})
	}
}

// Get handles GET /users. The subject is read straight from the bearer
// token; the auth middleware has already verified its signature and
// claims, so only the subject is extracted here.
func (h *UserHandler) Get(c *gin.Context) {
	raw, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found || raw == "" {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	userID, err := h.Tokens.ParseUserID(raw)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	result, user := h.Svc.GetUser(c.Request.Context(), userID)
	if result != application.ResultSuccess {
		h.Logger.Error("user lookup hit an internal error")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"name": user.Name.String()}, "user found", nil)
}
