package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soraho/account-api/internal/application"
	"github.com/soraho/account-api/internal/container"
	handlers "github.com/soraho/account-api/internal/interface/http"
	"github.com/soraho/account-api/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(svc *application.AuthService) *AuthModule {
	return &AuthModule{Handler: handlers.NewAuthHandler(svc, container.GetLogger())}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential guessing gets a tight IP budget.
	signInLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath())
	rg.POST("/auth/sign_in", signInLimiter, m.Handler.SignIn)
}
