package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soraho/account-api/internal/application"
	"github.com/soraho/account-api/internal/container"
	handlers "github.com/soraho/account-api/internal/interface/http"
	"github.com/soraho/account-api/internal/interface/middleware"
)

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(svc *application.UserService) *UserModule {
	return &UserModule{Handler: handlers.NewUserHandler(svc, container.GetTokenIssuer(), container.GetLogger())}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Public registration, IP-limited.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	rg.POST("/users/register", registerLimiter, m.Handler.Register)

	// Reads require a verified access token.
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetTokenIssuer()))
	{
		auth.GET("/users", m.Handler.Get)
	}
}
