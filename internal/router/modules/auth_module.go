package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-auth-engine/internal/interface/http"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", m.Handler.Signup)
	rg.POST("/auth/login", m.Handler.Login)
	rg.POST("/auth/verify-2fa", m.Handler.VerifyTwoFa)
	rg.POST("/auth/logout", m.Handler.Logout)
	rg.POST("/auth/elevate", m.Handler.Elevate)
	rg.POST("/auth/change-password", m.Handler.ChangePassword)
	rg.DELETE("/auth/account", m.Handler.DeleteAccount)

	// Token introspection for downstream services.
	rg.GET("/auth/verify-token", m.Handler.VerifyToken)
	rg.GET("/auth/verify-elevated-token", m.Handler.VerifyElevatedToken)
}
