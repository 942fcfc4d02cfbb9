// Package handlers exposes the use-case facade over HTTP. The handlers only
// translate: JSON in, facade call, sentinel-to-status mapping out. No domain
// rule lives here.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-engine/internal/application"
	"github.com/oksasatya/go-auth-engine/internal/domain/autherr"
	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
	"github.com/oksasatya/go-auth-engine/pkg/response"
	"github.com/oksasatya/go-auth-engine/pkg/validation"
)

type AuthHandler struct {
	Service *application.Service
	Logger  *logrus.Logger
}

func NewAuthHandler(service *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Service: service, Logger: logger}
}

// statusFor maps the error taxonomy onto HTTP statuses.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, autherr.ErrValidation):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, autherr.ErrAuthentication):
		return http.StatusUnauthorized, "authentication failed"
	case errors.Is(err, autherr.ErrPermission):
		return http.StatusForbidden, "insufficient scope"
	case errors.Is(err, autherr.ErrNotFound), errors.Is(err, autherr.ErrExpired):
		return http.StatusNotFound, "not found"
	case errors.Is(err, autherr.ErrConflict):
		return http.StatusConflict, "email already registered"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (h *AuthHandler) fail(c *gin.Context, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		h.Logger.WithError(err).Error("request failed")
	}
	resp := response.Error[any](c, status, msg, nil)
	c.JSON(resp.Status, resp)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Email         string `json:"email" binding:"required,email"`
		Password      string `json:"password" binding:"required,strongpwd"`
		RequiresTwoFa bool   `json:"requires_2fa"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	identity, err := h.Service.Signup(c.Request.Context(), req.Email, req.Password, req.RequiresTwoFa)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := response.Success(c, http.StatusCreated, gin.H{"email": identity}, "account created")
	c.JSON(resp.Status, resp)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	h.loginLike(c, func() (application.LoginResult, error) {
		return h.Service.Login(c.Request.Context(), req.Email, req.Password)
	})
}

// Elevate POST /api/auth/elevate
func (h *AuthHandler) Elevate(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	h.loginLike(c, func() (application.LoginResult, error) {
		return h.Service.Elevate(c.Request.Context(), req.Email, req.Password)
	})
}

func (h *AuthHandler) loginLike(c *gin.Context, run func() (application.LoginResult, error)) {
	result, err := run()
	if err != nil {
		h.fail(c, err)
		return
	}
	if result.TwoFaRequired() {
		resp := response.Success(c, http.StatusAccepted, gin.H{
			"two_fa_required": true,
			"attempt_id":      result.AttemptID.String(),
		}, "verification code sent")
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, gin.H{"token": result.Token}, "authenticated")
	c.JSON(resp.Status, resp)
}

// VerifyTwoFa POST /api/auth/verify-2fa
func (h *AuthHandler) VerifyTwoFa(c *gin.Context) {
	var req struct {
		AttemptID string `json:"attempt_id" binding:"required,uuid"`
		Code      string `json:"code" binding:"required,len=6,numeric"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	token, err := h.Service.VerifyTwoFa(c.Request.Context(), entity.TwoFaAttemptID(req.AttemptID), req.Code)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := response.Success(c, http.StatusOK, gin.H{"token": token}, "authenticated")
	c.JSON(resp.Status, resp)
}

// Logout POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		resp := response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
		c.JSON(resp.Status, resp)
		return
	}
	if err := h.Service.Logout(c.Request.Context(), token); err != nil {
		h.fail(c, err)
		return
	}
	resp := response.Success[any](c, http.StatusOK, nil, "logged out")
	c.JSON(resp.Status, resp)
}

// VerifyToken GET /api/auth/verify-token
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	h.verifyLike(c, h.Service.VerifyToken)
}

// VerifyElevatedToken GET /api/auth/verify-elevated-token
func (h *AuthHandler) VerifyElevatedToken(c *gin.Context) {
	h.verifyLike(c, h.Service.VerifyElevatedToken)
}

func (h *AuthHandler) verifyLike(c *gin.Context, run func(ctx context.Context, token string) (*entity.TokenClaims, error)) {
	token := bearerToken(c)
	if token == "" {
		resp := response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
		c.JSON(resp.Status, resp)
		return
	}
	claims, err := run(c.Request.Context(), token)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := response.Success(c, http.StatusOK, gin.H{
		"identity":   claims.Identity,
		"scope":      claims.Scope,
		"expires_at": claims.ExpiresAt,
	}, "token valid")
	c.JSON(resp.Status, resp)
}

// ChangePassword POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		resp := response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
		c.JSON(resp.Status, resp)
		return
	}
	var req struct {
		NewPassword string `json:"new_password" binding:"required,strongpwd"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	if err := h.Service.ChangePassword(c.Request.Context(), token, req.NewPassword); err != nil {
		h.fail(c, err)
		return
	}
	resp := response.Success[any](c, http.StatusOK, nil, "password changed")
	c.JSON(resp.Status, resp)
}

// DeleteAccount DELETE /api/auth/account
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		resp := response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
		c.JSON(resp.Status, resp)
		return
	}
	if err := h.Service.DeleteAccount(c.Request.Context(), token); err != nil {
		h.fail(c, err)
		return
	}
	resp := response.Success[any](c, http.StatusOK, nil, "account deleted")
	c.JSON(resp.Status, resp)
}
