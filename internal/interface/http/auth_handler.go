package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/identity-mongo/internal/application"
	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/pkg/helpers"
	"github.com/oksasatya/identity-mongo/pkg/response"
)

// AuthHandler issues and revokes admin access tokens.
type AuthHandler[K entity.Key] struct {
	Svc     *application.Service[K]
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewAuthHandler[K entity.Key](svc *application.Service[K], logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler[K] {
	return &AuthHandler[K]{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type loginRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler[K]) Login(c *gin.Context) {
	var req loginRequest
	if !bind(c, &req) {
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		h.Logger.WithFields(logrus.Fields{"user_name": req.UserName, "ip": c.GetString("real_ip")}).
			WithError(err).Info("admin login rejected")
		fail(c, err)
		return
	}
	h.Cookies.SetAccess(c, res.AccessToken, res.ExpiresAt)
	response.Success(c, http.StatusOK, res, "login successful", map[string]any{"access_expires_at": res.ExpiresAt})
}

func (h *AuthHandler[K]) Logout(c *gin.Context) {
	h.Svc.Logout(c.Request.Context(), c.GetString("userID"))
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}
