package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/identity-mongo/internal/application"
	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/pkg/response"
	"github.com/oksasatya/identity-mongo/pkg/validation"
)

// IdentityHandler serves the role and user administration endpoints.
type IdentityHandler[K entity.Key] struct {
	Svc    *application.Service[K]
	Logger *logrus.Logger
}

func NewIdentityHandler[K entity.Key](svc *application.Service[K], logger *logrus.Logger) *IdentityHandler[K] {
	return &IdentityHandler[K]{Svc: svc, Logger: logger}
}

type roleRequest struct {
	Name string `json:"name" binding:"required,max=256"`
}

type claimRequest struct {
	Type      string `json:"type" binding:"token"`
	Value     string `json:"value" binding:"required"`
	ValueType string `json:"value_type"`
	Issuer    string `json:"issuer"`
}

func (r claimRequest) claim() entity.Claim {
	return entity.Claim{Type: r.Type, Value: r.Value, ValueType: r.ValueType, Issuer: r.Issuer}
}

type createUserRequest struct {
	UserName    string `json:"user_name" binding:"required,max=256"`
	Email       string `json:"email" binding:"omitempty,email"`
	Password    string `json:"password" binding:"omitempty,pwd"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,phone"`
}

type membershipRequest struct {
	Role string `json:"role" binding:"required"`
}

type loginInfoRequest struct {
	LoginProvider string `json:"login_provider" binding:"token"`
	ProviderKey   string `json:"provider_key" binding:"token"`
	DisplayName   string `json:"display_name"`
}

type tokenRequest struct {
	LoginProvider string `json:"login_provider" binding:"token"`
	Name          string `json:"name" binding:"token"`
	Value         string `json:"value" binding:"required"`
}

type tokenView struct {
	LoginProvider string `json:"login_provider"`
	Name          string `json:"name"`
}

type userView[K entity.Key] struct {
	*entity.User[K]
	TokenNames []tokenView `json:"tokens"`
}

func viewOf[K entity.Key](u *entity.User[K]) userView[K] {
	names := make([]tokenView, 0, len(u.Tokens))
	for _, t := range u.Tokens {
		names = append(names, tokenView{LoginProvider: t.LoginProvider, Name: t.Name})
	}
	return userView[K]{User: u, TokenNames: names}
}

func viewsOf[K entity.Key](users []*entity.User[K]) []userView[K] {
	out := make([]userView[K], 0, len(users))
	for _, u := range users {
		out = append(out, viewOf(u))
	}
	return out
}

// fail maps service errors onto HTTP statuses.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidInput):
		response.Error[any](c, http.StatusBadRequest, "invalid input", err.Error())
	case errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, application.ErrRoleNotFound):
		response.Error[any](c, http.StatusNotFound, "role not found", nil)
	case errors.Is(err, application.ErrConflict):
		response.Error[any](c, http.StatusConflict, "already exists", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, application.ErrLockedOut):
		response.Error[any](c, http.StatusLocked, "account locked out", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "admin role required", nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "identity operation failed", nil)
	}
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return false
	}
	return true
}

// Roles

func (h *IdentityHandler[K]) CreateRole(c *gin.Context) {
	var req roleRequest
	if !bind(c, &req) {
		return
	}
	role, err := h.Svc.CreateRole(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, role, "role created", nil)
}

func (h *IdentityHandler[K]) GetRole(c *gin.Context) {
	role, err := h.Svc.GetRole(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, role, "role", nil)
}

func (h *IdentityHandler[K]) RenameRole(c *gin.Context) {
	var req roleRequest
	if !bind(c, &req) {
		return
	}
	role, err := h.Svc.RenameRole(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, role, "role renamed", nil)
}

func (h *IdentityHandler[K]) DeleteRole(c *gin.Context) {
	if err := h.Svc.DeleteRole(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "role deleted", nil)
}

func (h *IdentityHandler[K]) AddRoleClaim(c *gin.Context) {
	var req claimRequest
	if !bind(c, &req) {
		return
	}
	role, err := h.Svc.AddRoleClaim(c.Request.Context(), c.Param("id"), req.claim())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, role, "claim added", nil)
}

func (h *IdentityHandler[K]) RemoveRoleClaim(c *gin.Context) {
	var req claimRequest
	if !bind(c, &req) {
		return
	}
	role, err := h.Svc.RemoveRoleClaim(c.Request.Context(), c.Param("id"), req.claim())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, role, "claim removed", nil)
}

func (h *IdentityHandler[K]) RoleUsers(c *gin.Context) {
	users, err := h.Svc.RoleUsers(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, viewsOf(users), "users in role", map[string]any{"count": len(users)})
}

// Users

func (h *IdentityHandler[K]) CreateUser(c *gin.Context) {
	var req createUserRequest
	if !bind(c, &req) {
		return
	}
	u, err := h.Svc.CreateUser(c.Request.Context(), application.CreateUserInput{
		UserName:    req.UserName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, viewOf(u), "user created", nil)
}

func (h *IdentityHandler[K]) GetUser(c *gin.Context) {
	u, err := h.Svc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, viewOf(u), "user", nil)
}

func (h *IdentityHandler[K]) DeleteUser(c *gin.Context) {
	if err := h.Svc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "user deleted", nil)
}

// UsersForClaim lists users by ?claim_type=&claim_value=.
func (h *IdentityHandler[K]) UsersForClaim(c *gin.Context) {
	claim := entity.Claim{Type: c.Query("claim_type"), Value: c.Query("claim_value")}
	users, err := h.Svc.UsersForClaim(c.Request.Context(), claim)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, viewsOf(users), "users for claim", map[string]any{"count": len(users)})
}

func (h *IdentityHandler[K]) AddToRole(c *gin.Context) {
	var req membershipRequest
	if !bind(c, &req) {
		return
	}
	u, err := h.Svc.AddUserToRole(c.Request.Context(), c.Param("id"), req.Role)
	h.userResult(c, u, err, "role added")
}

func (h *IdentityHandler[K]) RemoveFromRole(c *gin.Context) {
	u, err := h.Svc.RemoveUserFromRole(c.Request.Context(), c.Param("id"), c.Param("role"))
	h.userResult(c, u, err, "role removed")
}

func (h *IdentityHandler[K]) AddUserClaim(c *gin.Context) {
	var req claimRequest
	if !bind(c, &req) {
		return
	}
	u, err := h.Svc.AddUserClaim(c.Request.Context(), c.Param("id"), req.claim())
	h.userResult(c, u, err, "claim added")
}

func (h *IdentityHandler[K]) RemoveUserClaim(c *gin.Context) {
	var req claimRequest
	if !bind(c, &req) {
		return
	}
	u, err := h.Svc.RemoveUserClaim(c.Request.Context(), c.Param("id"), req.claim())
	h.userResult(c, u, err, "claim removed")
}

func (h *IdentityHandler[K]) AddLogin(c *gin.Context) {
	var req loginInfoRequest
	if !bind(c, &req) {
		return
	}
	login := entity.LoginInfo{LoginProvider: req.LoginProvider, ProviderKey: req.ProviderKey, DisplayName: req.DisplayName}
	u, err := h.Svc.AddUserLogin(c.Request.Context(), c.Param("id"), login)
	h.userResult(c, u, err, "login added")
}

func (h *IdentityHandler[K]) RemoveLogin(c *gin.Context) {
	u, err := h.Svc.RemoveUserLogin(c.Request.Context(), c.Param("id"), c.Param("provider"), c.Param("key"))
	h.userResult(c, u, err, "login removed")
}

func (h *IdentityHandler[K]) FindByLogin(c *gin.Context) {
	u, err := h.Svc.FindUserByLogin(c.Request.Context(), c.Param("provider"), c.Param("key"))
	h.userResult(c, u, err, "user")
}

func (h *IdentityHandler[K]) SetToken(c *gin.Context) {
	var req tokenRequest
	if !bind(c, &req) {
		return
	}
	u, err := h.Svc.SetUserToken(c.Request.Context(), c.Param("id"), req.LoginProvider, req.Name, req.Value)
	h.userResult(c, u, err, "token stored")
}

func (h *IdentityHandler[K]) RemoveToken(c *gin.Context) {
	u, err := h.Svc.RemoveUserToken(c.Request.Context(), c.Param("id"), c.Param("provider"), c.Param("name"))
	h.userResult(c, u, err, "token removed")
}

func (h *IdentityHandler[K]) RegenerateRecoveryCodes(c *gin.Context) {
	codes, err := h.Svc.RegenerateRecoveryCodes(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	h.Logger.WithField("user_id", c.Param("id")).Info("recovery codes regenerated")
	response.Success(c, http.StatusOK, gin.H{"codes": codes}, "recovery codes regenerated", nil)
}

func (h *IdentityHandler[K]) RecoveryCodesLeft(c *gin.Context) {
	n, err := h.Svc.RecoveryCodesLeft(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"remaining": n}, "recovery codes", nil)
}

func (h *IdentityHandler[K]) userResult(c *gin.Context, u *entity.User[K], err error, message string) {
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, viewOf(u), message, nil)
}
