package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authtoken "github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucauth "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/auth"
)

// Path do cookie cobre /refresh e /signout.
const refreshCookiePath = "/api/auth"

type AuthUseCases struct {
	SignUp     *ucauth.SignUp
	SignIn     *ucauth.SignIn
	Refresh    *ucauth.Refresh
	SignOut    *ucauth.SignOut
	GetSession *ucauth.GetSession
}

type AuthHandler struct {
	uc           AuthUseCases
	cookieSecure bool
}

func NewAuthHandler(uc AuthUseCases, cookieSecure bool) *AuthHandler {
	return &AuthHandler{uc: uc, cookieSecure: cookieSecure}
}

// --------- Requests ---------

type SignUpRequest struct {
	OrganizationName string `json:"organization_name" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	Phone            string `json:"phone"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// --------- Handlers ---------

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.uc.SignUp.Execute(c.Request.Context(), ucauth.SignUpInput{
		OrganizationName: req.OrganizationName,
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Phone:            req.Phone,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.setRefreshCookie(c, view.Tokens)
	c.JSON(http.StatusCreated, view)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.uc.SignIn.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.setRefreshCookie(c, view.Tokens)
	httpresp.OK(c, view)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	tokens, err := h.uc.Refresh.Execute(c.Request.Context(), refreshTokenFrom(c))
	if err != nil {
		h.clearRefreshCookie(c)
		httperr.FromError(c, err)
		return
	}

	h.setRefreshCookie(c, tokens)
	httpresp.OK(c, tokens)
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.uc.SignOut.Execute(c.Request.Context(), refreshTokenFrom(c)); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Session(c *gin.Context) {
	view, err := h.uc.GetSession.Execute(c.Request.Context(), middleware.Session(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, view)
}

// --------- Cookie ---------

// refreshTokenFrom prefere o cookie; o corpo JSON atende clientes sem cookie.
func refreshTokenFrom(c *gin.Context) string {
	if v, err := c.Cookie(authtoken.RefreshCookie); err == nil && v != "" {
		return v
	}
	var req RefreshRequest
	_ = c.ShouldBindJSON(&req)
	return req.RefreshToken
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, t *ucauth.Tokens) {
	if t == nil {
		return
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     authtoken.RefreshCookie,
		Value:    t.RefreshToken,
		Path:     refreshCookiePath,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  t.RefreshExpiresAt,
		MaxAge:   int(time.Until(t.RefreshExpiresAt).Seconds()),
	})
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     authtoken.RefreshCookie,
		Value:    "",
		Path:     refreshCookiePath,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
