package handler

import (
	"net/http"

	"groceryhub/internal/apierror"
	"groceryhub/internal/dto"
	"groceryhub/internal/middleware"
	"groceryhub/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc           service.AuthService
	users         service.UserService
	allowRegister bool
}

func NewAuthHandler(svc service.AuthService, users service.UserService, allowRegister bool) *AuthHandler {
	return &AuthHandler{svc: svc, users: users, allowRegister: allowRegister}
}

func (h *AuthHandler) Register(c *gin.Context) {
	if !h.allowRegister {
		c.JSON(http.StatusForbidden, apierror.Forbidden("public registration is disabled").Response())
		return
	}
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	resp, err := h.users.Me(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
