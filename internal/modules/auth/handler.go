package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/majlis-kantho/core/internal/middleware"
	"github.com/majlis-kantho/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.login)

		auth.GET("/me", authMW, h.me)
		auth.POST("/logout", authMW, h.logout)
		auth.PATCH("/profile", authMW, h.updateProfile)
		auth.POST("/password", authMW, h.changePassword)
	}
}

type loginDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var dto loginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, u, err := h.svc.Login(c.Request.Context(), dto.Email, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.UnauthorizedMsg(c, "invalid credentials")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"token": token, "user": u})
}

func (h *Handler) me(c *gin.Context) {
	u, ok := h.svc.Me(middleware.CurrentUserID(c))
	if !ok {
		response.Unauthorized(c)
		return
	}
	response.OK(c, u)
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), middleware.CurrentSessionID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) updateProfile(c *gin.Context) {
	var dto ProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.UpdateProfile(middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, u)
}

type changePasswordDTO struct {
	Current string `json:"current_password" binding:"required"`
	Next    string `json:"new_password" binding:"required"`
}

func (h *Handler) changePassword(c *gin.Context) {
	var dto changePasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err := h.svc.ChangePassword(middleware.CurrentUserID(c), dto.Current, dto.Next)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		response.UnauthorizedMsg(c, "invalid credentials")
	case errors.Is(err, ErrPasswordPolicy):
		response.UnprocessableEntity(c, err.Error())
	case err != nil:
		response.InternalError(c, err)
	default:
		response.NoContent(c)
	}
}
