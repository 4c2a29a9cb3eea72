package user

import (
	"github.com/gin-gonic/gin"
	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the staff management surface. Everything here is
// admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	users := rg.Group("/users", authMW)
	{
		users.GET("", h.list)
		users.GET("/:id", h.get)
		users.POST("", h.create)
		users.PUT("/:id", h.update)
		users.PATCH("/:id", h.update)
		users.DELETE("/:id", h.delete)
	}
}

func (h *Handler) list(c *gin.Context) {
	items := h.svc.List()
	out := make([]models.PublicUser, 0, len(items))
	for _, u := range items {
		out = append(out, u.Public())
	}
	response.OK(c, out)
}

func (h *Handler) get(c *gin.Context) {
	u, ok := h.svc.GetByID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, u.Public())
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !dto.Role.Valid() {
		response.BadRequest(c, "unknown staff role")
		return
	}
	if _, exists := h.svc.ByEmail(dto.Email); exists {
		response.Conflict(c, "a user with this email already exists")
		return
	}
	u, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, u.Public())
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Role != nil && !dto.Role.Valid() {
		response.BadRequest(c, "unknown staff role")
		return
	}
	u, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, u.Public())
}

func (h *Handler) delete(c *gin.Context) {
	if !h.svc.Delete(c.Param("id")) {
		response.BadRequest(c, "the last user cannot be removed")
		return
	}
	response.NoContent(c)
}
