package language

import (
	"github.com/gin-gonic/gin"
	"github.com/majlis-kantho/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	lang := rg.Group("/lang")
	{
		lang.GET("", h.current)
		lang.GET("/:code", h.table)
		lang.PUT("", authMW, h.set)
	}
}

func (h *Handler) current(c *gin.Context) {
	code := h.svc.Current()
	response.OK(c, gin.H{
		"locale":    code,
		"rtl":       IsRTL(code),
		"supported": h.svc.Supported(),
	})
}

func (h *Handler) table(c *gin.Context) {
	code := c.Param("code")
	response.OK(c, gin.H{
		"locale":       code,
		"rtl":          IsRTL(code),
		"translations": h.svc.Table(code),
	})
}

type setLocaleDTO struct {
	Locale string `json:"locale" binding:"required"`
}

func (h *Handler) set(c *gin.Context) {
	var dto setLocaleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.SetCurrent(dto.Locale); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}
	response.OK(c, gin.H{"locale": dto.Locale, "rtl": IsRTL(dto.Locale)})
}
