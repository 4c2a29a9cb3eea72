package poll

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/majlis-kantho/core/internal/pkg/response"
)

// voteGuardTTL is how long the advisory duplicate-vote marker lives.
const voteGuardTTL = 24 * time.Hour

type Handler struct {
	svc *Service
	kvs kv.Store
}

func NewHandler(svc *Service, kvs kv.Store) *Handler {
	return &Handler{svc: svc, kvs: kvs}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	polls := rg.Group("/polls")
	polls.GET("/active", h.active)
	polls.POST("/:id/vote", h.vote)

	authed := polls.Group("", authMW)
	authed.GET("", h.list)
	authed.GET("/archived", h.archived)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.PATCH("/:id/archive", h.archive)
	authed.PATCH("/:id/activate", h.activate)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) active(c *gin.Context) {
	poll := h.svc.ActivePoll()
	if poll == nil {
		response.OK(c, nil)
		return
	}
	response.OK(c, poll)
}

type voteDTO struct {
	OptionIndex *int `json:"option_index" binding:"required"`
}

// vote counts a ballot. The duplicate guard is advisory only and lives here,
// not in the store: one marker per poll per client IP.
func (h *Handler) vote(c *gin.Context) {
	var dto voteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pollID := c.Param("id")
	guardKey := fmt.Sprintf("portal:poll:voted:%s:%s", pollID, c.ClientIP())
	if _, voted, err := h.kvs.Get(c.Request.Context(), guardKey); err == nil && voted {
		response.Conflict(c, "already voted in this poll")
		return
	}

	poll, err := h.svc.Vote(pollID, *dto.OptionIndex)
	if err != nil {
		if errors.Is(err, ErrPollNotFound) {
			response.NotFound(c)
			return
		}
		if errors.Is(err, ErrOptionOutOfRange) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	_, _ = h.kvs.SetNX(c.Request.Context(), guardKey, "1", voteGuardTTL)
	response.OK(c, poll)
}

func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.svc.List())
}

func (h *Handler) archived(c *gin.Context) {
	response.OK(c, h.svc.ArchivedPolls())
}

func (h *Handler) create(c *gin.Context) {
	var dto CreatePollDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, h.svc.Add(&dto))
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdatePollDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	poll, ok := h.svc.Update(c.Param("id"), &dto)
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, poll)
}

func (h *Handler) archive(c *gin.Context) {
	poll, ok := h.svc.Archive(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, poll)
}

func (h *Handler) activate(c *gin.Context) {
	poll, ok := h.svc.Activate(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, poll)
}

func (h *Handler) delete(c *gin.Context) {
	if !h.svc.Delete(c.Param("id")) {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}
