package api

import (
	"errors"
	"net/http"

	reqdto "eventease-admin/internal/handler/dto/request"
	resdto "eventease-admin/internal/handler/dto/response"
	"eventease-admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventGroundHandler struct {
	groundUseCase usecase.EventGroundUseCase
}

func NewEventGroundHandler(groundUseCase usecase.EventGroundUseCase) *EventGroundHandler {
	return &EventGroundHandler{groundUseCase: groundUseCase}
}

func (h *EventGroundHandler) ListEventGrounds(c *gin.Context) {
	grounds, err := h.groundUseCase.ListEventGrounds(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventGrounds(grounds))
}

func (h *EventGroundHandler) GetEventGround(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ground ID"})
		return
	}

	g, err := h.groundUseCase.GetEventGround(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEventGroundNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event ground not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventGround(g))
}

func (h *EventGroundHandler) CreateEventGround(c *gin.Context) {
	var req reqdto.CreateEventGroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	g, err := h.groundUseCase.CreateEventGround(c.Request.Context(), cmd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEventGround(g))
}

func (h *EventGroundHandler) UpdateEventGround(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ground ID"})
		return
	}

	var req reqdto.PatchEventGroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	g, err := h.groundUseCase.UpdateEventGround(c.Request.Context(), id, cmd)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEventGroundNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event ground not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventGround(g))
}

func (h *EventGroundHandler) DeleteEventGround(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ground ID"})
		return
	}

	err = h.groundUseCase.DeleteEventGround(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEventGroundNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event ground not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
