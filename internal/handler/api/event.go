package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	resdto "eventease-admin/internal/handler/dto/response"
	"eventease-admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventUseCase usecase.EventUseCase
}

func NewEventHandler(eventUseCase usecase.EventUseCase) *EventHandler {
	return &EventHandler{eventUseCase: eventUseCase}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	filter := usecase.EventFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	events, err := h.eventUseCase.ListEvents(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromEvents(events))
}

// Calendar defaults to the current month when year/month are absent.
func (h *EventHandler) Calendar(c *gin.Context) {
	now := time.Now()
	year, err := queryInt(c, "year", now.Year())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := queryInt(c, "month", int(now.Month()))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	grid, err := h.eventUseCase.Calendar(c.Request.Context(), year, month)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidMonth):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, grid)
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
