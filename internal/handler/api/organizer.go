package api

import (
	"errors"
	"net/http"

	resdto "eventease-admin/internal/handler/dto/response"
	"eventease-admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrganizerHandler struct {
	organizerUseCase usecase.OrganizerUseCase
}

func NewOrganizerHandler(organizerUseCase usecase.OrganizerUseCase) *OrganizerHandler {
	return &OrganizerHandler{organizerUseCase: organizerUseCase}
}

func (h *OrganizerHandler) ListOrganizers(c *gin.Context) {
	filter := usecase.OrganizerFilter{
		Search:   c.Query("search"),
		Verified: c.Query("verified"),
	}

	organizers, err := h.organizerUseCase.ListOrganizers(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrganizers(organizers))
}

func (h *OrganizerHandler) GetOrganizer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organizer ID"})
		return
	}

	organizer, err := h.organizerUseCase.GetOrganizer(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrganizerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Organizer not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrganizer(organizer))
}
