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

type VenueRequestHandler struct {
	requestUseCase usecase.VenueRequestUseCase
}

func NewVenueRequestHandler(requestUseCase usecase.VenueRequestUseCase) *VenueRequestHandler {
	return &VenueRequestHandler{requestUseCase: requestUseCase}
}

// ListRequests returns pending requests by default; ?includeResponded=true
// widens to the full history.
func (h *VenueRequestHandler) ListRequests(c *gin.Context) {
	includeResponded := c.Query("includeResponded") == "true"

	requests, err := h.requestUseCase.ListRequests(c.Request.Context(), includeResponded)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueRequests(requests))
}

func (h *VenueRequestHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	err = h.requestUseCase.MarkRequestRead(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVenueRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue request not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *VenueRequestHandler) ListQuotations(c *gin.Context) {
	quotations, err := h.requestUseCase.ListQuotations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuotations(quotations))
}

func (h *VenueRequestHandler) IssueQuotation(c *gin.Context) {
	var req reqdto.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	quotation, err := h.requestUseCase.IssueQuotation(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidQuotation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Quotation amounts must be positive"})
		case errors.Is(err, usecase.ErrAlreadyQuoted):
			c.JSON(http.StatusConflict, gin.H{"error": "Request already has a quotation"})
		case errors.Is(err, usecase.ErrVenueRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue request not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromQuotation(quotation))
}

// AcceptQuotation records an organizer acceptance and returns the resulting
// tentative booking.
func (h *VenueRequestHandler) AcceptQuotation(c *gin.Context) {
	var req reqdto.AcceptQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	booking, err := h.requestUseCase.AcceptQuotation(c.Request.Context(), req.QuotationID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrQuotationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
		case errors.Is(err, usecase.ErrAlreadyAccepted):
			c.JSON(http.StatusConflict, gin.H{"error": "Quotation already accepted"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(booking))
}
