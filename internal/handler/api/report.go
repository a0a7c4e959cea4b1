package api

import (
	"fmt"
	"net/http"
	"time"

	"eventease-admin/internal/export"
	reqdto "eventease-admin/internal/handler/dto/request"
	"eventease-admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportUseCase usecase.ReportUseCase
}

func NewReportHandler(reportUseCase usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{reportUseCase: reportUseCase}
}

func (h *ReportHandler) BookingsReport(c *gin.Context) {
	var q reqdto.BookingReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	report, err := h.reportUseCase.BookingsReport(c.Request.Context(), q.ToQuery())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) PerformanceReport(c *gin.Context) {
	var q reqdto.BookingReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	report, err := h.reportUseCase.PerformanceReport(c.Request.Context(), q.ToQuery())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) FinancialReport(c *gin.Context) {
	var q reqdto.BookingReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	report, err := h.reportUseCase.FinancialReport(c.Request.Context(), q.ToQuery())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportBookings streams the filtered booking rows in the requested format.
func (h *ReportHandler) ExportBookings(c *gin.Context) {
	var q reqdto.BookingReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported export format"})
		return
	}

	table, err := h.reportUseCase.ExportBookings(c.Request.Context(), q.ToQuery())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	filename := fmt.Sprintf("bookings-report-%s.%s", time.Now().Format("20060102"), format.Extension())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", format.ContentType())
	c.Status(http.StatusOK)

	if err := export.Write(c.Writer, format, table); err != nil {
		_ = c.Error(err)
	}
}
