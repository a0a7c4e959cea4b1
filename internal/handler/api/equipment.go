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

type EquipmentHandler struct {
	equipmentUseCase usecase.EquipmentUseCase
}

func NewEquipmentHandler(equipmentUseCase usecase.EquipmentUseCase) *EquipmentHandler {
	return &EquipmentHandler{equipmentUseCase: equipmentUseCase}
}

func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	items, err := h.equipmentUseCase.ListEquipment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipmentList(items))
}

func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	item, err := h.equipmentUseCase.GetEquipment(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipment(item))
}

func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req reqdto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	item, err := h.equipmentUseCase.CreateEquipment(c.Request.Context(), cmd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEquipment(item))
}

func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	var req reqdto.PatchEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	item, err := h.equipmentUseCase.UpdateEquipment(c.Request.Context(), id, cmd)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipment(item))
}

func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	err = h.equipmentUseCase.DeleteEquipment(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
