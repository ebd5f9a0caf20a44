package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/pkg/resp"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/services"
	"gorm.io/gorm"
)

type CourierController struct{ Svc *services.OrderService }

func NewCourierController(s *services.OrderService) *CourierController {
	return &CourierController{Svc: s}
}

// GET /panel/courier/orders returns the active delivery queue.
func (h *CourierController) Queue(c *gin.Context) {
	orders, err := h.Svc.ListActiveDeliveries()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// PATCH /panel/courier/orders/:id/status
func (h *CourierController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := h.Svc.CourierAdvance(c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrForbiddenTransition),
			errors.Is(err, services.ErrNotDeliveryOrder):
			resp.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"id": c.Param("id"), "status": req.Status})
}
