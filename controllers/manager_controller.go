package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/pkg/resp"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/services"
	"gorm.io/gorm"
)

type ManagerController struct {
	Analytics *services.AnalyticsService
	Orders    *services.OrderService
}

func NewManagerController(a *services.AnalyticsService, o *services.OrderService) *ManagerController {
	return &ManagerController{Analytics: a, Orders: o}
}

// GET /panel/manager/sales
func (h *ManagerController) Sales(c *gin.Context) {
	sales, err := h.Analytics.WeeklySales()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"sales": sales})
}

// POST /panel/manager/sales/report. The AI call is the only slow
// operation in the app; it still always yields text.
func (h *ManagerController) GenerateReport(c *gin.Context) {
	report, err := h.Analytics.GenerateReport(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"report": report})
}

// GET /panel/manager/devices
func (h *ManagerController) Devices(c *gin.Context) {
	devices, err := h.Analytics.Devices()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"devices": devices})
}

// DELETE /panel/manager/devices/:id
func (h *ManagerController) RemoveDevice(c *gin.Context) {
	if err := h.Analytics.RemoveDevice(c.Param("id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": c.Param("id")})
}

// PATCH /panel/manager/orders/:id/accept
func (h *ManagerController) AcceptOrder(c *gin.Context) {
	err := h.Orders.Accept(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"id": c.Param("id"), "status": "ACCEPTED"})
}
