package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/pkg/resp"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/services"
	"gorm.io/gorm"
)

type RoomController struct{ Svc *services.RoomService }

func NewRoomController(s *services.RoomService) *RoomController {
	return &RoomController{Svc: s}
}

// GET /rooms
func (h *RoomController) List(c *gin.Context) {
	rooms, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rooms})
}

// POST /panel/admin/rooms
func (h *RoomController) Add(c *gin.Context) {
	var req services.AddRoomIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	room, err := h.Svc.Add(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, room)
}

// PATCH /panel/admin/rooms/:id/price
func (h *RoomController) UpdatePrice(c *gin.Context) {
	var req priceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	room, err := h.Svc.UpdatePrice(c.Param("id"), req.Price)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "room not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, room)
}

// PATCH /panel/admin/rooms/:id/image
func (h *RoomController) UpdateImage(c *gin.Context) {
	var req imageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	room, err := h.Svc.UpdateImage(c.Param("id"), req.Image)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "room not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, room)
}

// PATCH /panel/admin/rooms/:id/availability
func (h *RoomController) ToggleAvailability(c *gin.Context) {
	room, err := h.Svc.ToggleAvailability(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "room not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, room)
}

// DELETE /panel/admin/rooms/:id
func (h *RoomController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}
