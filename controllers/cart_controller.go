package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/pkg/resp"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/services"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/utils"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

func clientID(c *gin.Context) (string, bool) {
	id := utils.ClientID(c)
	if id == "" {
		resp.BadRequest(c, "missing X-Client-ID header")
		return "", false
	}
	return id, true
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cid, ok := clientID(c)
	if !ok {
		return
	}

	cart, subtotal, err := h.Svc.Get(cid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	cid, ok := clientID(c)
	if !ok {
		return
	}

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.Add(cid, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": cart.Subtotal()})
}

// PATCH /cart/items/:productId
func (h *CartController) UpdateQty(c *gin.Context) {
	cid, ok := clientID(c)
	if !ok {
		return
	}

	var req struct {
		Qty int `json:"qty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateQty(cid, c.Param("productId"), req.Qty); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"qty": strconv.Itoa(req.Qty)})
}

// DELETE /cart/items/:productId
func (h *CartController) RemoveItem(c *gin.Context) {
	cid, ok := clientID(c)
	if !ok {
		return
	}

	if err := h.Svc.RemoveItem(cid, c.Param("productId")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": c.Param("productId")})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	cid, ok := clientID(c)
	if !ok {
		return
	}

	if err := h.Svc.Clear(cid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

// PUT /cart/room
func (h *CartController) SelectRoom(c *gin.Context) {
	cid, ok := clientID(c)
	if !ok {
		return
	}

	var req struct {
		RoomID string `json:"roomId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	room, err := h.Svc.SelectRoom(cid, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "room not found")
			return
		}
		if errors.Is(err, services.ErrRoomUnavailable) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"room": room})
}

// DELETE /cart/room
func (h *CartController) ClearRoom(c *gin.Context) {
	cid, ok := clientID(c)
	if !ok {
		return
	}

	if err := h.Svc.ClearRoom(cid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
