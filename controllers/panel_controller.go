package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/pkg/resp"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/services"
)

type PanelController struct{ Svc *services.AccessService }

func NewPanelController(s *services.AccessService) *PanelController {
	return &PanelController{Svc: s}
}

type codeReq struct {
	Code string `json:"code" binding:"required"`
}

type roleReq struct {
	Role string `json:"role" binding:"required"`
	Code string `json:"code" binding:"required"`
}

// POST /panel/unlock
func (h *PanelController) Unlock(c *gin.Context) {
	var req codeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, err := h.Svc.Unlock(req.Code)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token})
}

// POST /panel/role, gated by the area token from Unlock.
func (h *PanelController) GrantRole(c *gin.Context) {
	var req roleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, err := h.Svc.GrantRole(req.Role, req.Code)
	if err != nil {
		if errors.Is(err, services.ErrUnknownRole) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "role": req.Role})
}
