package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/pkg/resp"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/services"
	"gorm.io/gorm"
)

type CatalogController struct{ Svc *services.CatalogService }

func NewCatalogController(s *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: s}
}

// GET /products?category=
func (h *CatalogController) List(c *gin.Context) {
	items, err := h.Svc.List(c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /categories
func (h *CatalogController) Categories(c *gin.Context) {
	resp.OK(c, gin.H{"categories": h.Svc.Categories()})
}

type priceReq struct {
	Price int64 `json:"price"`
}

type imageReq struct {
	Image string `json:"image" binding:"required"`
}

// POST /panel/admin/products
func (h *CatalogController) Add(c *gin.Context) {
	var req services.AddProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.Add(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, p)
}

// PATCH /panel/admin/products/:id/stock
func (h *CatalogController) ToggleStock(c *gin.Context) {
	p, err := h.Svc.ToggleStock(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// PATCH /panel/admin/products/:id/price
func (h *CatalogController) UpdatePrice(c *gin.Context) {
	var req priceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.UpdatePrice(c.Param("id"), req.Price)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, p)
}

// PATCH /panel/admin/products/:id/image
func (h *CatalogController) UpdateImage(c *gin.Context) {
	var req imageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.UpdateImage(c.Param("id"), req.Image)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, p)
}

// DELETE /panel/admin/products/:id
func (h *CatalogController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}
