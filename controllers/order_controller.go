package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/pkg/resp"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/services"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders
func (h *OrderController) Place(c *gin.Context) {
	cid, ok := clientID(c)
	if !ok {
		return
	}

	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Place(cid, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields),
			errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrNoRoom),
			errors.Is(err, services.ErrBadOrderType):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "room not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, orderView(order))
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	cid, ok := clientID(c)
	if !ok {
		return
	}

	orders, err := h.Svc.ListForClient(cid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	views := make([]gin.H, 0, len(orders))
	for i := range orders {
		views = append(views, orderView(&orders[i]))
	}
	resp.OK(c, gin.H{"orders": views})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	order, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, orderView(order))
}

// orderView adds the tracker projection: the step index and the
// progress-bar fill fraction.
func orderView(o *entity.Order) gin.H {
	return gin.H{
		"order":       o,
		"statusLabel": o.Status.Label(),
		"statusIndex": o.Status.Index(),
		"stepCount":   len(entity.StatusSteps()),
		"progress":    o.Status.Progress(),
	}
}
