package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nagesh2809/cafe-management/entity"
	"github.com/Nagesh2809/cafe-management/pkg/resp"
	"github.com/Nagesh2809/cafe-management/services"
)

type AdminController struct {
	Orders  *services.OrderService
	Reports *services.ReportService
}

func NewAdminController(orders *services.OrderService, reports *services.ReportService) *AdminController {
	return &AdminController{Orders: orders, Reports: reports}
}

// GET /admin/stats
func (a *AdminController) Stats(c *gin.Context) {
	stats, err := a.Reports.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /admin/orders
func (a *AdminController) ListOrders(c *gin.Context) {
	orders, err := a.Orders.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

type statusUpdateRequest struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PUT /admin/orders/:id/status
func (a *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := a.Orders.SetStatus(uint(id), req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrInvalidInput):
			resp.BadRequest(c, "unknown order status")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, "status updated")
}
