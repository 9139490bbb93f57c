package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Nagesh2809/cafe-management/pkg/resp"
	"github.com/Nagesh2809/cafe-management/services"
	"github.com/Nagesh2809/cafe-management/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders
func (o *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user := utils.CurrentUser(c)
	order, err := o.Orders.Place(user, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			resp.BadRequest(c, "admins cannot place orders")
		case errors.Is(err, services.ErrInvalidInput):
			resp.BadRequest(c, "invalid menu item id")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, order)
}

// GET /orders/me
func (o *OrderController) ListForMe(c *gin.Context) {
	user := utils.CurrentUser(c)
	orders, err := o.Orders.ListForUser(user.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}
