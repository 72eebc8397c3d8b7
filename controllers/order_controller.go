package controllers

import (
	"errors"
	"strconv"

	"github.com/GishenCBoraluwa/fisheries-management/pkg/resp"
	"github.com/GishenCBoraluwa/fisheries-management/services"
	"github.com/GishenCBoraluwa/fisheries-management/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Service.Create(uid, &req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			resp.ValidationFailed(c, verr.Violations)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /profile/orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := oc.Service.ListForUser(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id (owner of the order; admins see any order)
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var (
		detail *services.OrderDetail
		err    error
	)
	if utils.CurrentRole(c) == "admin" {
		detail, err = oc.Service.Detail(uint(id))
	} else {
		detail, err = oc.Service.DetailForUser(uid, uint(id))
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}

// PATCH /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := oc.Service.Cancel(uid, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"status": "cancelled"})
}

// ===== Admin =====

// GET /admin/orders?status=&page=&limit=
func (oc *OrderController) AdminList(c *gin.Context) {
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := oc.Service.Repo.ListOrders(status, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending scheduled in_progress delivered completed cancelled"`
	Note   string `json:"note"`
}

// PATCH /admin/orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.Service.UpdateStatus(uint(id), req.Status, req.Note); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}
