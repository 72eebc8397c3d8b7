package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"github.com/GishenCBoraluwa/fisheries-management/pkg/resp"
	"github.com/GishenCBoraluwa/fisheries-management/repository"
	"github.com/GishenCBoraluwa/fisheries-management/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TruckController struct {
	Repo *repository.TruckRepository
	Hub  *ws.TruckHub
}

func NewTruckController(repo *repository.TruckRepository, hub *ws.TruckHub) *TruckController {
	return &TruckController{Repo: repo, Hub: hub}
}

// GET /trucks
func (tc *TruckController) List(c *gin.Context) {
	items, err := tc.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type CreateTruckRequest struct {
	PlateNumber string  `json:"plateNumber" binding:"required"`
	DriverName  string  `json:"driverName"`
	CapacityKg  float64 `json:"capacityKg" binding:"required,gt=0"`
}

// POST /admin/trucks
func (tc *TruckController) Create(c *gin.Context) {
	var req CreateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	t := entity.Truck{
		PlateNumber: req.PlateNumber,
		DriverName:  req.DriverName,
		CapacityKg:  req.CapacityKg,
		Status:      entity.TruckStatusAvailable,
	}
	if err := tc.Repo.Create(&t); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, t)
}

type UpdateTruckRequest struct {
	DriverName *string  `json:"driverName"`
	CapacityKg *float64 `json:"capacityKg"`
	Status     *string  `json:"status" binding:"omitempty,oneof=available on_route maintenance"`
}

// PATCH /admin/trucks/:id
func (tc *TruckController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if _, err := tc.Repo.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "truck not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req UpdateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.DriverName != nil {
		updates["driver_name"] = *req.DriverName
	}
	if req.CapacityKg != nil {
		updates["capacity_kg"] = *req.CapacityKg
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if err := tc.Repo.Update(uint(id), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	t, _ := tc.Repo.GetByID(uint(id))
	resp.OK(c, t)
}

// DELETE /admin/trucks/:id
func (tc *TruckController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if _, err := tc.Repo.GetByID(uint(id)); err != nil {
		resp.NotFound(c, "truck not found")
		return
	}
	if err := tc.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

type LocationRequest struct {
	Latitude  float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

// PATCH /driver/trucks/:id/location — also pushed to ws subscribers
func (tc *TruckController) UpdateLocation(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	t, err := tc.Repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "truck not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := tc.Repo.UpdateLocation(uint(id), req.Latitude, req.Longitude); err != nil {
		resp.ServerError(c, err)
		return
	}

	tc.Hub.Broadcast(ws.LocationUpdate{
		TruckID:     t.ID,
		PlateNumber: t.PlateNumber,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      t.Status,
		ReportedAt:  time.Now(),
	})
	resp.OK(c, gin.H{"truckId": t.ID, "latitude": req.Latitude, "longitude": req.Longitude})
}
