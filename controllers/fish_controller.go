package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"github.com/GishenCBoraluwa/fisheries-management/pkg/resp"
	"github.com/GishenCBoraluwa/fisheries-management/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FishController struct {
	Repo           *repository.FishRepository
	PredictionRepo *repository.PredictionRepository
}

func NewFishController(repo *repository.FishRepository, predRepo *repository.PredictionRepository) *FishController {
	return &FishController{Repo: repo, PredictionRepo: predRepo}
}

// ===== Fish types =====

// GET /fish-types (?all=1 includes inactive, admin screens use it)
func (fc *FishController) ListTypes(c *gin.Context) {
	var (
		items []entity.FishType
		err   error
	)
	if c.Query("all") == "1" {
		items, err = fc.Repo.ListAll()
	} else {
		items, err = fc.Repo.ListActive()
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type CreateFishTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"omitempty,oneof=pelagic demersal shellfish"`
}

// POST /admin/fish-types
func (fc *FishController) CreateType(c *gin.Context) {
	var req CreateFishTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ft := entity.FishType{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IsActive:    true,
	}
	if err := fc.Repo.Create(&ft); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, ft)
}

type UpdateFishTypeRequest struct {
	Description *string `json:"description"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"isActive"`
}

// PATCH /admin/fish-types/:id
func (fc *FishController) UpdateType(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if _, err := fc.Repo.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "fish type not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req UpdateFishTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := fc.Repo.Update(uint(id), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	ft, _ := fc.Repo.GetByID(uint(id))
	resp.OK(c, ft)
}

// ===== Market prices =====

// GET /fish-prices?fishTypeId=&from=&to=
func (fc *FishController) ListPrices(c *gin.Context) {
	fishTypeID, _ := strconv.Atoi(c.Query("fishTypeId"))

	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = t
		}
	}

	items, err := fc.Repo.ListPrices(uint(fishTypeID), from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type UpsertPriceRequest struct {
	FishTypeID     uint    `json:"fishTypeId" binding:"required"`
	PriceDate      string  `json:"priceDate" binding:"required"`
	RetailPrice    float64 `json:"retailPrice" binding:"required,gt=0"`
	WholesalePrice float64 `json:"wholesalePrice" binding:"required,gt=0"`
	MarketName     string  `json:"marketName"`
}

// PUT /admin/fish-prices
func (fc *FishController) UpsertPrice(c *gin.Context) {
	var req UpsertPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", req.PriceDate)
	if err != nil {
		resp.BadRequest(c, "priceDate must be formatted as YYYY-MM-DD")
		return
	}
	if _, err := fc.Repo.GetByID(req.FishTypeID); err != nil {
		resp.NotFound(c, "fish type not found")
		return
	}

	p := entity.FishPrice{
		FishTypeID:     req.FishTypeID,
		PriceDate:      date,
		RetailPrice:    req.RetailPrice,
		WholesalePrice: req.WholesalePrice,
		MarketName:     req.MarketName,
	}
	if err := fc.Repo.UpsertPrice(&p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// ===== Predictions =====

// GET /predictions/:fishTypeId
func (fc *FishController) ListPredictions(c *gin.Context) {
	fishTypeID, _ := strconv.Atoi(c.Param("fishTypeId"))

	if _, err := fc.Repo.GetByID(uint(fishTypeID)); err != nil {
		resp.NotFound(c, "fish type not found")
		return
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	items, err := fc.PredictionRepo.ListForFishType(uint(fishTypeID), today)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
