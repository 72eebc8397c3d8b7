package controllers

import (
	"errors"
	"strconv"

	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"github.com/GishenCBoraluwa/fisheries-management/pkg/resp"
	"github.com/GishenCBoraluwa/fisheries-management/repository"
	"github.com/GishenCBoraluwa/fisheries-management/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BlogController struct {
	Repo *repository.BlogRepository
}

func NewBlogController(repo *repository.BlogRepository) *BlogController {
	return &BlogController{Repo: repo}
}

// GET /blogs?page=&limit=
func (bc *BlogController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := bc.Repo.ListPublished(page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// GET /blogs/:id
func (bc *BlogController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	b, err := bc.Repo.GetPublished(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "blog not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, b)
}

type CreateBlogRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	IsPublished bool   `json:"isPublished"`
}

// POST /admin/blogs
func (bc *BlogController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	b := entity.Blog{
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: req.IsPublished,
		AuthorID:    uid,
	}
	if err := bc.Repo.Create(&b); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, b)
}

type UpdateBlogRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	IsPublished *bool   `json:"isPublished"`
}

// PATCH /admin/blogs/:id
func (bc *BlogController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if _, err := bc.Repo.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "blog not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.IsPublished != nil {
		updates["is_published"] = *req.IsPublished
	}

	if err := bc.Repo.Update(uint(id), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	b, _ := bc.Repo.GetByID(uint(id))
	resp.OK(c, b)
}

// DELETE /admin/blogs/:id
func (bc *BlogController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if _, err := bc.Repo.GetByID(uint(id)); err != nil {
		resp.NotFound(c, "blog not found")
		return
	}
	if err := bc.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
