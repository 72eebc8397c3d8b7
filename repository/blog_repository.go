package repository

import (
	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"gorm.io/gorm"
)

type BlogRepository struct {
	DB *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{DB: db}
}

// Published posts only, newest first.
func (r *BlogRepository) ListPublished(page, limit int) ([]entity.Blog, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := r.DB.Model(&entity.Blog{}).Where("is_published = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Blog
	err := r.DB.Where("is_published = ?", true).
		Order("id DESC").Limit(limit).Offset(offset).
		Find(&out).Error
	return out, total, err
}

func (r *BlogRepository) GetPublished(id uint) (*entity.Blog, error) {
	var b entity.Blog
	if err := r.DB.Where("id = ? AND is_published = ?", id, true).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlogRepository) GetByID(id uint) (*entity.Blog, error) {
	var b entity.Blog
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlogRepository) Create(b *entity.Blog) error {
	return r.DB.Create(b).Error
}

func (r *BlogRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Blog{}).Where("id = ?", id).Updates(updates).Error
}

func (r *BlogRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Blog{}, id).Error
}
