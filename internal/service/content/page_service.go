package content

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/biz-directory-backend/internal/common/errors"
	"github.com/dumeirei/biz-directory-backend/internal/common/utils"
	"github.com/dumeirei/biz-directory-backend/internal/models"
	"github.com/dumeirei/biz-directory-backend/internal/repository"
)

// PageService 静态页面管理服务
type PageService struct {
	pageRepo *repository.PageRepository
}

// NewPageService 创建页面管理服务
func NewPageService(pageRepo *repository.PageRepository) *PageService {
	return &PageService{pageRepo: pageRepo}
}

// CreatePageRequest 创建页面请求
type CreatePageRequest struct {
	Slug    string `json:"slug"`
	Title   string `json:"title" binding:"required,max=150"`
	Content string `json:"content" binding:"required"`
}

// UpdatePageRequest 更新页面请求
type UpdatePageRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Status  *int8   `json:"status"`
}

// Create 创建页面
// slug 为空时由标题生成，slug 全局唯一
func (s *PageService) Create(ctx context.Context, req *CreatePageRequest) (*models.Page, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}
	if slug == "" {
		return nil, errors.ErrInvalidParams.WithMessage("无法从标题生成页面标识")
	}

	if _, err := s.pageRepo.GetBySlug(ctx, slug); err == nil {
		return nil, errors.ErrPageSlugExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	page := &models.Page{
		Slug:    slug,
		Title:   req.Title,
		Content: req.Content,
		Status:  models.ContentStatusVisible,
	}
	if err := s.pageRepo.Create(ctx, page); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return page, nil
}

// GetByID 根据 ID 获取页面
func (s *PageService) GetByID(ctx context.Context, id int64) (*models.Page, error) {
	page, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPageNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return page, nil
}

// GetBySlug 根据 slug 获取页面
func (s *PageService) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	page, err := s.pageRepo.GetBySlug(ctx, slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPageNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return page, nil
}

// Update 更新页面
// slug 创建后不可修改
func (s *PageService) Update(ctx context.Context, id int64, req *UpdatePageRequest) (*models.Page, error) {
	page, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Content != nil {
		page.Content = *req.Content
	}
	if req.Status != nil {
		page.Status = *req.Status
	}

	if err := s.pageRepo.Update(ctx, page); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return page, nil
}

// Delete 删除页面
func (s *PageService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.pageRepo.Delete(ctx, id); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// List 获取页面列表
func (s *PageService) List(ctx context.Context, page, pageSize int) ([]*models.Page, int64, error) {
	offset := (page - 1) * pageSize
	pages, total, err := s.pageRepo.List(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return pages, total, nil
}
