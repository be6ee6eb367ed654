package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/biz-directory-backend/internal/common/database"
	"github.com/dumeirei/biz-directory-backend/internal/models"
)

// OperationLogRepository 操作日志仓储
type OperationLogRepository struct {
	db *gorm.DB
}

// NewOperationLogRepository 创建操作日志仓储
func NewOperationLogRepository(db *gorm.DB) *OperationLogRepository {
	return &OperationLogRepository{db: db}
}

// Create 写入操作日志
func (r *OperationLogRepository) Create(ctx context.Context, log *models.OperationLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// List 按条件分页查询操作日志
func (r *OperationLogRepository) List(ctx context.Context, adminID int64, module string, offset, limit int) ([]*models.OperationLog, int64, error) {
	var logs []*models.OperationLog
	var total int64

	query := r.db.WithContext(ctx).Model(&models.OperationLog{})
	if adminID > 0 {
		query = query.Where("admin_id = ?", adminID)
	}
	if module != "" {
		query = query.Where("module = ?", module)
	}

	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = query.Scopes(database.OrderByCreatedDesc).
		Offset(offset).
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
