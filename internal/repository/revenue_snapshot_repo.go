package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dumeirei/biz-directory-backend/internal/common/database"
	"github.com/dumeirei/biz-directory-backend/internal/models"
)

// RevenueSnapshotRepository 收入快照仓储
type RevenueSnapshotRepository struct {
	db *gorm.DB
}

// NewRevenueSnapshotRepository 创建收入快照仓储
func NewRevenueSnapshotRepository(db *gorm.DB) *RevenueSnapshotRepository {
	return &RevenueSnapshotRepository{db: db}
}

// Upsert 以 (district, date_bucket) 为键整行覆盖写入
// 并发写同一键时后写者覆盖先写者
func (r *RevenueSnapshotRepository) Upsert(ctx context.Context, snapshot *models.RevenueSnapshot) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "district"}, {Name: "date_bucket"}},
		UpdateAll: true,
	}).Create(snapshot).Error
}

// UpsertBatch 批量覆盖写入
func (r *RevenueSnapshotRepository) UpsertBatch(ctx context.Context, snapshots []*models.RevenueSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "district"}, {Name: "date_bucket"}},
		UpdateAll: true,
	}).CreateInBatches(snapshots, 100).Error
}

// GetByKey 根据键获取快照
func (r *RevenueSnapshotRepository) GetByKey(ctx context.Context, district, dateBucket string) (*models.RevenueSnapshot, error) {
	var snapshot models.RevenueSnapshot
	err := r.db.WithContext(ctx).
		Where("district = ? AND date_bucket = ?", district, dateBucket).
		First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// ListRecent 获取最近更新的快照，按更新时间倒序
func (r *RevenueSnapshotRepository) ListRecent(ctx context.Context, limit int) ([]models.RevenueSnapshot, error) {
	var snapshots []models.RevenueSnapshot
	err := r.db.WithContext(ctx).
		Scopes(database.OrderByUpdatedDesc).
		Limit(limit).
		Find(&snapshots).Error
	return snapshots, err
}

// List 分页获取快照
func (r *RevenueSnapshotRepository) List(ctx context.Context, district string, offset, limit int) ([]models.RevenueSnapshot, int64, error) {
	var snapshots []models.RevenueSnapshot
	var total int64

	query := r.db.WithContext(ctx).Model(&models.RevenueSnapshot{})
	if district != "" {
		query = query.Where("district = ?", district)
	}

	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = query.Scopes(database.OrderByUpdatedDesc).
		Offset(offset).
		Limit(limit).
		Find(&snapshots).Error
	if err != nil {
		return nil, 0, err
	}

	return snapshots, total, nil
}
