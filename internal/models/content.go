package models

import (
	"time"
)

// ContentStatus 内容状态
const (
	ContentStatusHidden  = 0 // 隐藏
	ContentStatusVisible = 1 // 展示
)

// Banner 横幅广告
type Banner struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"type:varchar(150);not null" json:"title"`
	ImageURL     string    `gorm:"type:varchar(255);not null" json:"image_url"`
	LinkURL      *string   `gorm:"type:varchar(255)" json:"link_url,omitempty"`
	Position     string    `gorm:"type:varchar(20);not null;default:'home'" json:"position"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	Status       int8      `gorm:"type:smallint;not null;default:1" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 表名
func (Banner) TableName() string {
	return "banners"
}

// BannerPosition 横幅位置
const (
	BannerPositionHome   = "home"   // 首页
	BannerPositionTop    = "top"    // 顶部
	BannerPositionBottom = "bottom" // 底部
)

// Page 静态页面
type Page struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Title     string    `gorm:"type:varchar(150);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Status    int8      `gorm:"type:smallint;not null;default:1" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 表名
func (Page) TableName() string {
	return "pages"
}

// SliderImage 轮播图
type SliderImage struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        *string   `gorm:"type:varchar(150)" json:"title,omitempty"`
	ImageURL     string    `gorm:"type:varchar(255);not null" json:"image_url"`
	LinkURL      *string   `gorm:"type:varchar(255)" json:"link_url,omitempty"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	Status       int8      `gorm:"type:smallint;not null;default:1" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 表名
func (SliderImage) TableName() string {
	return "slider_images"
}
