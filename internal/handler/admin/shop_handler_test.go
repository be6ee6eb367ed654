package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dumeirei/biz-directory-backend/internal/common/jwt"
	"github.com/dumeirei/biz-directory-backend/internal/middleware"
	"github.com/dumeirei/biz-directory-backend/internal/models"
	"github.com/dumeirei/biz-directory-backend/internal/repository"
	"github.com/dumeirei/biz-directory-backend/internal/service/shop"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupShopHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB, *jwt.Manager) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Shop{}))

	manager := jwt.NewManager(&jwt.Config{
		Secret:            "shop-handler-test-secret",
		AccessExpireTime:  time.Minute,
		RefreshExpireTime: time.Hour,
		Issuer:            "biz-directory",
	})

	h := NewShopHandler(shop.NewShopService(repository.NewShopRepository(db)))

	r := gin.New()
	group := r.Group("/api/admin")
	group.Use(middleware.AdminAuth(manager))
	h.RegisterRoutes(group)

	return r, db, manager
}

func adminBearer(t *testing.T, manager *jwt.Manager, adminID int64, role string) string {
	t.Helper()
	pair, err := manager.GenerateTokenPair(adminID, jwt.UserTypeAdmin, role)
	require.NoError(t, err)
	return "Bearer " + pair.AccessToken
}

func seedShop(t *testing.T, db *gorm.DB, name string) *models.Shop {
	t.Helper()
	s := &models.Shop{Name: name, PlanType: models.PlanBasic, Status: models.ShopStatusActive}
	require.NoError(t, db.Create(s).Error)
	return s
}

func TestShopDelete_RequiresSuperAdmin(t *testing.T) {
	r, db, manager := setupShopHandlerTest(t)
	target := seedShop(t, db, "Patna Grocery")

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/admin/shops/%d", target.ID), nil)
	req.Header.Set("Authorization", adminBearer(t, manager, 2, models.AdminRoleAdmin))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Shop{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "普通管理员不能删除商铺")
}

func TestShopDelete_SuperAdminAllowed(t *testing.T) {
	r, db, manager := setupShopHandlerTest(t)
	target := seedShop(t, db, "Agra Sweets")

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/admin/shops/%d", target.ID), nil)
	req.Header.Set("Authorization", adminBearer(t, manager, 1, models.AdminRoleSuper))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Code)

	var count int64
	require.NoError(t, db.Model(&models.Shop{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestShopUpdate_AdminStillAllowed(t *testing.T) {
	r, db, manager := setupShopHandlerTest(t)
	target := seedShop(t, db, "Delhi Books")

	payload := strings.NewReader(`{"name":"Delhi Books & Stationery"}`)
	req := httptest.NewRequest("PUT", fmt.Sprintf("/api/admin/shops/%d", target.ID), payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", adminBearer(t, manager, 2, models.AdminRoleAdmin))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// 更新不在超级管理员门槛内，普通管理员可以操作
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Shop
	require.NoError(t, db.First(&updated, target.ID).Error)
	assert.Equal(t, "Delhi Books & Stationery", updated.Name)
}
