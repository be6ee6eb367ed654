// Package main 是应用程序入口
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dumeirei/biz-directory-backend/internal/common/config"
	"github.com/dumeirei/biz-directory-backend/internal/common/jwt"
	"github.com/dumeirei/biz-directory-backend/internal/common/metrics"
	commonMiddleware "github.com/dumeirei/biz-directory-backend/internal/common/middleware"
	adminHandler "github.com/dumeirei/biz-directory-backend/internal/handler/admin"
	"github.com/dumeirei/biz-directory-backend/internal/middleware"
	"github.com/dumeirei/biz-directory-backend/internal/repository"
	authService "github.com/dumeirei/biz-directory-backend/internal/service/auth"
	contentService "github.com/dumeirei/biz-directory-backend/internal/service/content"
	"github.com/dumeirei/biz-directory-backend/internal/service/revenue"
	shopService "github.com/dumeirei/biz-directory-backend/internal/service/shop"
)

// setupRouter 设置路由，返回报表服务供定时任务复用
func setupRouter(
	r *gin.Engine,
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
) *revenue.ReportService {
	// 创建 JWT 管理器
	jwtManager := jwt.NewManager(&jwt.Config{
		Secret:            cfg.JWT.Secret,
		AccessExpireTime:  cfg.JWT.AccessTokenDuration(),
		RefreshExpireTime: cfg.JWT.RefreshTokenDuration(),
		Issuer:            cfg.JWT.Issuer,
	})

	// 初始化仓储
	adminRepo := repository.NewAdminRepository(db)
	shopRepo := repository.NewShopRepository(db)
	agentShopRepo := repository.NewAgentShopRepository(db)
	snapshotRepo := repository.NewRevenueSnapshotRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	pageRepo := repository.NewPageRepository(db)
	sliderRepo := repository.NewSliderRepository(db)
	operationLogRepo := repository.NewOperationLogRepository(db)

	// 初始化服务
	authSvc := authService.NewAuthService(adminRepo, jwtManager)
	shopSvc := shopService.NewShopService(shopRepo)
	agentShopSvc := shopService.NewAgentShopService(agentShopRepo, cfg.Business.Agent.CommissionRate)
	bannerSvc := contentService.NewBannerService(bannerRepo, cfg.Business.Content.MaxBanners)
	pageSvc := contentService.NewPageService(pageRepo)
	sliderSvc := contentService.NewSliderService(sliderRepo, cfg.Business.Content.MaxSliders)
	reportSvc := revenue.NewReportService(shopRepo, agentShopRepo, snapshotRepo,
		revenue.WithDistrictTarget(cfg.Business.Revenue.DistrictTarget),
		revenue.WithSnapshotLimit(cfg.Business.Revenue.SnapshotLimit),
	)

	// 初始化处理器
	authH := adminHandler.NewAuthHandler(authSvc)
	shopH := adminHandler.NewShopHandler(shopSvc)
	agentShopH := adminHandler.NewAgentShopHandler(agentShopSvc)
	contentH := adminHandler.NewContentHandler(bannerSvc, pageSvc, sliderSvc)
	revenueH := adminHandler.NewRevenueHandler(reportSvc)

	// 全局中间件
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	r.Use(middleware.CORS(nil))
	r.Use(middleware.AccessLog(logger))

	// Prometheus 指标
	if cfg.Metrics.Enabled {
		m := metrics.Init("biz_directory")
		r.Use(m.Middleware())
		r.GET(cfg.Metrics.Path, metrics.Handler())
	}

	// 链路追踪
	if cfg.Tracing.Enabled {
		r.Use(commonMiddleware.Tracing(&commonMiddleware.TracingConfig{
			ServiceName: cfg.Tracing.ServiceName,
			SkipPaths:   []string{"/health", "/ping", "/ready", cfg.Metrics.Path},
		}))
	}

	// 健康检查（不需要认证）
	r.GET("/health", healthHandler)
	r.GET("/ping", pingHandler)
	r.GET("/ready", readyHandler(db, redisClient))

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 管理后台 API
	admin := r.Group("/api/admin")
	{
		// 登录、刷新令牌（公开）
		authH.RegisterRoutes(admin)

		// 需要管理员认证
		protected := admin.Group("")
		protected.Use(middleware.AdminAuth(jwtManager))
		protected.Use(commonMiddleware.NewOperationLogger(operationLogRepo).Log())
		{
			authH.RegisterProtectedRoutes(protected)
			shopH.RegisterRoutes(protected)
			agentShopH.RegisterRoutes(protected)
			contentH.RegisterRoutes(protected)

			// 报表聚合全量扫表，单独限流
			reports := protected.Group("")
			reports.Use(middleware.ReportRateLimit(redisClient))
			revenueH.RegisterRoutes(reports)
		}
	}

	// 404 处理
	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"code":    404,
			"message": "接口不存在",
		})
	})

	return reportSvc
}
