package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/biz-directory-backend/internal/common/handler"
	"github.com/dumeirei/biz-directory-backend/internal/common/response"
	"github.com/dumeirei/biz-directory-backend/internal/middleware"
	"github.com/dumeirei/biz-directory-backend/internal/repository"
	"github.com/dumeirei/biz-directory-backend/internal/service/shop"
)

// ShopHandler 商铺管理处理器
type ShopHandler struct {
	shopService *shop.ShopService
}

// NewShopHandler 创建商铺管理处理器
func NewShopHandler(shopService *shop.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// Create 创建商铺
// @Summary 创建商铺
// @Tags 商铺管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body shop.CreateShopRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Shop}
// @Router /admin/shops [post]
func (h *ShopHandler) Create(c *gin.Context) {
	var req shop.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.shopService.Create(c.Request.Context(), &req)
	handler.MustSucceed(c, err, result)
}

// Get 获取商铺详情
// @Summary 获取商铺详情
// @Tags 商铺管理
// @Produce json
// @Security Bearer
// @Param id path int true "商铺ID"
// @Success 200 {object} response.Response{data=models.Shop}
// @Router /admin/shops/{id} [get]
func (h *ShopHandler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "商铺")
	if !ok {
		return
	}

	result, err := h.shopService.GetByID(c.Request.Context(), id)
	handler.MustSucceed(c, err, result)
}

// Update 更新商铺
// @Summary 更新商铺
// @Tags 商铺管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "商铺ID"
// @Param request body shop.UpdateShopRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Shop}
// @Router /admin/shops/{id} [put]
func (h *ShopHandler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "商铺")
	if !ok {
		return
	}

	var req shop.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.shopService.Update(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, result)
}

// Delete 删除商铺
// @Summary 删除商铺
// @Tags 商铺管理
// @Produce json
// @Security Bearer
// @Param id path int true "商铺ID"
// @Success 200 {object} response.Response
// @Router /admin/shops/{id} [delete]
func (h *ShopHandler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c, "商铺")
	if !ok {
		return
	}

	err := h.shopService.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}

// List 获取商铺列表
// @Summary 获取商铺列表
// @Tags 商铺管理
// @Produce json
// @Security Bearer
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param district query string false "地区"
// @Param plan_type query string false "套餐类型"
// @Param paid query bool false "是否付费"
// @Param keyword query string false "名称关键字"
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /admin/shops [get]
func (h *ShopHandler) List(c *gin.Context) {
	p := handler.BindPagination(c)

	filter := &repository.ShopFilter{
		District: c.Query("district"),
		PlanType: c.Query("plan_type"),
		Keyword:  c.Query("keyword"),
	}
	if paidStr := c.Query("paid"); paidStr != "" {
		paid := paidStr == "true" || paidStr == "1"
		filter.Paid = &paid
	}

	shops, total, err := h.shopService.List(c.Request.Context(), filter, p.Page, p.PageSize)
	handler.MustSucceedPage(c, err, shops, total, p.Page, p.PageSize)
}

// UpdatePayment 更新付费状态
// @Summary 更新商铺付费状态
// @Tags 商铺管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "商铺ID"
// @Param request body shop.UpdatePaymentRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Shop}
// @Router /admin/shops/{id}/payment [put]
func (h *ShopHandler) UpdatePayment(c *gin.Context) {
	id, ok := handler.ParseID(c, "商铺")
	if !ok {
		return
	}

	var req shop.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.shopService.UpdatePayment(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, result)
}

// RegisterRoutes 注册路由
func (h *ShopHandler) RegisterRoutes(r *gin.RouterGroup) {
	shops := r.Group("/shops")
	{
		shops.POST("", h.Create)
		shops.GET("", h.List)
		shops.GET("/:id", h.Get)
		shops.PUT("/:id", h.Update)
		// 删除不可恢复，仅超级管理员可操作
		shops.DELETE("/:id", middleware.RequireSuperAdmin(), h.Delete)
		shops.PUT("/:id/payment", h.UpdatePayment)
	}
}
