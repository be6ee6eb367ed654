package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/biz-directory-backend/internal/common/handler"
	"github.com/dumeirei/biz-directory-backend/internal/common/response"
	"github.com/dumeirei/biz-directory-backend/internal/middleware"
	"github.com/dumeirei/biz-directory-backend/internal/service/content"
)

// ContentHandler 运营内容管理处理器
type ContentHandler struct {
	bannerService *content.BannerService
	pageService   *content.PageService
	sliderService *content.SliderService
}

// NewContentHandler 创建运营内容管理处理器
func NewContentHandler(
	bannerService *content.BannerService,
	pageService *content.PageService,
	sliderService *content.SliderService,
) *ContentHandler {
	return &ContentHandler{
		bannerService: bannerService,
		pageService:   pageService,
		sliderService: sliderService,
	}
}

// ==================== 横幅 ====================

// CreateBanner 创建横幅
// @Summary 创建横幅
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body content.CreateBannerRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Banner}
// @Router /admin/banners [post]
func (h *ContentHandler) CreateBanner(c *gin.Context) {
	var req content.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.bannerService.Create(c.Request.Context(), &req)
	handler.MustSucceed(c, err, result)
}

// ListBanners 获取横幅列表
// @Summary 获取横幅列表
// @Tags 内容管理
// @Produce json
// @Security Bearer
// @Param position query string false "展示位置"
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /admin/banners [get]
func (h *ContentHandler) ListBanners(c *gin.Context) {
	p := handler.BindPagination(c)

	banners, total, err := h.bannerService.List(c.Request.Context(), c.Query("position"), p.Page, p.PageSize)
	handler.MustSucceedPage(c, err, banners, total, p.Page, p.PageSize)
}

// UpdateBanner 更新横幅
// @Summary 更新横幅
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "横幅ID"
// @Param request body content.UpdateBannerRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Banner}
// @Router /admin/banners/{id} [put]
func (h *ContentHandler) UpdateBanner(c *gin.Context) {
	id, ok := handler.ParseID(c, "横幅")
	if !ok {
		return
	}

	var req content.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.bannerService.Update(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, result)
}

// DeleteBanner 删除横幅
// @Summary 删除横幅
// @Tags 内容管理
// @Produce json
// @Security Bearer
// @Param id path int true "横幅ID"
// @Success 200 {object} response.Response
// @Router /admin/banners/{id} [delete]
func (h *ContentHandler) DeleteBanner(c *gin.Context) {
	id, ok := handler.ParseID(c, "横幅")
	if !ok {
		return
	}

	err := h.bannerService.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}

// ==================== 页面 ====================

// CreatePage 创建页面
// @Summary 创建静态页面
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body content.CreatePageRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Page}
// @Router /admin/pages [post]
func (h *ContentHandler) CreatePage(c *gin.Context) {
	var req content.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.pageService.Create(c.Request.Context(), &req)
	handler.MustSucceed(c, err, result)
}

// GetPage 获取页面详情
// @Summary 获取页面详情
// @Tags 内容管理
// @Produce json
// @Security Bearer
// @Param id path int true "页面ID"
// @Success 200 {object} response.Response{data=models.Page}
// @Router /admin/pages/{id} [get]
func (h *ContentHandler) GetPage(c *gin.Context) {
	id, ok := handler.ParseID(c, "页面")
	if !ok {
		return
	}

	result, err := h.pageService.GetByID(c.Request.Context(), id)
	handler.MustSucceed(c, err, result)
}

// ListPages 获取页面列表
// @Summary 获取页面列表
// @Tags 内容管理
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /admin/pages [get]
func (h *ContentHandler) ListPages(c *gin.Context) {
	p := handler.BindPagination(c)

	pages, total, err := h.pageService.List(c.Request.Context(), p.Page, p.PageSize)
	handler.MustSucceedPage(c, err, pages, total, p.Page, p.PageSize)
}

// UpdatePage 更新页面
// @Summary 更新页面
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "页面ID"
// @Param request body content.UpdatePageRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Page}
// @Router /admin/pages/{id} [put]
func (h *ContentHandler) UpdatePage(c *gin.Context) {
	id, ok := handler.ParseID(c, "页面")
	if !ok {
		return
	}

	var req content.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.pageService.Update(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, result)
}

// DeletePage 删除页面
// @Summary 删除页面
// @Tags 内容管理
// @Produce json
// @Security Bearer
// @Param id path int true "页面ID"
// @Success 200 {object} response.Response
// @Router /admin/pages/{id} [delete]
func (h *ContentHandler) DeletePage(c *gin.Context) {
	id, ok := handler.ParseID(c, "页面")
	if !ok {
		return
	}

	err := h.pageService.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}

// ==================== 轮播图 ====================

// CreateSlider 创建轮播图
// @Summary 创建轮播图
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body content.CreateSliderRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.SliderImage}
// @Router /admin/sliders [post]
func (h *ContentHandler) CreateSlider(c *gin.Context) {
	var req content.CreateSliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.sliderService.Create(c.Request.Context(), &req)
	handler.MustSucceed(c, err, result)
}

// ListSliders 获取轮播图列表
// @Summary 获取轮播图列表
// @Tags 内容管理
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /admin/sliders [get]
func (h *ContentHandler) ListSliders(c *gin.Context) {
	p := handler.BindPagination(c)

	sliders, total, err := h.sliderService.List(c.Request.Context(), p.Page, p.PageSize)
	handler.MustSucceedPage(c, err, sliders, total, p.Page, p.PageSize)
}

// UpdateSlider 更新轮播图
// @Summary 更新轮播图
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "轮播图ID"
// @Param request body content.UpdateSliderRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.SliderImage}
// @Router /admin/sliders/{id} [put]
func (h *ContentHandler) UpdateSlider(c *gin.Context) {
	id, ok := handler.ParseID(c, "轮播图")
	if !ok {
		return
	}

	var req content.UpdateSliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.sliderService.Update(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, result)
}

// DeleteSlider 删除轮播图
// @Summary 删除轮播图
// @Tags 内容管理
// @Produce json
// @Security Bearer
// @Param id path int true "轮播图ID"
// @Success 200 {object} response.Response
// @Router /admin/sliders/{id} [delete]
func (h *ContentHandler) DeleteSlider(c *gin.Context) {
	id, ok := handler.ParseID(c, "轮播图")
	if !ok {
		return
	}

	err := h.sliderService.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}

// RegisterRoutes 注册路由
func (h *ContentHandler) RegisterRoutes(r *gin.RouterGroup) {
	banners := r.Group("/banners")
	{
		banners.POST("", h.CreateBanner)
		banners.GET("", h.ListBanners)
		banners.PUT("/:id", h.UpdateBanner)
		banners.DELETE("/:id", middleware.RequireSuperAdmin(), h.DeleteBanner)
	}

	pages := r.Group("/pages")
	{
		pages.POST("", h.CreatePage)
		pages.GET("", h.ListPages)
		pages.GET("/:id", h.GetPage)
		pages.PUT("/:id", h.UpdatePage)
		pages.DELETE("/:id", middleware.RequireSuperAdmin(), h.DeletePage)
	}

	sliders := r.Group("/sliders")
	{
		sliders.POST("", h.CreateSlider)
		sliders.GET("", h.ListSliders)
		sliders.PUT("/:id", h.UpdateSlider)
		sliders.DELETE("/:id", middleware.RequireSuperAdmin(), h.DeleteSlider)
	}
}
