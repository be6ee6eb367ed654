package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/biz-directory-backend/internal/common/handler"
	"github.com/dumeirei/biz-directory-backend/internal/common/response"
	"github.com/dumeirei/biz-directory-backend/internal/middleware"
	"github.com/dumeirei/biz-directory-backend/internal/repository"
	"github.com/dumeirei/biz-directory-backend/internal/service/shop"
)

// AgentShopHandler 代理商铺管理处理器
type AgentShopHandler struct {
	agentShopService *shop.AgentShopService
}

// NewAgentShopHandler 创建代理商铺管理处理器
func NewAgentShopHandler(agentShopService *shop.AgentShopService) *AgentShopHandler {
	return &AgentShopHandler{agentShopService: agentShopService}
}

// Create 创建代理商铺
// @Summary 创建代理商铺
// @Tags 代理商铺管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body shop.CreateAgentShopRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.AgentShop}
// @Router /admin/agent-shops [post]
func (h *AgentShopHandler) Create(c *gin.Context) {
	var req shop.CreateAgentShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.agentShopService.Create(c.Request.Context(), &req)
	handler.MustSucceed(c, err, result)
}

// Get 获取代理商铺详情
// @Summary 获取代理商铺详情
// @Tags 代理商铺管理
// @Produce json
// @Security Bearer
// @Param id path int true "代理商铺ID"
// @Success 200 {object} response.Response{data=models.AgentShop}
// @Router /admin/agent-shops/{id} [get]
func (h *AgentShopHandler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "代理商铺")
	if !ok {
		return
	}

	result, err := h.agentShopService.GetByID(c.Request.Context(), id)
	handler.MustSucceed(c, err, result)
}

// Update 更新代理商铺
// @Summary 更新代理商铺
// @Tags 代理商铺管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "代理商铺ID"
// @Param request body shop.UpdateAgentShopRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.AgentShop}
// @Router /admin/agent-shops/{id} [put]
func (h *AgentShopHandler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "代理商铺")
	if !ok {
		return
	}

	var req shop.UpdateAgentShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.agentShopService.Update(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, result)
}

// Delete 删除代理商铺
// @Summary 删除代理商铺
// @Tags 代理商铺管理
// @Produce json
// @Security Bearer
// @Param id path int true "代理商铺ID"
// @Success 200 {object} response.Response
// @Router /admin/agent-shops/{id} [delete]
func (h *AgentShopHandler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c, "代理商铺")
	if !ok {
		return
	}

	err := h.agentShopService.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}

// List 获取代理商铺列表
// @Summary 获取代理商铺列表
// @Tags 代理商铺管理
// @Produce json
// @Security Bearer
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param agent_id query int false "代理ID"
// @Param district query string false "地区"
// @Param plan_type query string false "套餐类型"
// @Param payment_status query string false "支付状态"
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /admin/agent-shops [get]
func (h *AgentShopHandler) List(c *gin.Context) {
	p := handler.BindPagination(c)

	agentID, ok := handler.ParseQueryID(c, "agent_id", "代理")
	if !ok {
		return
	}

	filter := &repository.AgentShopFilter{
		AgentID:       agentID,
		District:      c.Query("district"),
		PlanType:      c.Query("plan_type"),
		PaymentStatus: c.Query("payment_status"),
	}

	shops, total, err := h.agentShopService.List(c.Request.Context(), filter, p.Page, p.PageSize)
	handler.MustSucceedPage(c, err, shops, total, p.Page, p.PageSize)
}

// UpdatePayment 更新支付状态
// @Summary 更新代理商铺支付状态
// @Tags 代理商铺管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "代理商铺ID"
// @Param request body shop.UpdateAgentPaymentRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.AgentShop}
// @Router /admin/agent-shops/{id}/payment [put]
func (h *AgentShopHandler) UpdatePayment(c *gin.Context) {
	id, ok := handler.ParseID(c, "代理商铺")
	if !ok {
		return
	}

	var req shop.UpdateAgentPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.agentShopService.UpdatePayment(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, result)
}

// RegisterRoutes 注册路由
func (h *AgentShopHandler) RegisterRoutes(r *gin.RouterGroup) {
	agentShops := r.Group("/agent-shops")
	{
		agentShops.POST("", h.Create)
		agentShops.GET("", h.List)
		agentShops.GET("/:id", h.Get)
		agentShops.PUT("/:id", h.Update)
		// 删除不可恢复，仅超级管理员可操作
		agentShops.DELETE("/:id", middleware.RequireSuperAdmin(), h.Delete)
		agentShops.PUT("/:id/payment", h.UpdatePayment)
	}
}
