// Package errors 定义业务错误码和错误处理
package errors

import (
	"fmt"
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 实现 errors.Unwrap
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的应用错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithMessage 修改错误消息
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: message,
		Err:     e.Err,
	}
}

// WithError 添加原始错误
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// 通用错误码 (1000-1999)
var (
	ErrUnknown          = New(1000, "未知错误")
	ErrInvalidParams    = New(1001, "参数错误")
	ErrNotFound         = New(1002, "资源不存在")
	ErrAlreadyExists    = New(1003, "资源已存在")
	ErrDatabaseError    = New(1004, "数据库错误")
	ErrCacheError       = New(1005, "缓存错误")
	ErrInternalError    = New(1006, "内部错误")
	ErrExternalService  = New(1007, "外部服务错误")
	ErrRateLimitExceed  = New(1008, "请求过于频繁")
	ErrOperationFailed  = New(1009, "操作失败")
	ErrResourceNotFound = New(1010, "资源不存在")
)

// 认证错误码 (2000-2999)
var (
	ErrUnauthorized     = New(2000, "未登录")
	ErrTokenExpired     = New(2001, "登录已过期")
	ErrTokenInvalid     = New(2002, "无效的令牌")
	ErrTokenRefreshFail = New(2003, "刷新令牌失败")
	ErrPermissionDenied = New(2004, "权限不足")
	ErrAccountDisabled  = New(2005, "账号已禁用")
	ErrAccountLocked    = New(2006, "账号已锁定")
	ErrPasswordError    = New(2007, "密码错误")
)

// 管理员错误码 (3000-3999)
var (
	ErrAdminNotFound = New(3000, "管理员不存在")
	ErrAdminExists   = New(3001, "管理员已存在")
)

// 商铺错误码 (4000-4999)
var (
	ErrShopNotFound      = New(4000, "商铺不存在")
	ErrShopExists        = New(4001, "商铺已存在")
	ErrShopDisabled      = New(4002, "商铺已禁用")
	ErrPlanTypeInvalid   = New(4003, "无效的套餐类型")
	ErrPlanAmountInvalid = New(4004, "无效的套餐金额")
	ErrAgentShopNotFound = New(4005, "代理商铺不存在")
	ErrPaymentStatusBad  = New(4006, "无效的支付状态")
	ErrDateFormatInvalid = New(4007, "无效的日期格式")
)

// 内容错误码 (5000-5999)
var (
	ErrBannerNotFound = New(5000, "横幅不存在")
	ErrPageNotFound   = New(5001, "页面不存在")
	ErrPageSlugExists = New(5002, "页面标识已存在")
	ErrSliderNotFound = New(5003, "轮播图不存在")
	ErrPositionBad    = New(5004, "无效的展示位置")
)

// 报表错误码 (6000-6999)
var (
	ErrReportFailed     = New(6000, "报表生成失败")
	ErrSnapshotNotFound = New(6001, "快照不存在")
	ErrSnapshotPersist  = New(6002, "快照写入失败")
	ErrPeriodInvalid    = New(6003, "无效的统计周期")
	ErrDistrictNotFound = New(6004, "地区不存在")
)

// IsAppError 判断是否为应用错误
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError 获取应用错误
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return ErrUnknown.WithError(err)
}
