package revenue

import (
	"fmt"
	"math"
	"time"

	"github.com/dumeirei/biz-directory-backend/internal/common/logger"
	"github.com/dumeirei/biz-directory-backend/internal/models"
)

// Record 统一的商铺记录
// 两种来源在此合并，聚合器不再区分来源；
// AgentCommission 仅代理来源的记录才有
type Record struct {
	ID              int64
	ShopName        string
	PlanType        string
	PlanAmount      *float64
	Paid            bool
	PaymentExpiry   *time.Time
	EffectiveDate   time.Time
	District        string
	City            string
	Address         string
	AgentCommission *float64
}

// AdaptShop 转换管理端商铺
// 付费以 last_payment_date 是否存在判定；
// 周期归属取支付时间，无支付时间取创建时间
func AdaptShop(s *models.Shop) (Record, error) {
	if err := checkAmount(s.PlanAmount); err != nil {
		return Record{}, err
	}

	effectiveDate := s.CreatedAt
	if s.LastPaymentDate != nil {
		effectiveDate = *s.LastPaymentDate
	}

	return Record{
		ID:            s.ID,
		ShopName:      s.Name,
		PlanType:      s.PlanType,
		PlanAmount:    s.PlanAmount,
		Paid:          s.IsPaid(),
		PaymentExpiry: s.PaymentExpiryDate,
		EffectiveDate: effectiveDate,
		District:      strValue(s.District),
		City:          strValue(s.City),
		Address:       strValue(s.Address),
	}, nil
}

// AdaptAgentShop 转换代理端商铺
// 代理来源的日期为原始 ISO 字符串，解析失败视为坏记录
func AdaptAgentShop(s *models.AgentShop) (Record, error) {
	if err := checkAmount(s.PlanAmount); err != nil {
		return Record{}, err
	}
	if err := checkAmount(s.AgentCommission); err != nil {
		return Record{}, err
	}

	effectiveDate := s.CreatedAt
	if s.PaymentDate != nil && *s.PaymentDate != "" {
		t, err := parseRecordTime(*s.PaymentDate)
		if err != nil {
			return Record{}, fmt.Errorf("invalid payment_date %q: %w", *s.PaymentDate, err)
		}
		effectiveDate = t
	}

	var expiry *time.Time
	if s.PaymentExpiry != nil && *s.PaymentExpiry != "" {
		t, err := parseRecordTime(*s.PaymentExpiry)
		if err != nil {
			return Record{}, fmt.Errorf("invalid payment_expiry %q: %w", *s.PaymentExpiry, err)
		}
		expiry = &t
	}

	return Record{
		ID:              s.ID,
		ShopName:        s.Name,
		PlanType:        s.PlanType,
		PlanAmount:      s.PlanAmount,
		Paid:            s.IsPaid(),
		PaymentExpiry:   expiry,
		EffectiveDate:   effectiveDate,
		District:        strValue(s.District),
		City:            strValue(s.City),
		Address:         strValue(s.Address),
		AgentCommission: s.AgentCommission,
	}, nil
}

// AdaptShops 批量转换管理端商铺
// 单条坏记录记日志后跳过，不中断整批转换
func AdaptShops(shops []*models.Shop) []Record {
	records := make([]Record, 0, len(shops))
	for _, s := range shops {
		record, err := AdaptShop(s)
		if err != nil {
			logger.Warn("skip malformed shop record",
				logger.Int64("shop_id", s.ID),
				logger.Err(err),
			)
			continue
		}
		records = append(records, record)
	}
	return records
}

// AdaptAgentShops 批量转换代理端商铺
func AdaptAgentShops(shops []*models.AgentShop) []Record {
	records := make([]Record, 0, len(shops))
	for _, s := range shops {
		record, err := AdaptAgentShop(s)
		if err != nil {
			logger.Warn("skip malformed agent shop record",
				logger.Int64("shop_id", s.ID),
				logger.Err(err),
			)
			continue
		}
		records = append(records, record)
	}
	return records
}

// parseRecordTime 解析记录中的时间字符串，兼容 ISO 日期与完整时间戳
func parseRecordTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// checkAmount 校验金额字段
func checkAmount(amount *float64) error {
	if amount == nil {
		return nil
	}
	if math.IsNaN(*amount) || math.IsInf(*amount, 0) {
		return fmt.Errorf("invalid amount %v", *amount)
	}
	return nil
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
