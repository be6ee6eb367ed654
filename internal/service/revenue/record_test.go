package revenue

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dumeirei/biz-directory-backend/internal/common/utils"
	"github.com/dumeirei/biz-directory-backend/internal/models"
)

func TestAdaptShop_Unpaid(t *testing.T) {
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	record, err := AdaptShop(&models.Shop{
		ID:        1,
		Name:      "小店",
		PlanType:  models.PlanBasic,
		CreatedAt: created,
	})
	require.NoError(t, err)

	assert.False(t, record.Paid)
	assert.Equal(t, created, record.EffectiveDate)
	assert.Nil(t, record.AgentCommission)
}

func TestAdaptShop_PaidUsesPaymentDate(t *testing.T) {
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	paid := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	expiry := paid.AddDate(0, 0, 300)

	record, err := AdaptShop(&models.Shop{
		ID:                2,
		Name:              "茶餐厅",
		PlanType:          models.PlanPremium,
		LastPaymentDate:   &paid,
		PaymentExpiryDate: &expiry,
		District:          utils.StringPtr("Central"),
		CreatedAt:         created,
	})
	require.NoError(t, err)

	assert.True(t, record.Paid)
	assert.Equal(t, paid, record.EffectiveDate)
	require.NotNil(t, record.PaymentExpiry)
	assert.Equal(t, expiry, *record.PaymentExpiry)
	assert.Equal(t, "Central", record.District)
}

func TestAdaptShop_RejectsNaNAmount(t *testing.T) {
	bad := math.NaN()
	_, err := AdaptShop(&models.Shop{ID: 3, Name: "坏数据", PlanAmount: &bad})
	assert.Error(t, err)
}

func TestAdaptAgentShop_ParsesISODates(t *testing.T) {
	record, err := AdaptAgentShop(&models.AgentShop{
		ID:            10,
		AgentID:       5,
		Name:          "代理商铺",
		PlanType:      models.PlanHero,
		PaymentStatus: models.AgentPaymentPaid,
		PaymentDate:   utils.StringPtr("2026-08-10"),
		PaymentExpiry: utils.StringPtr("2027-08-10T00:00:00Z"),
	})
	require.NoError(t, err)

	assert.True(t, record.Paid)
	assert.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), record.EffectiveDate)
	require.NotNil(t, record.PaymentExpiry)
	assert.Equal(t, time.Date(2027, 8, 10, 0, 0, 0, 0, time.UTC), *record.PaymentExpiry)
}

func TestAdaptAgentShop_PendingIsUnpaid(t *testing.T) {
	record, err := AdaptAgentShop(&models.AgentShop{
		ID:            11,
		Name:          "待支付",
		PaymentStatus: models.AgentPaymentPending,
	})
	require.NoError(t, err)
	assert.False(t, record.Paid)
}

func TestAdaptAgentShop_BadDate(t *testing.T) {
	_, err := AdaptAgentShop(&models.AgentShop{
		ID:            12,
		Name:          "坏日期",
		PaymentStatus: models.AgentPaymentPaid,
		PaymentDate:   utils.StringPtr("10/08/2026"),
	})
	assert.Error(t, err)
}

func TestAdaptAgentShop_CarriesCommission(t *testing.T) {
	commission := 299.9
	record, err := AdaptAgentShop(&models.AgentShop{
		ID:              13,
		Name:            "带佣金",
		PaymentStatus:   models.AgentPaymentPaid,
		AgentCommission: &commission,
	})
	require.NoError(t, err)
	require.NotNil(t, record.AgentCommission)
	assert.Equal(t, 299.9, *record.AgentCommission)
}

func TestAdaptShops_SkipsMalformed(t *testing.T) {
	bad := math.Inf(1)
	records := AdaptShops([]*models.Shop{
		{ID: 1, Name: "正常"},
		{ID: 2, Name: "坏金额", PlanAmount: &bad},
		{ID: 3, Name: "也正常"},
	})

	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, int64(3), records[1].ID)
}

func TestAdaptAgentShops_SkipsMalformed(t *testing.T) {
	records := AdaptAgentShops([]*models.AgentShop{
		{ID: 1, Name: "正常", PaymentStatus: models.AgentPaymentPaid},
		{ID: 2, Name: "坏日期", PaymentStatus: models.AgentPaymentPaid, PaymentDate: utils.StringPtr("someday")},
	})

	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].ID)
}
