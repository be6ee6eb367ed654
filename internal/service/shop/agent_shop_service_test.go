package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dumeirei/biz-directory-backend/internal/common/errors"
	"github.com/dumeirei/biz-directory-backend/internal/models"
	"github.com/dumeirei/biz-directory-backend/internal/repository"
)

const testCommissionRate = 0.10

func newTestAgentShopService(t *testing.T) *AgentShopService {
	t.Helper()
	db := setupShopTestDB(t)
	return NewAgentShopService(repository.NewAgentShopRepository(db), testCommissionRate)
}

func strPtr(s string) *string { return &s }

func TestAgentShopService_Create_CommissionFromStoredAmount(t *testing.T) {
	svc := newTestAgentShopService(t)

	amount := 5000.0
	shop, err := svc.Create(context.Background(), &CreateAgentShopRequest{
		AgentID:       7,
		Name:          "代理商铺",
		PlanType:      models.PlanPremium,
		PlanAmount:    &amount,
		PaymentStatus: models.AgentPaymentPaid,
		PaymentDate:   strPtr("2026-08-01"),
	})
	require.NoError(t, err)
	require.NotNil(t, shop.AgentCommission)
	assert.InDelta(t, 500.0, *shop.AgentCommission, 1e-9)
	assert.True(t, shop.IsPaid())
}

func TestAgentShopService_Create_CommissionFromPlanDefault(t *testing.T) {
	svc := newTestAgentShopService(t)

	// 没有存储金额时按套餐默认价格计算佣金
	shop, err := svc.Create(context.Background(), &CreateAgentShopRequest{
		AgentID:  7,
		Name:     "代理商铺",
		PlanType: models.PlanPremium,
	})
	require.NoError(t, err)
	require.NotNil(t, shop.AgentCommission)
	assert.InDelta(t, 299.9, *shop.AgentCommission, 1e-9)
	assert.Equal(t, models.AgentPaymentPending, shop.PaymentStatus)
}

func TestAgentShopService_Create_InvalidInput(t *testing.T) {
	svc := newTestAgentShopService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateAgentShopRequest{
		AgentID: 7, Name: "x", PaymentStatus: "REFUNDED",
	})
	assert.Equal(t, errors.ErrPaymentStatusBad, err)

	_, err = svc.Create(ctx, &CreateAgentShopRequest{
		AgentID: 7, Name: "x", PaymentDate: strPtr("01/08/2026"),
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	assert.Equal(t, errors.ErrDateFormatInvalid.Code, appErr.Code)

	_, err = svc.Create(ctx, &CreateAgentShopRequest{
		AgentID: 7, Name: "x", PlanType: "GOLD",
	})
	assert.Equal(t, errors.ErrPlanTypeInvalid, err)
}

func TestAgentShopService_Create_AcceptsRFC3339Dates(t *testing.T) {
	svc := newTestAgentShopService(t)

	shop, err := svc.Create(context.Background(), &CreateAgentShopRequest{
		AgentID:       7,
		Name:          "代理商铺",
		PaymentStatus: models.AgentPaymentPaid,
		PaymentDate:   strPtr("2026-08-01T10:30:00Z"),
		PaymentExpiry: strPtr("2027-08-01T10:30:00Z"),
	})
	require.NoError(t, err)
	// 原始字符串原样落库
	require.NotNil(t, shop.PaymentDate)
	assert.Equal(t, "2026-08-01T10:30:00Z", *shop.PaymentDate)
}

func TestAgentShopService_UpdatePayment(t *testing.T) {
	svc := newTestAgentShopService(t)
	ctx := context.Background()

	shop, err := svc.Create(ctx, &CreateAgentShopRequest{AgentID: 7, Name: "代理商铺"})
	require.NoError(t, err)
	assert.Equal(t, models.AgentPaymentPending, shop.PaymentStatus)

	updated, err := svc.UpdatePayment(ctx, shop.ID, &UpdateAgentPaymentRequest{
		PaymentStatus: models.AgentPaymentPaid,
		PaymentDate:   strPtr("2026-08-15"),
		PaymentExpiry: strPtr("2027-08-15"),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsPaid())
	require.NotNil(t, updated.PaymentDate)
	assert.Equal(t, "2026-08-15", *updated.PaymentDate)

	_, err = svc.UpdatePayment(ctx, shop.ID, &UpdateAgentPaymentRequest{PaymentStatus: "BOGUS"})
	assert.Equal(t, errors.ErrPaymentStatusBad, err)

	_, err = svc.UpdatePayment(ctx, 999, &UpdateAgentPaymentRequest{PaymentStatus: models.AgentPaymentPaid})
	assert.Equal(t, errors.ErrAgentShopNotFound, err)
}

func TestAgentShopService_UpdateAndDelete(t *testing.T) {
	svc := newTestAgentShopService(t)
	ctx := context.Background()

	shop, err := svc.Create(ctx, &CreateAgentShopRequest{AgentID: 7, Name: "旧名字"})
	require.NoError(t, err)

	newName := "新名字"
	updated, err := svc.Update(ctx, shop.ID, &UpdateAgentShopRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "新名字", updated.Name)

	require.NoError(t, svc.Delete(ctx, shop.ID))
	_, err = svc.GetByID(ctx, shop.ID)
	assert.Equal(t, errors.ErrAgentShopNotFound, err)
}

func TestAgentShopService_List_FilterByAgent(t *testing.T) {
	svc := newTestAgentShopService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateAgentShopRequest{AgentID: 1, Name: "A"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateAgentShopRequest{AgentID: 2, Name: "B"})
	require.NoError(t, err)

	agentID := int64(1)
	shops, total, err := svc.List(ctx, &repository.AgentShopFilter{AgentID: &agentID}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, shops, 1)
	assert.Equal(t, "A", shops[0].Name)
}
