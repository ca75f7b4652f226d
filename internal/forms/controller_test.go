package forms

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-stock-dashboard/internal/adapter"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/mock"
	"github.com/MKhiriev/go-stock-dashboard/internal/validators"
	"github.com/MKhiriev/go-stock-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptrFloat(v float64) *float64 { return &v }

func newTestEOQ(t *testing.T, ctrl *gomock.Controller) (*EOQController, *mock.MockClientOptimizationService) {
	t.Helper()
	svc := mock.NewMockClientOptimizationService(ctrl)
	return NewEOQController(svc, validators.NewOptimizationFormValidator(), logger.Nop()), svc
}

func filledEOQForm() models.EOQForm {
	return models.EOQForm{OrderCost: "75", HoldingCost: "2", FilePath: "demanda.csv"}
}

func TestEOQController_ZeroOrderCostIssuesNoRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _ := newTestEOQ(t, ctrl)
	// сервис не должен вызываться: у мока нет ожиданий

	form := filledEOQForm()
	form.OrderCost = "0"
	c.SetForm(form)

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, validators.ErrInvalidOrderCost)
	assert.Equal(t, Idle, c.State())
	assert.ErrorIs(t, c.Err(), validators.ErrInvalidOrderCost)
	assert.Equal(t, form, c.Form(), "fields are kept after a validation error")
}

func TestEOQController_SuccessClearsFieldsAndRunsHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, svc := newTestEOQ(t, ctrl)
	ctx := context.Background()

	result := models.OptimizationResult{OptimalQuantity: ptrFloat(300), MinimumTotalCost: ptrFloat(600)}
	svc.EXPECT().Optimize(ctx, models.EOQParams{OrderCost: 75, HoldingCost: 2, FilePath: "demanda.csv"}).Return(result, nil)

	var hookCalls int
	c.OnSuccess(func(_ context.Context, r models.OptimizationResult) {
		hookCalls++
		// к моменту вызова хука результат уже зафиксирован
		assert.Equal(t, Succeeded, c.State())
		assert.Equal(t, result, r)
	})

	c.SetForm(filledEOQForm())
	got, err := c.Submit(ctx)
	require.NoError(t, err)

	assert.Equal(t, result, got)
	assert.Equal(t, 1, hookCalls)
	assert.Equal(t, Succeeded, c.State())
	assert.Equal(t, models.EOQForm{}, c.Form())
	assert.NoError(t, c.Err())

	stored, ok := c.Result()
	require.True(t, ok)
	assert.Equal(t, result, stored)

	c.Reset()
	assert.Equal(t, Idle, c.State())
	_, ok = c.Result()
	assert.True(t, ok, "Reset keeps the last result")
}

func TestEOQController_FailureKeepsFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, svc := newTestEOQ(t, ctrl)
	ctx := context.Background()

	svc.EXPECT().Optimize(ctx, gomock.Any()).
		Return(models.OptimizationResult{}, fmt.Errorf("optimize: %w", adapter.ErrBadRequest))

	hookCalled := false
	c.OnSuccess(func(context.Context, models.OptimizationResult) { hookCalled = true })

	c.SetForm(filledEOQForm())
	_, err := c.Submit(ctx)

	assert.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Equal(t, Failed, c.State())
	assert.Equal(t, filledEOQForm(), c.Form())
	assert.False(t, hookCalled)
	_, ok := c.Result()
	assert.False(t, ok)

	c.Reset()
	assert.Equal(t, Idle, c.State())
	assert.NoError(t, c.Err())
}

func TestEOQController_SingleSubmissionInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, svc := newTestEOQ(t, ctrl)
	ctx := context.Background()

	release := make(chan struct{})
	svc.EXPECT().Optimize(gomock.Any(), gomock.Any()).Times(1).DoAndReturn(
		func(context.Context, models.EOQParams) (models.OptimizationResult, error) {
			<-release
			return models.OptimizationResult{OptimalQuantity: ptrFloat(300), MinimumTotalCost: ptrFloat(600)}, nil
		},
	)

	c.SetForm(filledEOQForm())

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(ctx)
		done <- err
	}()

	require.Eventually(t, c.Submitting, time.Second, time.Millisecond)

	_, err := c.Submit(ctx)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	// правки во время отправки игнорируются
	c.Update(func(f *models.EOQForm) { f.OrderCost = "999" })
	assert.Equal(t, "75", c.Form().OrderCost)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, c.Submitting())
}

func TestROPController_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockClientOptimizationService(ctrl)
	c := NewROPController(svc, validators.NewOptimizationFormValidator(), logger.Nop())
	ctx := context.Background()

	svc.EXPECT().CalculateROP(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.ROPParams) (models.OptimizationResult, error) {
			assert.Equal(t, 7, p.LeadTime)
			assert.InDelta(t, 0.999, p.ServiceLevelFraction(), 1e-12)
			return models.OptimizationResult{ReorderPoint: ptrFloat(120)}, nil
		},
	)

	c.Update(func(f *models.ROPForm) {
		f.LeadTime = "7"
		f.ServiceLevel = "99.9"
		f.FilePath = "demanda.csv"
	})

	got, err := c.Submit(ctx)
	require.NoError(t, err)
	assert.True(t, got.HasROP())
	assert.Equal(t, models.ROPForm{}, c.Form())
}

func TestROPController_LeadTimeOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := NewROPController(mock.NewMockClientOptimizationService(ctrl), validators.NewOptimizationFormValidator(), logger.Nop())
	c.SetForm(models.ROPForm{LeadTime: "400", ServiceLevel: "95", FilePath: "d.csv"})

	_, err := c.Submit(context.Background())
	assert.True(t, errors.Is(err, validators.ErrInvalidLeadTime))
	assert.Equal(t, Idle, c.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", State(42).String())
}
