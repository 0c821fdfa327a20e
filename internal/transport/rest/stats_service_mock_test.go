package rest

import (
	"context"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/stats"
	"sync"
)

var _ statsService = &statsServiceMock{}

type statsServiceMock struct {
	DashboardFunc func(ctx context.Context, input stats.RangeInput) (*domain.DashboardStats, error)

	calls struct {
		Dashboard []struct {
			Ctx   context.Context
			Input stats.RangeInput
		}
	}
	lockDashboard sync.RWMutex
}

func (mock *statsServiceMock) Dashboard(ctx context.Context, input stats.RangeInput) (*domain.DashboardStats, error) {
	if mock.DashboardFunc == nil {
		panic("statsServiceMock.DashboardFunc: method is nil but statsService.Dashboard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input stats.RangeInput
	}{Ctx: ctx, Input: input}
	mock.lockDashboard.Lock()
	mock.calls.Dashboard = append(mock.calls.Dashboard, callInfo)
	mock.lockDashboard.Unlock()
	return mock.DashboardFunc(ctx, input)
}

func (mock *statsServiceMock) DashboardCalls() []struct {
	Ctx   context.Context
	Input stats.RangeInput
} {
	mock.lockDashboard.RLock()
	calls := mock.calls.Dashboard
	mock.lockDashboard.RUnlock()
	return calls
}
