package activitylog

import (
	"context"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"sync"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	ListFunc func(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityLogEntry, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.ActivityFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *activityRepoMock) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityLogEntry, error) {
	if mock.ListFunc == nil {
		panic("activityRepoMock.ListFunc: method is nil but activityRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ActivityFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *activityRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ActivityFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
