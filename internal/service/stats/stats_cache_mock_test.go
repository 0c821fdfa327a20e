package stats

import (
	"context"
	"github.com/google/uuid"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"sync"
	"time"
)

var _ statsCache = &statsCacheMock{}

type statsCacheMock struct {
	GetFunc func(ctx context.Context, userID uuid.UUID, rangeKey string) (*domain.DashboardStats, error)
	SetFunc func(ctx context.Context, userID uuid.UUID, rangeKey string, stats *domain.DashboardStats, ttl time.Duration) error

	calls struct {
		Get []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			RangeKey string
		}
		Set []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			RangeKey string
			Stats    *domain.DashboardStats
			Ttl      time.Duration
		}
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *statsCacheMock) Get(ctx context.Context, userID uuid.UUID, rangeKey string) (*domain.DashboardStats, error) {
	if mock.GetFunc == nil {
		panic("statsCacheMock.GetFunc: method is nil but statsCache.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		RangeKey string
	}{Ctx: ctx, UserID: userID, RangeKey: rangeKey}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, rangeKey)
}

func (mock *statsCacheMock) GetCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	RangeKey string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *statsCacheMock) Set(ctx context.Context, userID uuid.UUID, rangeKey string, stats *domain.DashboardStats, ttl time.Duration) error {
	if mock.SetFunc == nil {
		panic("statsCacheMock.SetFunc: method is nil but statsCache.Set was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		RangeKey string
		Stats    *domain.DashboardStats
		Ttl      time.Duration
	}{Ctx: ctx, UserID: userID, RangeKey: rangeKey, Stats: stats, Ttl: ttl}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, userID, rangeKey, stats, ttl)
}

func (mock *statsCacheMock) SetCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	RangeKey string
	Stats    *domain.DashboardStats
	Ttl      time.Duration
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
