package rest

import (
	"context"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"sync"
)

var _ activityService = &activityServiceMock{}

type activityServiceMock struct {
	ListForEntityFunc func(ctx context.Context, entityType domain.EntityType, entityID string, limit int, offset int) ([]domain.ActivityLogEntry, error)
	MineFunc          func(ctx context.Context, limit int, offset int) ([]domain.ActivityLogEntry, error)

	calls struct {
		ListForEntity []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   string
			Limit      int
			Offset     int
		}
		Mine []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockListForEntity sync.RWMutex
	lockMine          sync.RWMutex
}

func (mock *activityServiceMock) ListForEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int, offset int) ([]domain.ActivityLogEntry, error) {
	if mock.ListForEntityFunc == nil {
		panic("activityServiceMock.ListForEntityFunc: method is nil but activityService.ListForEntity was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   string
		Limit      int
		Offset     int
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID, Limit: limit, Offset: offset}
	mock.lockListForEntity.Lock()
	mock.calls.ListForEntity = append(mock.calls.ListForEntity, callInfo)
	mock.lockListForEntity.Unlock()
	return mock.ListForEntityFunc(ctx, entityType, entityID, limit, offset)
}

func (mock *activityServiceMock) ListForEntityCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   string
	Limit      int
	Offset     int
} {
	mock.lockListForEntity.RLock()
	calls := mock.calls.ListForEntity
	mock.lockListForEntity.RUnlock()
	return calls
}

func (mock *activityServiceMock) Mine(ctx context.Context, limit int, offset int) ([]domain.ActivityLogEntry, error) {
	if mock.MineFunc == nil {
		panic("activityServiceMock.MineFunc: method is nil but activityService.Mine was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockMine.Lock()
	mock.calls.Mine = append(mock.calls.Mine, callInfo)
	mock.lockMine.Unlock()
	return mock.MineFunc(ctx, limit, offset)
}

func (mock *activityServiceMock) MineCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockMine.RLock()
	calls := mock.calls.Mine
	mock.lockMine.RUnlock()
	return calls
}
