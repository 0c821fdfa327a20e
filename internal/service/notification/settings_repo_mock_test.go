package notification

import (
	"context"
	"github.com/google/uuid"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"sync"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetFunc    func(ctx context.Context, userID uuid.UUID) (*domain.NotificationSettings, error)
	UpsertFunc func(ctx context.Context, s domain.NotificationSettings) (*domain.NotificationSettings, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Upsert []struct {
			Ctx context.Context
			S   domain.NotificationSettings
		}
	}
	lockGet    sync.RWMutex
	lockUpsert sync.RWMutex
}

func (mock *settingsRepoMock) Get(ctx context.Context, userID uuid.UUID) (*domain.NotificationSettings, error) {
	if mock.GetFunc == nil {
		panic("settingsRepoMock.GetFunc: method is nil but settingsRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *settingsRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *settingsRepoMock) Upsert(ctx context.Context, s domain.NotificationSettings) (*domain.NotificationSettings, error) {
	if mock.UpsertFunc == nil {
		panic("settingsRepoMock.UpsertFunc: method is nil but settingsRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.NotificationSettings
	}{Ctx: ctx, S: s}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, s)
}

func (mock *settingsRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	S   domain.NotificationSettings
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
