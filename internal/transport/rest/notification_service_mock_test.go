package rest

import (
	"context"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/notification"
	"sync"
)

var _ notificationService = &notificationServiceMock{}

type notificationServiceMock struct {
	GetFunc    func(ctx context.Context) (*domain.NotificationSettings, error)
	UpdateFunc func(ctx context.Context, input notification.UpdateInput) (*domain.NotificationSettings, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			Input notification.UpdateInput
		}
	}
	lockGet    sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *notificationServiceMock) Get(ctx context.Context) (*domain.NotificationSettings, error) {
	if mock.GetFunc == nil {
		panic("notificationServiceMock.GetFunc: method is nil but notificationService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *notificationServiceMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *notificationServiceMock) Update(ctx context.Context, input notification.UpdateInput) (*domain.NotificationSettings, error) {
	if mock.UpdateFunc == nil {
		panic("notificationServiceMock.UpdateFunc: method is nil but notificationService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input notification.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *notificationServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input notification.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
