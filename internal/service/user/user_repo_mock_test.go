package user

import (
	"context"
	"github.com/google/uuid"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateNameFunc func(ctx context.Context, id uuid.UUID, name string) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateName []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Name string
		}
	}
	lockGetByID    sync.RWMutex
	lockUpdateName sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	if mock.UpdateNameFunc == nil {
		panic("userRepoMock.UpdateNameFunc: method is nil but userRepo.UpdateName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Name string
	}{Ctx: ctx, ID: id, Name: name}
	mock.lockUpdateName.Lock()
	mock.calls.UpdateName = append(mock.calls.UpdateName, callInfo)
	mock.lockUpdateName.Unlock()
	return mock.UpdateNameFunc(ctx, id, name)
}

func (mock *userRepoMock) UpdateNameCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Name string
} {
	mock.lockUpdateName.RLock()
	calls := mock.calls.UpdateName
	mock.lockUpdateName.RUnlock()
	return calls
}
