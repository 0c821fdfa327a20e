package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/prospect"
	"sync"
)

var _ prospectService = &prospectServiceMock{}

type prospectServiceMock struct {
	CreateFunc  func(ctx context.Context, input prospect.CreateInput) (*domain.Prospect, error)
	GetFunc     func(ctx context.Context, id uuid.UUID) (*domain.Prospect, error)
	ListFunc    func(ctx context.Context, filter domain.ProspectFilter) ([]domain.Prospect, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, input prospect.UpdateInput) (*domain.Prospect, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	ConvertFunc func(ctx context.Context, id uuid.UUID, input prospect.ConvertInput) (*prospect.ConvertResult, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input prospect.CreateInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ProspectFilter
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input prospect.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Convert []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input prospect.ConvertInput
		}
	}
	lockCreate  sync.RWMutex
	lockGet     sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockConvert sync.RWMutex
}

func (mock *prospectServiceMock) Create(ctx context.Context, input prospect.CreateInput) (*domain.Prospect, error) {
	if mock.CreateFunc == nil {
		panic("prospectServiceMock.CreateFunc: method is nil but prospectService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input prospect.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *prospectServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input prospect.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *prospectServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Prospect, error) {
	if mock.GetFunc == nil {
		panic("prospectServiceMock.GetFunc: method is nil but prospectService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *prospectServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *prospectServiceMock) List(ctx context.Context, filter domain.ProspectFilter) ([]domain.Prospect, error) {
	if mock.ListFunc == nil {
		panic("prospectServiceMock.ListFunc: method is nil but prospectService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ProspectFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *prospectServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ProspectFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *prospectServiceMock) Update(ctx context.Context, id uuid.UUID, input prospect.UpdateInput) (*domain.Prospect, error) {
	if mock.UpdateFunc == nil {
		panic("prospectServiceMock.UpdateFunc: method is nil but prospectService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input prospect.UpdateInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *prospectServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input prospect.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *prospectServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("prospectServiceMock.DeleteFunc: method is nil but prospectService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *prospectServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *prospectServiceMock) Convert(ctx context.Context, id uuid.UUID, input prospect.ConvertInput) (*prospect.ConvertResult, error) {
	if mock.ConvertFunc == nil {
		panic("prospectServiceMock.ConvertFunc: method is nil but prospectService.Convert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input prospect.ConvertInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockConvert.Lock()
	mock.calls.Convert = append(mock.calls.Convert, callInfo)
	mock.lockConvert.Unlock()
	return mock.ConvertFunc(ctx, id, input)
}

func (mock *prospectServiceMock) ConvertCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input prospect.ConvertInput
} {
	mock.lockConvert.RLock()
	calls := mock.calls.Convert
	mock.lockConvert.RUnlock()
	return calls
}
