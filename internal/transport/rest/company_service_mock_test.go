package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/company"
	"sync"
)

var _ companyService = &companyServiceMock{}

type companyServiceMock struct {
	CreateFunc func(ctx context.Context, input company.CreateInput) (*domain.Company, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	ListFunc   func(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, input company.UpdateInput) (*domain.Company, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input company.CreateInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.CompanyFilter
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input company.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *companyServiceMock) Create(ctx context.Context, input company.CreateInput) (*domain.Company, error) {
	if mock.CreateFunc == nil {
		panic("companyServiceMock.CreateFunc: method is nil but companyService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input company.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *companyServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input company.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *companyServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	if mock.GetFunc == nil {
		panic("companyServiceMock.GetFunc: method is nil but companyService.Get was just called")
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

func (mock *companyServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *companyServiceMock) List(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, error) {
	if mock.ListFunc == nil {
		panic("companyServiceMock.ListFunc: method is nil but companyService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.CompanyFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *companyServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.CompanyFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *companyServiceMock) Update(ctx context.Context, id uuid.UUID, input company.UpdateInput) (*domain.Company, error) {
	if mock.UpdateFunc == nil {
		panic("companyServiceMock.UpdateFunc: method is nil but companyService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input company.UpdateInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *companyServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input company.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *companyServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("companyServiceMock.DeleteFunc: method is nil but companyService.Delete was just called")
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

func (mock *companyServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
