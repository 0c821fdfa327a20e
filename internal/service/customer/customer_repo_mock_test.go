package customer

import (
	"context"
	"github.com/google/uuid"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"sync"
)

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	CreateFunc  func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	DeleteFunc  func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	GetByIDFunc func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Customer, error)
	ListFunc    func(ctx context.Context, ownerID uuid.UUID, filter domain.CustomerFilter) ([]domain.Customer, error)
	UpdateFunc  func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, params domain.CustomerUpdateParams) (*domain.Customer, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Customer
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Filter  domain.CustomerFilter
		}
		Update []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
			Params  domain.CustomerUpdateParams
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *customerRepoMock) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if mock.CreateFunc == nil {
		panic("customerRepoMock.CreateFunc: method is nil but customerRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Customer
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *customerRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Customer
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *customerRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("customerRepoMock.DeleteFunc: method is nil but customerRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *customerRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *customerRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Customer, error) {
	if mock.GetByIDFunc == nil {
		panic("customerRepoMock.GetByIDFunc: method is nil but customerRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, id)
}

func (mock *customerRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *customerRepoMock) List(ctx context.Context, ownerID uuid.UUID, filter domain.CustomerFilter) ([]domain.Customer, error) {
	if mock.ListFunc == nil {
		panic("customerRepoMock.ListFunc: method is nil but customerRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Filter  domain.CustomerFilter
	}{Ctx: ctx, OwnerID: ownerID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, filter)
}

func (mock *customerRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Filter  domain.CustomerFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *customerRepoMock) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, params domain.CustomerUpdateParams) (*domain.Customer, error) {
	if mock.UpdateFunc == nil {
		panic("customerRepoMock.UpdateFunc: method is nil but customerRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
		Params  domain.CustomerUpdateParams
	}{Ctx: ctx, OwnerID: ownerID, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, id, params)
}

func (mock *customerRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
	Params  domain.CustomerUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
