package todo

import (
	"context"
	"github.com/google/uuid"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"sync"
)

var _ todoRepo = &todoRepoMock{}

type todoRepoMock struct {
	BulkUpdateStatusFunc func(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, status domain.TodoStatus) (int64, error)
	CreateFunc           func(ctx context.Context, td *domain.Todo) (*domain.Todo, error)
	DeleteFunc           func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	GetByIDFunc          func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Todo, error)
	ListFunc             func(ctx context.Context, ownerID uuid.UUID, filter domain.TodoFilter) ([]domain.Todo, error)
	UpdateFunc           func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, params domain.TodoUpdateParams) (*domain.Todo, error)

	calls struct {
		BulkUpdateStatus []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Ids     []uuid.UUID
			Status  domain.TodoStatus
		}
		Create []struct {
			Ctx context.Context
			Td  *domain.Todo
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
			Filter  domain.TodoFilter
		}
		Update []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
			Params  domain.TodoUpdateParams
		}
	}
	lockBulkUpdateStatus sync.RWMutex
	lockCreate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockList             sync.RWMutex
	lockUpdate           sync.RWMutex
}

func (mock *todoRepoMock) BulkUpdateStatus(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, status domain.TodoStatus) (int64, error) {
	if mock.BulkUpdateStatusFunc == nil {
		panic("todoRepoMock.BulkUpdateStatusFunc: method is nil but todoRepo.BulkUpdateStatus was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Ids     []uuid.UUID
		Status  domain.TodoStatus
	}{Ctx: ctx, OwnerID: ownerID, Ids: ids, Status: status}
	mock.lockBulkUpdateStatus.Lock()
	mock.calls.BulkUpdateStatus = append(mock.calls.BulkUpdateStatus, callInfo)
	mock.lockBulkUpdateStatus.Unlock()
	return mock.BulkUpdateStatusFunc(ctx, ownerID, ids, status)
}

func (mock *todoRepoMock) BulkUpdateStatusCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Ids     []uuid.UUID
	Status  domain.TodoStatus
} {
	mock.lockBulkUpdateStatus.RLock()
	calls := mock.calls.BulkUpdateStatus
	mock.lockBulkUpdateStatus.RUnlock()
	return calls
}

func (mock *todoRepoMock) Create(ctx context.Context, td *domain.Todo) (*domain.Todo, error) {
	if mock.CreateFunc == nil {
		panic("todoRepoMock.CreateFunc: method is nil but todoRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Td  *domain.Todo
	}{Ctx: ctx, Td: td}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, td)
}

func (mock *todoRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Td  *domain.Todo
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *todoRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("todoRepoMock.DeleteFunc: method is nil but todoRepo.Delete was just called")
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

func (mock *todoRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *todoRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Todo, error) {
	if mock.GetByIDFunc == nil {
		panic("todoRepoMock.GetByIDFunc: method is nil but todoRepo.GetByID was just called")
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

func (mock *todoRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *todoRepoMock) List(ctx context.Context, ownerID uuid.UUID, filter domain.TodoFilter) ([]domain.Todo, error) {
	if mock.ListFunc == nil {
		panic("todoRepoMock.ListFunc: method is nil but todoRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Filter  domain.TodoFilter
	}{Ctx: ctx, OwnerID: ownerID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, filter)
}

func (mock *todoRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Filter  domain.TodoFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *todoRepoMock) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, params domain.TodoUpdateParams) (*domain.Todo, error) {
	if mock.UpdateFunc == nil {
		panic("todoRepoMock.UpdateFunc: method is nil but todoRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
		Params  domain.TodoUpdateParams
	}{Ctx: ctx, OwnerID: ownerID, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, id, params)
}

func (mock *todoRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
	Params  domain.TodoUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
