package prospect

import (
	"context"
	"github.com/google/uuid"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"sync"
)

var _ prospectRepo = &prospectRepoMock{}

type prospectRepoMock struct {
	CreateFunc  func(ctx context.Context, p *domain.Prospect) (*domain.Prospect, error)
	DeleteFunc  func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	GetByIDFunc func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Prospect, error)
	ListFunc    func(ctx context.Context, ownerID uuid.UUID, filter domain.ProspectFilter) ([]domain.Prospect, error)
	UpdateFunc  func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, params domain.ProspectUpdateParams) (*domain.Prospect, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.Prospect
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
			Filter  domain.ProspectFilter
		}
		Update []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
			Params  domain.ProspectUpdateParams
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *prospectRepoMock) Create(ctx context.Context, p *domain.Prospect) (*domain.Prospect, error) {
	if mock.CreateFunc == nil {
		panic("prospectRepoMock.CreateFunc: method is nil but prospectRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Prospect
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *prospectRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Prospect
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *prospectRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("prospectRepoMock.DeleteFunc: method is nil but prospectRepo.Delete was just called")
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

func (mock *prospectRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *prospectRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Prospect, error) {
	if mock.GetByIDFunc == nil {
		panic("prospectRepoMock.GetByIDFunc: method is nil but prospectRepo.GetByID was just called")
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

func (mock *prospectRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *prospectRepoMock) List(ctx context.Context, ownerID uuid.UUID, filter domain.ProspectFilter) ([]domain.Prospect, error) {
	if mock.ListFunc == nil {
		panic("prospectRepoMock.ListFunc: method is nil but prospectRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Filter  domain.ProspectFilter
	}{Ctx: ctx, OwnerID: ownerID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, filter)
}

func (mock *prospectRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Filter  domain.ProspectFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *prospectRepoMock) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, params domain.ProspectUpdateParams) (*domain.Prospect, error) {
	if mock.UpdateFunc == nil {
		panic("prospectRepoMock.UpdateFunc: method is nil but prospectRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
		Params  domain.ProspectUpdateParams
	}{Ctx: ctx, OwnerID: ownerID, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, id, params)
}

func (mock *prospectRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
	Params  domain.ProspectUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
