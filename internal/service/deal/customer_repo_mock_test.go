package deal

import (
	"context"
	"github.com/google/uuid"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"sync"
)

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	GetByIDFunc func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Customer, error)

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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
