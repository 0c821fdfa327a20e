package prospect

import (
	"context"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"sync"
)

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	CreateFunc func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Customer
		}
	}
	lockCreate sync.RWMutex
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
