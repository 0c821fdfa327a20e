package rest

import (
	"context"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/user"
	"sync"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetProfileFunc    func(ctx context.Context) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
		UpdateProfile []struct {
			Ctx   context.Context
			Input user.UpdateProfileInput
		}
	}
	lockGetProfile    sync.RWMutex
	lockUpdateProfile sync.RWMutex
}

func (mock *profileServiceMock) GetProfile(ctx context.Context) (*domain.User, error) {
	if mock.GetProfileFunc == nil {
		panic("profileServiceMock.GetProfileFunc: method is nil but profileService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *profileServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("profileServiceMock.UpdateProfileFunc: method is nil but profileService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, input)
}

func (mock *profileServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Input user.UpdateProfileInput
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}
