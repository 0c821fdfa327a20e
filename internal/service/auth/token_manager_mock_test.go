package auth

import (
	"github.com/google/uuid"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/auth"
	"sync"
	"time"
)

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, email string) (string, time.Time, error)
	ValidateAccessTokenFunc func(token string) (auth.Identity, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID uuid.UUID
			Email  string
		}
		ValidateAccessToken []struct {
			Token string
		}
	}
	lockGenerateAccessToken sync.RWMutex
	lockValidateAccessToken sync.RWMutex
}

func (mock *tokenManagerMock) GenerateAccessToken(userID uuid.UUID, email string) (string, time.Time, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenManagerMock.GenerateAccessTokenFunc: method is nil but tokenManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Email  string
	}{UserID: userID, Email: email}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID, email)
}

func (mock *tokenManagerMock) GenerateAccessTokenCalls() []struct {
	UserID uuid.UUID
	Email  string
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *tokenManagerMock) ValidateAccessToken(token string) (auth.Identity, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("tokenManagerMock.ValidateAccessTokenFunc: method is nil but tokenManager.ValidateAccessToken was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *tokenManagerMock) ValidateAccessTokenCalls() []struct {
	Token string
} {
	mock.lockValidateAccessToken.RLock()
	calls := mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}
