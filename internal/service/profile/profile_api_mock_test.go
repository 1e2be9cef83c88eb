package profile

import (
	"context"
	"sync"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

var _ profileAPI = &profileAPIMock{}

type profileAPIMock struct {
	CreateProfileFunc func(ctx context.Context, userID int64, payload any) (domain.ClientProfile, error)
	GetProfileFunc    func(ctx context.Context, userID int64) (domain.ClientProfile, error)
	UpdateProfileFunc func(ctx context.Context, userID int64, payload any) (domain.ClientProfile, error)

	calls struct {
		CreateProfile []struct {
			Ctx     context.Context
			UserID  int64
			Payload any
		}
		GetProfile []struct {
			Ctx    context.Context
			UserID int64
		}
		UpdateProfile []struct {
			Ctx     context.Context
			UserID  int64
			Payload any
		}
	}
	lockCreateProfile sync.RWMutex
	lockGetProfile    sync.RWMutex
	lockUpdateProfile sync.RWMutex
}

func (mock *profileAPIMock) CreateProfile(ctx context.Context, userID int64, payload any) (domain.ClientProfile, error) {
	if mock.CreateProfileFunc == nil {
		panic("profileAPIMock.CreateProfileFunc: method is nil but profileAPI.CreateProfile was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  int64
		Payload any
	}{Ctx: ctx, UserID: userID, Payload: payload}
	mock.lockCreateProfile.Lock()
	mock.calls.CreateProfile = append(mock.calls.CreateProfile, callInfo)
	mock.lockCreateProfile.Unlock()
	return mock.CreateProfileFunc(ctx, userID, payload)
}

func (mock *profileAPIMock) CreateProfileCalls() []struct {
	Ctx     context.Context
	UserID  int64
	Payload any
} {
	mock.lockCreateProfile.RLock()
	calls := mock.calls.CreateProfile
	mock.lockCreateProfile.RUnlock()
	return calls
}

func (mock *profileAPIMock) GetProfile(ctx context.Context, userID int64) (domain.ClientProfile, error) {
	if mock.GetProfileFunc == nil {
		panic("profileAPIMock.GetProfileFunc: method is nil but profileAPI.GetProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx, userID)
}

func (mock *profileAPIMock) GetProfileCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *profileAPIMock) UpdateProfile(ctx context.Context, userID int64, payload any) (domain.ClientProfile, error) {
	if mock.UpdateProfileFunc == nil {
		panic("profileAPIMock.UpdateProfileFunc: method is nil but profileAPI.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  int64
		Payload any
	}{Ctx: ctx, UserID: userID, Payload: payload}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, userID, payload)
}

func (mock *profileAPIMock) UpdateProfileCalls() []struct {
	Ctx     context.Context
	UserID  int64
	Payload any
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}
