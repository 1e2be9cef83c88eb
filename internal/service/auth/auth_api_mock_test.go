package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

var _ authAPI = &authAPIMock{}

type authAPIMock struct {
	LoginFunc    func(ctx context.Context, payload any) (domain.AuthResult, error)
	LogoutFunc   func(ctx context.Context) error
	MeFunc       func(ctx context.Context) (domain.User, error)
	RegisterFunc func(ctx context.Context, payload any) (domain.AuthResult, error)

	calls struct {
		Login []struct {
			Ctx     context.Context
			Payload any
		}
		Logout []struct {
			Ctx context.Context
		}
		Me []struct {
			Ctx context.Context
		}
		Register []struct {
			Ctx     context.Context
			Payload any
		}
	}
	lockLogin    sync.RWMutex
	lockLogout   sync.RWMutex
	lockMe       sync.RWMutex
	lockRegister sync.RWMutex
}

func (mock *authAPIMock) Login(ctx context.Context, payload any) (domain.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authAPIMock.LoginFunc: method is nil but authAPI.Login was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Payload any
	}{Ctx: ctx, Payload: payload}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, payload)
}

func (mock *authAPIMock) LoginCalls() []struct {
	Ctx     context.Context
	Payload any
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authAPIMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authAPIMock.LogoutFunc: method is nil but authAPI.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authAPIMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *authAPIMock) Me(ctx context.Context) (domain.User, error) {
	if mock.MeFunc == nil {
		panic("authAPIMock.MeFunc: method is nil but authAPI.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *authAPIMock) MeCalls() []struct {
	Ctx context.Context
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *authAPIMock) Register(ctx context.Context, payload any) (domain.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authAPIMock.RegisterFunc: method is nil but authAPI.Register was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Payload any
	}{Ctx: ctx, Payload: payload}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, payload)
}

func (mock *authAPIMock) RegisterCalls() []struct {
	Ctx     context.Context
	Payload any
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}
