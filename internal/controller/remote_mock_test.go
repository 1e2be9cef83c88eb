package controller

import (
	"context"
	"sync"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

var _ Remote[domain.Gym] = &remoteMock[domain.Gym]{}

type remoteMock[T any] struct {
	ListFunc   func(ctx context.Context, filter domain.EntityFilter) (domain.PagedResult[T], error)
	GetFunc    func(ctx context.Context, id int64) (T, error)
	CreateFunc func(ctx context.Context, payload any) (T, error)
	UpdateFunc func(ctx context.Context, id int64, payload any) (T, error)
	DeleteFunc func(ctx context.Context, id int64) error

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.EntityFilter
		}
		Get []struct {
			Ctx context.Context
			ID  int64
		}
		Create []struct {
			Ctx     context.Context
			Payload any
		}
		Update []struct {
			Ctx     context.Context
			ID      int64
			Payload any
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *remoteMock[T]) List(ctx context.Context, filter domain.EntityFilter) (domain.PagedResult[T], error) {
	if mock.ListFunc == nil {
		panic("remoteMock.ListFunc: method is nil but Remote.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.EntityFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *remoteMock[T]) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.EntityFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *remoteMock[T]) Get(ctx context.Context, id int64) (T, error) {
	if mock.GetFunc == nil {
		panic("remoteMock.GetFunc: method is nil but Remote.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *remoteMock[T]) GetCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *remoteMock[T]) Create(ctx context.Context, payload any) (T, error) {
	if mock.CreateFunc == nil {
		panic("remoteMock.CreateFunc: method is nil but Remote.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Payload any
	}{Ctx: ctx, Payload: payload}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, payload)
}

func (mock *remoteMock[T]) CreateCalls() []struct {
	Ctx     context.Context
	Payload any
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *remoteMock[T]) Update(ctx context.Context, id int64, payload any) (T, error) {
	if mock.UpdateFunc == nil {
		panic("remoteMock.UpdateFunc: method is nil but Remote.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      int64
		Payload any
	}{Ctx: ctx, ID: id, Payload: payload}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, payload)
}

func (mock *remoteMock[T]) UpdateCalls() []struct {
	Ctx     context.Context
	ID      int64
	Payload any
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *remoteMock[T]) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("remoteMock.DeleteFunc: method is nil but Remote.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *remoteMock[T]) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
