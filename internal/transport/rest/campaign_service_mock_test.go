package rest

import (
	"context"
	"sync"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/campaign"
)

var _ campaignService = &campaignServiceMock{}

type campaignServiceMock struct {
	CreateFunc func(ctx context.Context, input campaign.CreateInput) (domain.Campaign, error)
	DeleteFunc func(ctx context.Context, id string) error
	GetFunc    func(ctx context.Context, id string) (domain.Campaign, error)
	ListFunc   func(ctx context.Context) ([]domain.Campaign, error)
	UpdateFunc func(ctx context.Context, input campaign.UpdateInput) (domain.Campaign, error)

	calls struct {
		Create []struct{ Input campaign.CreateInput }
		Delete []struct{ ID string }
		Get    []struct{ ID string }
		List   []struct{}
		Update []struct{ Input campaign.UpdateInput }
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *campaignServiceMock) Create(ctx context.Context, input campaign.CreateInput) (domain.Campaign, error) {
	if mock.CreateFunc == nil {
		panic("campaignServiceMock.CreateFunc: method is nil but campaignService.Create was just called")
	}
	callInfo := struct{ Input campaign.CreateInput }{Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *campaignServiceMock) CreateCalls() []struct{ Input campaign.CreateInput } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *campaignServiceMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("campaignServiceMock.DeleteFunc: method is nil but campaignService.Delete was just called")
	}
	callInfo := struct{ ID string }{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *campaignServiceMock) DeleteCalls() []struct{ ID string } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *campaignServiceMock) Get(ctx context.Context, id string) (domain.Campaign, error) {
	if mock.GetFunc == nil {
		panic("campaignServiceMock.GetFunc: method is nil but campaignService.Get was just called")
	}
	callInfo := struct{ ID string }{ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *campaignServiceMock) GetCalls() []struct{ ID string } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *campaignServiceMock) List(ctx context.Context) ([]domain.Campaign, error) {
	if mock.ListFunc == nil {
		panic("campaignServiceMock.ListFunc: method is nil but campaignService.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *campaignServiceMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *campaignServiceMock) Update(ctx context.Context, input campaign.UpdateInput) (domain.Campaign, error) {
	if mock.UpdateFunc == nil {
		panic("campaignServiceMock.UpdateFunc: method is nil but campaignService.Update was just called")
	}
	callInfo := struct{ Input campaign.UpdateInput }{Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *campaignServiceMock) UpdateCalls() []struct{ Input campaign.UpdateInput } {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
