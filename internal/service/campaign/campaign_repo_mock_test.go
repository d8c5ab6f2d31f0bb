package campaign

import (
	"context"
	"sync"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

var _ campaignRepo = &campaignRepoMock{}

type campaignRepoMock struct {
	CreateFunc func(ctx context.Context, c domain.Campaign) (domain.Campaign, error)
	DeleteFunc func(ctx context.Context, ownerID string, id string) error
	GetFunc    func(ctx context.Context, ownerID string, id string, forUpdate bool) (domain.Campaign, error)
	ListFunc   func(ctx context.Context, ownerID string) ([]domain.Campaign, error)
	UpdateFunc func(ctx context.Context, c domain.Campaign) (domain.Campaign, error)

	calls struct {
		Create []struct{ C domain.Campaign }
		Delete []struct {
			OwnerID string
			ID      string
		}
		Get []struct {
			OwnerID   string
			ID        string
			ForUpdate bool
		}
		List   []struct{ OwnerID string }
		Update []struct{ C domain.Campaign }
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *campaignRepoMock) Create(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	if mock.CreateFunc == nil {
		panic("campaignRepoMock.CreateFunc: method is nil but campaignRepo.Create was just called")
	}
	callInfo := struct{ C domain.Campaign }{C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *campaignRepoMock) CreateCalls() []struct{ C domain.Campaign } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *campaignRepoMock) Delete(ctx context.Context, ownerID string, id string) error {
	if mock.DeleteFunc == nil {
		panic("campaignRepoMock.DeleteFunc: method is nil but campaignRepo.Delete was just called")
	}
	callInfo := struct {
		OwnerID string
		ID      string
	}{OwnerID: ownerID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *campaignRepoMock) DeleteCalls() []struct {
	OwnerID string
	ID      string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *campaignRepoMock) Get(ctx context.Context, ownerID string, id string, forUpdate bool) (domain.Campaign, error) {
	if mock.GetFunc == nil {
		panic("campaignRepoMock.GetFunc: method is nil but campaignRepo.Get was just called")
	}
	callInfo := struct {
		OwnerID   string
		ID        string
		ForUpdate bool
	}{OwnerID: ownerID, ID: id, ForUpdate: forUpdate}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, ownerID, id, forUpdate)
}

func (mock *campaignRepoMock) GetCalls() []struct {
	OwnerID   string
	ID        string
	ForUpdate bool
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *campaignRepoMock) List(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	if mock.ListFunc == nil {
		panic("campaignRepoMock.ListFunc: method is nil but campaignRepo.List was just called")
	}
	callInfo := struct{ OwnerID string }{OwnerID: ownerID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID)
}

func (mock *campaignRepoMock) ListCalls() []struct{ OwnerID string } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *campaignRepoMock) Update(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	if mock.UpdateFunc == nil {
		panic("campaignRepoMock.UpdateFunc: method is nil but campaignRepo.Update was just called")
	}
	callInfo := struct{ C domain.Campaign }{C: c}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *campaignRepoMock) UpdateCalls() []struct{ C domain.Campaign } {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
