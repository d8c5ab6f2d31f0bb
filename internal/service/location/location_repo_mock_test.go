package location

import (
	"context"
	"sync"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

var _ locationRepo = &locationRepoMock{}

type locationRepoMock struct {
	CreateFunc        func(ctx context.Context, ownerID string, l domain.Location) (domain.Location, error)
	DeleteFunc        func(ctx context.Context, ownerID string, id string) error
	GetFunc           func(ctx context.Context, ownerID string, id string, forUpdate bool) (domain.Location, error)
	ListFunc          func(ctx context.Context, ownerID string, campaignID string) ([]domain.Location, error)
	ToggleVisitedFunc func(ctx context.Context, ownerID string, id string) (domain.Location, error)
	UpdateFunc        func(ctx context.Context, ownerID string, l domain.Location) (domain.Location, error)

	calls struct {
		Create []struct {
			OwnerID string
			L       domain.Location
		}
		Delete []struct {
			OwnerID string
			ID      string
		}
		Get []struct {
			OwnerID   string
			ID        string
			ForUpdate bool
		}
		List []struct {
			OwnerID    string
			CampaignID string
		}
		ToggleVisited []struct {
			OwnerID string
			ID      string
		}
		Update []struct {
			OwnerID string
			L       domain.Location
		}
	}
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockGet           sync.RWMutex
	lockList          sync.RWMutex
	lockToggleVisited sync.RWMutex
	lockUpdate        sync.RWMutex
}

func (mock *locationRepoMock) Create(ctx context.Context, ownerID string, l domain.Location) (domain.Location, error) {
	if mock.CreateFunc == nil {
		panic("locationRepoMock.CreateFunc: method is nil but locationRepo.Create was just called")
	}
	callInfo := struct {
		OwnerID string
		L       domain.Location
	}{OwnerID: ownerID, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, l)
}

func (mock *locationRepoMock) CreateCalls() []struct {
	OwnerID string
	L       domain.Location
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *locationRepoMock) Delete(ctx context.Context, ownerID string, id string) error {
	if mock.DeleteFunc == nil {
		panic("locationRepoMock.DeleteFunc: method is nil but locationRepo.Delete was just called")
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

func (mock *locationRepoMock) DeleteCalls() []struct {
	OwnerID string
	ID      string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *locationRepoMock) Get(ctx context.Context, ownerID string, id string, forUpdate bool) (domain.Location, error) {
	if mock.GetFunc == nil {
		panic("locationRepoMock.GetFunc: method is nil but locationRepo.Get was just called")
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

func (mock *locationRepoMock) GetCalls() []struct {
	OwnerID   string
	ID        string
	ForUpdate bool
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *locationRepoMock) List(ctx context.Context, ownerID string, campaignID string) ([]domain.Location, error) {
	if mock.ListFunc == nil {
		panic("locationRepoMock.ListFunc: method is nil but locationRepo.List was just called")
	}
	callInfo := struct {
		OwnerID    string
		CampaignID string
	}{OwnerID: ownerID, CampaignID: campaignID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, campaignID)
}

func (mock *locationRepoMock) ListCalls() []struct {
	OwnerID    string
	CampaignID string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *locationRepoMock) ToggleVisited(ctx context.Context, ownerID string, id string) (domain.Location, error) {
	if mock.ToggleVisitedFunc == nil {
		panic("locationRepoMock.ToggleVisitedFunc: method is nil but locationRepo.ToggleVisited was just called")
	}
	callInfo := struct {
		OwnerID string
		ID      string
	}{OwnerID: ownerID, ID: id}
	mock.lockToggleVisited.Lock()
	mock.calls.ToggleVisited = append(mock.calls.ToggleVisited, callInfo)
	mock.lockToggleVisited.Unlock()
	return mock.ToggleVisitedFunc(ctx, ownerID, id)
}

func (mock *locationRepoMock) ToggleVisitedCalls() []struct {
	OwnerID string
	ID      string
} {
	mock.lockToggleVisited.RLock()
	calls := mock.calls.ToggleVisited
	mock.lockToggleVisited.RUnlock()
	return calls
}

func (mock *locationRepoMock) Update(ctx context.Context, ownerID string, l domain.Location) (domain.Location, error) {
	if mock.UpdateFunc == nil {
		panic("locationRepoMock.UpdateFunc: method is nil but locationRepo.Update was just called")
	}
	callInfo := struct {
		OwnerID string
		L       domain.Location
	}{OwnerID: ownerID, L: l}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, l)
}

func (mock *locationRepoMock) UpdateCalls() []struct {
	OwnerID string
	L       domain.Location
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
