package encounter

import (
	"context"
	"sync"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

var _ encounterRepo = &encounterRepoMock{}

type encounterRepoMock struct {
	CreateFunc func(ctx context.Context, ownerID string, e domain.SavedEncounter) (domain.SavedEncounter, error)
	DeleteFunc func(ctx context.Context, ownerID string, id string) error
	GetFunc    func(ctx context.Context, ownerID string, id string) (domain.SavedEncounter, error)
	ListFunc   func(ctx context.Context, ownerID string, campaignID string) ([]domain.SavedEncounter, error)
	RenameFunc func(ctx context.Context, ownerID string, id string, name string) (domain.SavedEncounter, error)

	calls struct {
		Create []struct {
			OwnerID string
			E       domain.SavedEncounter
		}
		Delete []struct {
			OwnerID string
			ID      string
		}
		Get []struct {
			OwnerID string
			ID      string
		}
		List []struct {
			OwnerID    string
			CampaignID string
		}
		Rename []struct {
			OwnerID string
			ID      string
			Name    string
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockRename sync.RWMutex
}

func (mock *encounterRepoMock) Create(ctx context.Context, ownerID string, e domain.SavedEncounter) (domain.SavedEncounter, error) {
	if mock.CreateFunc == nil {
		panic("encounterRepoMock.CreateFunc: method is nil but encounterRepo.Create was just called")
	}
	callInfo := struct {
		OwnerID string
		E       domain.SavedEncounter
	}{OwnerID: ownerID, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, e)
}

func (mock *encounterRepoMock) CreateCalls() []struct {
	OwnerID string
	E       domain.SavedEncounter
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *encounterRepoMock) Delete(ctx context.Context, ownerID string, id string) error {
	if mock.DeleteFunc == nil {
		panic("encounterRepoMock.DeleteFunc: method is nil but encounterRepo.Delete was just called")
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

func (mock *encounterRepoMock) DeleteCalls() []struct {
	OwnerID string
	ID      string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *encounterRepoMock) Get(ctx context.Context, ownerID string, id string) (domain.SavedEncounter, error) {
	if mock.GetFunc == nil {
		panic("encounterRepoMock.GetFunc: method is nil but encounterRepo.Get was just called")
	}
	callInfo := struct {
		OwnerID string
		ID      string
	}{OwnerID: ownerID, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, ownerID, id)
}

func (mock *encounterRepoMock) GetCalls() []struct {
	OwnerID string
	ID      string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *encounterRepoMock) List(ctx context.Context, ownerID string, campaignID string) ([]domain.SavedEncounter, error) {
	if mock.ListFunc == nil {
		panic("encounterRepoMock.ListFunc: method is nil but encounterRepo.List was just called")
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

func (mock *encounterRepoMock) ListCalls() []struct {
	OwnerID    string
	CampaignID string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *encounterRepoMock) Rename(ctx context.Context, ownerID string, id string, name string) (domain.SavedEncounter, error) {
	if mock.RenameFunc == nil {
		panic("encounterRepoMock.RenameFunc: method is nil but encounterRepo.Rename was just called")
	}
	callInfo := struct {
		OwnerID string
		ID      string
		Name    string
	}{OwnerID: ownerID, ID: id, Name: name}
	mock.lockRename.Lock()
	mock.calls.Rename = append(mock.calls.Rename, callInfo)
	mock.lockRename.Unlock()
	return mock.RenameFunc(ctx, ownerID, id, name)
}

func (mock *encounterRepoMock) RenameCalls() []struct {
	OwnerID string
	ID      string
	Name    string
} {
	mock.lockRename.RLock()
	calls := mock.calls.Rename
	mock.lockRename.RUnlock()
	return calls
}
