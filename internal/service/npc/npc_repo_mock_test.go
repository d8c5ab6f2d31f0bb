package npc

import (
	"context"
	"sync"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

var _ npcRepo = &npcRepoMock{}

type npcRepoMock struct {
	CreateFunc func(ctx context.Context, ownerID string, n domain.NPC) (domain.NPC, error)
	DeleteFunc func(ctx context.Context, ownerID string, id string) error
	GetFunc    func(ctx context.Context, ownerID string, id string, forUpdate bool) (domain.NPC, error)
	ListFunc   func(ctx context.Context, ownerID string, campaignID string) ([]domain.NPC, error)
	UpdateFunc func(ctx context.Context, ownerID string, n domain.NPC) (domain.NPC, error)

	calls struct {
		Create []struct {
			OwnerID string
			N       domain.NPC
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
		Update []struct {
			OwnerID string
			N       domain.NPC
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *npcRepoMock) Create(ctx context.Context, ownerID string, n domain.NPC) (domain.NPC, error) {
	if mock.CreateFunc == nil {
		panic("npcRepoMock.CreateFunc: method is nil but npcRepo.Create was just called")
	}
	callInfo := struct {
		OwnerID string
		N       domain.NPC
	}{OwnerID: ownerID, N: n}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, n)
}

func (mock *npcRepoMock) CreateCalls() []struct {
	OwnerID string
	N       domain.NPC
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *npcRepoMock) Delete(ctx context.Context, ownerID string, id string) error {
	if mock.DeleteFunc == nil {
		panic("npcRepoMock.DeleteFunc: method is nil but npcRepo.Delete was just called")
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

func (mock *npcRepoMock) DeleteCalls() []struct {
	OwnerID string
	ID      string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *npcRepoMock) Get(ctx context.Context, ownerID string, id string, forUpdate bool) (domain.NPC, error) {
	if mock.GetFunc == nil {
		panic("npcRepoMock.GetFunc: method is nil but npcRepo.Get was just called")
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

func (mock *npcRepoMock) GetCalls() []struct {
	OwnerID   string
	ID        string
	ForUpdate bool
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *npcRepoMock) List(ctx context.Context, ownerID string, campaignID string) ([]domain.NPC, error) {
	if mock.ListFunc == nil {
		panic("npcRepoMock.ListFunc: method is nil but npcRepo.List was just called")
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

func (mock *npcRepoMock) ListCalls() []struct {
	OwnerID    string
	CampaignID string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *npcRepoMock) Update(ctx context.Context, ownerID string, n domain.NPC) (domain.NPC, error) {
	if mock.UpdateFunc == nil {
		panic("npcRepoMock.UpdateFunc: method is nil but npcRepo.Update was just called")
	}
	callInfo := struct {
		OwnerID string
		N       domain.NPC
	}{OwnerID: ownerID, N: n}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, n)
}

func (mock *npcRepoMock) UpdateCalls() []struct {
	OwnerID string
	N       domain.NPC
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
