package npc

import (
	"context"
	"sync"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

var _ campaignRepo = &campaignRepoMock{}

type campaignRepoMock struct {
	GetFunc func(ctx context.Context, ownerID string, id string, forUpdate bool) (domain.Campaign, error)

	calls struct {
		Get []struct {
			OwnerID   string
			ID        string
			ForUpdate bool
		}
	}
	lockGet sync.RWMutex
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
