package combat

import (
	"context"
	"sync"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/encounter"
)

var _ encounterStore = &encounterStoreMock{}

type encounterStoreMock struct {
	GetFunc  func(ctx context.Context, id string) (domain.SavedEncounter, error)
	SaveFunc func(ctx context.Context, input encounter.SaveInput) (domain.SavedEncounter, error)

	calls struct {
		Get  []struct{ ID string }
		Save []struct{ Input encounter.SaveInput }
	}
	lockGet  sync.RWMutex
	lockSave sync.RWMutex
}

func (mock *encounterStoreMock) Get(ctx context.Context, id string) (domain.SavedEncounter, error) {
	if mock.GetFunc == nil {
		panic("encounterStoreMock.GetFunc: method is nil but encounterStore.Get was just called")
	}
	callInfo := struct{ ID string }{ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *encounterStoreMock) GetCalls() []struct{ ID string } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *encounterStoreMock) Save(ctx context.Context, input encounter.SaveInput) (domain.SavedEncounter, error) {
	if mock.SaveFunc == nil {
		panic("encounterStoreMock.SaveFunc: method is nil but encounterStore.Save was just called")
	}
	callInfo := struct{ Input encounter.SaveInput }{Input: input}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, input)
}

func (mock *encounterStoreMock) SaveCalls() []struct{ Input encounter.SaveInput } {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
