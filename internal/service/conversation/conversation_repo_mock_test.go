package conversation

import (
	"context"
	"sync"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

var _ conversationRepo = &conversationRepoMock{}

type conversationRepoMock struct {
	CreateFunc      func(ctx context.Context, ownerID string, campaignID string, title string) (domain.Conversation, error)
	DeleteFunc      func(ctx context.Context, ownerID string, id string) error
	GetFunc         func(ctx context.Context, ownerID string, id string, forUpdate bool) (domain.Conversation, error)
	ListFunc        func(ctx context.Context, ownerID string, campaignID string) ([]domain.Conversation, error)
	RenameFunc      func(ctx context.Context, ownerID string, id string, title string) (domain.Conversation, error)
	SetMessagesFunc func(ctx context.Context, ownerID string, id string, msgs []domain.ChatMessage) (domain.Conversation, error)

	calls struct {
		Create []struct {
			OwnerID    string
			CampaignID string
			Title      string
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
		Rename []struct {
			OwnerID string
			ID      string
			Title   string
		}
		SetMessages []struct {
			OwnerID string
			ID      string
			Msgs    []domain.ChatMessage
		}
	}
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockGet         sync.RWMutex
	lockList        sync.RWMutex
	lockRename      sync.RWMutex
	lockSetMessages sync.RWMutex
}

func (mock *conversationRepoMock) Create(ctx context.Context, ownerID string, campaignID string, title string) (domain.Conversation, error) {
	if mock.CreateFunc == nil {
		panic("conversationRepoMock.CreateFunc: method is nil but conversationRepo.Create was just called")
	}
	callInfo := struct {
		OwnerID    string
		CampaignID string
		Title      string
	}{OwnerID: ownerID, CampaignID: campaignID, Title: title}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, campaignID, title)
}

func (mock *conversationRepoMock) CreateCalls() []struct {
	OwnerID    string
	CampaignID string
	Title      string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *conversationRepoMock) Delete(ctx context.Context, ownerID string, id string) error {
	if mock.DeleteFunc == nil {
		panic("conversationRepoMock.DeleteFunc: method is nil but conversationRepo.Delete was just called")
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

func (mock *conversationRepoMock) DeleteCalls() []struct {
	OwnerID string
	ID      string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *conversationRepoMock) Get(ctx context.Context, ownerID string, id string, forUpdate bool) (domain.Conversation, error) {
	if mock.GetFunc == nil {
		panic("conversationRepoMock.GetFunc: method is nil but conversationRepo.Get was just called")
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

func (mock *conversationRepoMock) GetCalls() []struct {
	OwnerID   string
	ID        string
	ForUpdate bool
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *conversationRepoMock) List(ctx context.Context, ownerID string, campaignID string) ([]domain.Conversation, error) {
	if mock.ListFunc == nil {
		panic("conversationRepoMock.ListFunc: method is nil but conversationRepo.List was just called")
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

func (mock *conversationRepoMock) ListCalls() []struct {
	OwnerID    string
	CampaignID string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *conversationRepoMock) Rename(ctx context.Context, ownerID string, id string, title string) (domain.Conversation, error) {
	if mock.RenameFunc == nil {
		panic("conversationRepoMock.RenameFunc: method is nil but conversationRepo.Rename was just called")
	}
	callInfo := struct {
		OwnerID string
		ID      string
		Title   string
	}{OwnerID: ownerID, ID: id, Title: title}
	mock.lockRename.Lock()
	mock.calls.Rename = append(mock.calls.Rename, callInfo)
	mock.lockRename.Unlock()
	return mock.RenameFunc(ctx, ownerID, id, title)
}

func (mock *conversationRepoMock) RenameCalls() []struct {
	OwnerID string
	ID      string
	Title   string
} {
	mock.lockRename.RLock()
	calls := mock.calls.Rename
	mock.lockRename.RUnlock()
	return calls
}

func (mock *conversationRepoMock) SetMessages(ctx context.Context, ownerID string, id string, msgs []domain.ChatMessage) (domain.Conversation, error) {
	if mock.SetMessagesFunc == nil {
		panic("conversationRepoMock.SetMessagesFunc: method is nil but conversationRepo.SetMessages was just called")
	}
	callInfo := struct {
		OwnerID string
		ID      string
		Msgs    []domain.ChatMessage
	}{OwnerID: ownerID, ID: id, Msgs: msgs}
	mock.lockSetMessages.Lock()
	mock.calls.SetMessages = append(mock.calls.SetMessages, callInfo)
	mock.lockSetMessages.Unlock()
	return mock.SetMessagesFunc(ctx, ownerID, id, msgs)
}

func (mock *conversationRepoMock) SetMessagesCalls() []struct {
	OwnerID string
	ID      string
	Msgs    []domain.ChatMessage
} {
	mock.lockSetMessages.RLock()
	calls := mock.calls.SetMessages
	mock.lockSetMessages.RUnlock()
	return calls
}
