package forge

import (
	"context"
	"sync"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/conversation"
)

var _ conversationStore = &conversationStoreMock{}

type conversationStoreMock struct {
	AppendMessageFunc func(ctx context.Context, input conversation.AppendMessageInput) (domain.Conversation, error)

	calls struct {
		AppendMessage []struct {
			Input conversation.AppendMessageInput
		}
	}
	lockAppendMessage sync.RWMutex
}

func (mock *conversationStoreMock) AppendMessage(ctx context.Context, input conversation.AppendMessageInput) (domain.Conversation, error) {
	if mock.AppendMessageFunc == nil {
		panic("conversationStoreMock.AppendMessageFunc: method is nil but conversationStore.AppendMessage was just called")
	}
	callInfo := struct {
		Input conversation.AppendMessageInput
	}{Input: input}
	mock.lockAppendMessage.Lock()
	mock.calls.AppendMessage = append(mock.calls.AppendMessage, callInfo)
	mock.lockAppendMessage.Unlock()
	return mock.AppendMessageFunc(ctx, input)
}

func (mock *conversationStoreMock) AppendMessageCalls() []struct {
	Input conversation.AppendMessageInput
} {
	mock.lockAppendMessage.RLock()
	calls := mock.calls.AppendMessage
	mock.lockAppendMessage.RUnlock()
	return calls
}
