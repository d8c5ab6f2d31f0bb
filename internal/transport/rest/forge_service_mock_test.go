package rest

import (
	"context"
	"sync"

	"github.com/lmdrew96/FeyForge-sub001/internal/service/forge"
)

var _ forgeService = &forgeServiceMock{}

type forgeServiceMock struct {
	BackstoryFunc func(ctx context.Context, input forge.BackstoryInput) (string, error)
	ChatFunc      func(ctx context.Context, input forge.ChatInput, emit func(delta string) error) (forge.ChatResult, error)
	LootFunc      func(ctx context.Context, input forge.LootInput) (forge.Loot, error)
	NPCFunc       func(ctx context.Context, input forge.NPCInput) (forge.GeneratedNPC, error)

	calls struct {
		Backstory []struct{ Input forge.BackstoryInput }
		Chat      []struct {
			Input forge.ChatInput
			Emit  func(delta string) error
		}
		Loot []struct{ Input forge.LootInput }
		NPC  []struct{ Input forge.NPCInput }
	}
	lockBackstory sync.RWMutex
	lockChat      sync.RWMutex
	lockLoot      sync.RWMutex
	lockNPC       sync.RWMutex
}

func (mock *forgeServiceMock) Backstory(ctx context.Context, input forge.BackstoryInput) (string, error) {
	if mock.BackstoryFunc == nil {
		panic("forgeServiceMock.BackstoryFunc: method is nil but forgeService.Backstory was just called")
	}
	callInfo := struct{ Input forge.BackstoryInput }{Input: input}
	mock.lockBackstory.Lock()
	mock.calls.Backstory = append(mock.calls.Backstory, callInfo)
	mock.lockBackstory.Unlock()
	return mock.BackstoryFunc(ctx, input)
}

func (mock *forgeServiceMock) BackstoryCalls() []struct{ Input forge.BackstoryInput } {
	mock.lockBackstory.RLock()
	calls := mock.calls.Backstory
	mock.lockBackstory.RUnlock()
	return calls
}

func (mock *forgeServiceMock) Chat(ctx context.Context, input forge.ChatInput, emit func(delta string) error) (forge.ChatResult, error) {
	if mock.ChatFunc == nil {
		panic("forgeServiceMock.ChatFunc: method is nil but forgeService.Chat was just called")
	}
	callInfo := struct {
		Input forge.ChatInput
		Emit  func(delta string) error
	}{Input: input, Emit: emit}
	mock.lockChat.Lock()
	mock.calls.Chat = append(mock.calls.Chat, callInfo)
	mock.lockChat.Unlock()
	return mock.ChatFunc(ctx, input, emit)
}

func (mock *forgeServiceMock) ChatCalls() []struct {
	Input forge.ChatInput
	Emit  func(delta string) error
} {
	mock.lockChat.RLock()
	calls := mock.calls.Chat
	mock.lockChat.RUnlock()
	return calls
}

func (mock *forgeServiceMock) Loot(ctx context.Context, input forge.LootInput) (forge.Loot, error) {
	if mock.LootFunc == nil {
		panic("forgeServiceMock.LootFunc: method is nil but forgeService.Loot was just called")
	}
	callInfo := struct{ Input forge.LootInput }{Input: input}
	mock.lockLoot.Lock()
	mock.calls.Loot = append(mock.calls.Loot, callInfo)
	mock.lockLoot.Unlock()
	return mock.LootFunc(ctx, input)
}

func (mock *forgeServiceMock) LootCalls() []struct{ Input forge.LootInput } {
	mock.lockLoot.RLock()
	calls := mock.calls.Loot
	mock.lockLoot.RUnlock()
	return calls
}

func (mock *forgeServiceMock) NPC(ctx context.Context, input forge.NPCInput) (forge.GeneratedNPC, error) {
	if mock.NPCFunc == nil {
		panic("forgeServiceMock.NPCFunc: method is nil but forgeService.NPC was just called")
	}
	callInfo := struct{ Input forge.NPCInput }{Input: input}
	mock.lockNPC.Lock()
	mock.calls.NPC = append(mock.calls.NPC, callInfo)
	mock.lockNPC.Unlock()
	return mock.NPCFunc(ctx, input)
}

func (mock *forgeServiceMock) NPCCalls() []struct{ Input forge.NPCInput } {
	mock.lockNPC.RLock()
	calls := mock.calls.NPC
	mock.lockNPC.RUnlock()
	return calls
}
