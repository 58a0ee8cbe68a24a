package events

import (
	"sync"

	"github.com/Xahmuh/reward_engine/src/internal/domain/shared"
)

// ===========================
// In-Memory Event Bus
// ===========================

// InMemoryEventBus 進程內事件匯流排
//
// 設計原則：
// 1. 實作 shared.EventPublisher 與 shared.EventSubscriber
// 2. 同步分發：Publish 返回前所有 handler 都已執行
// 3. handler 錯誤不中斷分發：事件通知是盡力而為，
//    發 voucher / 核銷的正確性不依賴任何訂閱者
//
// 單機部署的預設實作；多實例部署時換成訊息佇列的
// Publisher 實作即可，Domain 與 Application Layer 不變
type InMemoryEventBus struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler
}

// NewInMemoryEventBus 創建進程內事件匯流排
func NewInMemoryEventBus() *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]shared.EventHandler),
	}
}

// Subscribe 訂閱指定類型的事件
func (b *InMemoryEventBus) Subscribe(eventType string, handler shared.EventHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

// Publish 發布單一事件給所有訂閱者
//
// handler 錯誤只收集不中斷；返回第一個遇到的錯誤供呼叫端記錄
func (b *InMemoryEventBus) Publish(event shared.DomainEvent) error {
	b.mu.RLock()
	handlers := b.handlers[event.EventType()]
	b.mu.RUnlock()

	var firstErr error
	for _, handler := range handlers {
		if err := handler.Handle(event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishBatch 依序發布一批事件
func (b *InMemoryEventBus) PublishBatch(events []shared.DomainEvent) error {
	var firstErr error
	for _, event := range events {
		if err := b.Publish(event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
