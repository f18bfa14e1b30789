// Package hooks 提供页面级通知中心，承载跨区域的松耦合事件分发。
package hooks

import (
	"sync"

	"go.uber.org/zap"

	"github.com/MorseWayne/product_page/internal/domain"
)

// 页面级事件主题常量
const (
	TopicProductOptionChange = "product-option-change" // 商品选项发生变更
	TopicCartItemAdd         = "cart-item-add"         // 加购表单被提交
	TopicCartQuantityUpdate  = "cart-quantity-update"  // 购物车总数量变化
)

// OptionChangeEvent 选项变更事件负载
type OptionChangeEvent struct {
	Changed domain.OptionRef
	Form    *domain.FormSnapshot
}

// CartAddEvent 加购提交事件负载
type CartAddEvent struct {
	Form *domain.FormSnapshot
}

// Handler 处理一个主题上的事件负载
type Handler func(payload any)

// Hub 页面级事件中心。处理器由页面区域的持有方显式注册，
// 同一页面内同步投递，不经过任何进程外通道。
type Hub struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *zap.Logger
}

// NewHub 创建事件中心实例
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

// On 注册一个主题处理器
func (h *Hub) On(topic string, handler Handler) {
	if handler == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[topic] = append(h.handlers[topic], handler)
}

// Trigger 向主题的全部处理器同步投递事件
func (h *Hub) Trigger(topic string, payload any) {
	h.mu.RLock()
	handlers := make([]Handler, len(h.handlers[topic]))
	copy(handlers, h.handlers[topic])
	h.mu.RUnlock()

	if len(handlers) == 0 {
		h.logger.Debug("no handler for topic", zap.String("topic", topic))
		return
	}

	for _, handler := range handlers {
		handler(payload)
	}
}
