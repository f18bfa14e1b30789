package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/MorseWayne/product_page/internal/api"
	"github.com/MorseWayne/product_page/internal/domain"
	"github.com/MorseWayne/product_page/internal/hooks"
	"github.com/MorseWayne/product_page/internal/htmlutil"
	"github.com/MorseWayne/product_page/internal/view"
)

// cartPreviewTemplate 购物车预览内容的渲染模板
const cartPreviewTemplate = "cart/preview"

// CartService 定义加购流程业务逻辑接口
type CartService interface {
	// AddToCart 提交加购表单：成功则打开预览浮层并填充内容，失败则提示用户
	AddToCart(ctx context.Context, form *domain.FormSnapshot)
	// UpdateCartContent 按购物车条目 hash 拉取预览内容并整体替换浮层内容
	UpdateCartContent(ctx context.Context, overlay view.Overlay, cartItemHash string, onComplete func(fragment string))
}

// cartService 实现CartService接口
type cartService struct {
	scope            view.Scope
	store            api.Storefront
	overlay          view.Overlay
	notifier         view.Notifier
	hub              *hooks.Hub
	caps             view.Capabilities
	suggestionsLimit int
	logger           *zap.Logger

	mu   sync.Mutex
	busy bool
}

// NewCartService 创建加购流程服务实例
func NewCartService(scope view.Scope, store api.Storefront, overlay view.Overlay, notifier view.Notifier, hub *hooks.Hub, caps view.Capabilities, suggestionsLimit int, logger *zap.Logger) CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cartService{
		scope:            scope,
		store:            store,
		overlay:          overlay,
		notifier:         notifier,
		hub:              hub,
		caps:             caps,
		suggestionsLimit: suggestionsLimit,
		logger:           logger,
	}
}

// AddToCart 提交加购表单
func (s *cartService) AddToCart(ctx context.Context, form *domain.FormSnapshot) {
	// 加购表单可能携带文件字段，运行环境不支持 multipart 时交还默认提交路径
	if !s.caps.MultipartForms {
		return
	}

	// 同一控件的请求期间禁止重复提交
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return
	}
	s.busy = true
	s.mu.Unlock()

	vm := s.scope.ProductView()
	button := vm.AddToCart

	var originalLabel string
	if button != nil {
		originalLabel = button.Label()
		button.SetLabel(button.WaitingLabel())
		button.SetEnabled(false)
	}
	// 无论成功失败，按钮文案与启用状态都必须恢复
	defer func() {
		if button != nil {
			button.SetLabel(originalLabel)
			button.SetEnabled(true)
		}
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	result, err := s.store.CartItemAdd(ctx, form)

	// 错误可能来自传输层，也可能是响应负载里的业务错误
	errorMessage := ""
	if err != nil {
		errorMessage = err.Error()
	} else if result.Error != "" {
		errorMessage = result.Error
	}
	if errorMessage != "" {
		s.logger.Warn("cart add failed", zap.String("product_id", form.ProductID), zap.String("error", errorMessage))
		if s.notifier != nil {
			// 业务错误可能携带 HTML 标记，剥离后以纯文本提示
			s.notifier.Alert(htmlutil.StripTags(errorMessage))
		}
		return
	}
	if result.CartItem == nil || result.CartItem.Hash == "" {
		s.logger.Warn("cart add response missing cart item", zap.String("product_id", form.ProductID))
		return
	}

	s.overlay.Open()
	s.UpdateCartContent(ctx, s.overlay, result.CartItem.Hash, nil)
}

// UpdateCartContent 拉取预览内容并更新浮层。
// 拉取失败时静默放弃，浮层维持原有内容；内容只在拉取成功后一次性替换，
// 不会出现半更新状态。
func (s *cartService) UpdateCartContent(ctx context.Context, overlay view.Overlay, cartItemHash string, onComplete func(fragment string)) {
	fragment, err := s.store.CartGetContent(ctx, domain.CartContentOptions{
		Template:         cartPreviewTemplate,
		Suggest:          cartItemHash,
		SuggestionsLimit: s.suggestionsLimit,
	})
	if err != nil {
		s.logger.Warn("cart content fetch failed", zap.String("cart_item_hash", cartItemHash), zap.Error(err))
		return
	}

	overlay.UpdateContent(fragment)

	// 广播最新总数，页头购物车角标等区域独立刷新
	quantity := htmlutil.CartQuantity(fragment)
	if s.hub != nil {
		s.hub.Trigger(hooks.TopicCartQuantityUpdate, quantity)
	}
	s.logger.Debug("cart content updated", zap.String("cart_item_hash", cartItemHash), zap.Int("quantity", quantity))

	if onComplete != nil {
		onComplete(fragment)
	}
}
