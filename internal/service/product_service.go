package service

import (
	"context"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/MorseWayne/product_page/internal/api"
	"github.com/MorseWayne/product_page/internal/domain"
	"github.com/MorseWayne/product_page/internal/imageutil"
	"github.com/MorseWayne/product_page/internal/view"
)

// ProductService 定义选项变更协调业务逻辑接口
type ProductService interface {
	// OptionsChanged 处理一次用户驱动的选项变更：
	// 拉取服务端计算的权威商品状态并同步到页面各展示区
	OptionsChanged(ctx context.Context, changed domain.OptionRef, form *domain.FormSnapshot)
}

// productService 实现ProductService接口
type productService struct {
	scope      view.Scope
	store      api.Storefront
	gallery    view.Gallery
	imageSizes imageutil.Sizes
	caps       view.Capabilities
	logger     *zap.Logger

	// 响应序号守卫：选项变更请求不做取消，乱序到达的旧响应直接丢弃，
	// 保证页面最终反映的是最近一次发出请求的结果
	mu          sync.Mutex
	nextSeq     uint64
	lastApplied uint64
}

// NewProductService 创建选项变更协调服务实例
func NewProductService(scope view.Scope, store api.Storefront, gallery view.Gallery, imageSizes imageutil.Sizes, caps view.Capabilities, logger *zap.Logger) ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &productService{
		scope:      scope,
		store:      store,
		gallery:    gallery,
		imageSizes: imageSizes,
		caps:       caps,
		logger:     logger,
	}
}

// OptionsChanged 处理选项变更
func (s *productService) OptionsChanged(ctx context.Context, changed domain.OptionRef, form *domain.FormSnapshot) {
	// 文件控件无法安全序列化；运行环境不支持 multipart 时同样跳过
	if changed.IsFileInput() || !s.caps.MultipartForms {
		return
	}

	s.mu.Lock()
	s.nextSeq++
	seq := s.nextSeq
	s.mu.Unlock()

	resp, err := s.store.OptionChange(ctx, form.ProductID, form)
	if err != nil {
		// 传输失败不向用户暴露，页面维持上一次状态
		s.logger.Warn("option change request failed", zap.String("product_id", form.ProductID), zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.lastApplied {
		s.logger.Debug("discarding stale option change response",
			zap.Uint64("seq", seq), zap.Uint64("last_applied", s.lastApplied))
		return
	}
	s.lastApplied = seq

	s.apply(resp)
}

// apply 把一次选项变更响应逐项落到视图模型上；缺失字段一律跳过，不清空已有展示
func (s *productService) apply(resp *domain.AttributeChangeResponse) {
	vm := s.scope.ProductView()

	s.applyMessage(vm, resp.PurchasingMessage)
	s.applyPrice(vm, resp.Price)

	if resp.Weight != nil && vm.Weight != nil {
		vm.Weight.SetText(resp.Weight.Formatted)
	}
	if resp.VariantID != "" && vm.WishlistVariation != nil {
		vm.WishlistVariation.SetValue(resp.VariantID)
	}
	if resp.SKU != "" && vm.SKU != nil {
		vm.SKU.SetText(resp.SKU)
	}
	if resp.Stock != nil && vm.Stock != nil {
		// 库存展示区可能默认隐藏，先恢复可见再写入数值
		vm.Stock.Show()
		vm.Stock.SetText(strconv.Itoa(*resp.Stock))
	}

	if enabled, ok := resp.Enablement(); ok {
		if vm.AddToCart != nil {
			vm.AddToCart.SetEnabled(enabled)
		}
		if vm.Increments != nil {
			vm.Increments.SetEnabled(enabled)
		}
	}

	s.showProductImage(resp.Image)

	ApplyAvailability(s.scope.AttributeElements(), resp.InStockAttributeIDs, resp.Behavior(), resp.OutOfStockMessage)
}

// applyMessage 更新购买提示区：有消息则替换并显示，否则整体隐藏
func (s *productService) applyMessage(vm *view.ProductView, message string) {
	if vm.Message == nil {
		return
	}
	if message != "" {
		vm.Message.SetText(message)
		vm.Message.Show()
	} else {
		vm.Message.Hide()
	}
}

// applyPrice 逐字段更新价格展示区，响应中缺失的字段保持原文案
func (s *productService) applyPrice(vm *view.ProductView, price *domain.ProductPrice) {
	if price == nil {
		return
	}
	if price.WithTax != nil && vm.PriceWithTax != nil {
		vm.PriceWithTax.SetText(price.WithTax.Formatted)
	}
	if price.WithoutTax != nil && vm.PriceWithoutTax != nil {
		vm.PriceWithoutTax.SetText(price.WithoutTax.Formatted)
	}
	if price.RRPWithTax != nil && vm.RRPWithTax != nil {
		vm.RRPWithTax.SetText(price.RRPWithTax.Formatted)
	}
	if price.RRPWithoutTax != nil && vm.RRPWithoutTax != nil {
		vm.RRPWithoutTax.SetText(price.RRPWithoutTax.Formatted)
	}
}

// showProductImage 执行图片更新步骤：任何选项变更都可能影响选中的变体图片，
// 因此即使其它字段全部缺失也必须执行
func (s *productService) showProductImage(image *domain.ProductImage) {
	if s.gallery == nil {
		return
	}
	if image == nil || image.Data == "" {
		s.gallery.RestoreImage()
		return
	}
	s.gallery.SetAlternateImage(view.AlternateImage{
		MainImageURL: imageutil.GetSrc(image.Data, s.imageSizes.Product),
		ZoomImageURL: imageutil.GetSrc(image.Data, s.imageSizes.Zoom),
	})
}
