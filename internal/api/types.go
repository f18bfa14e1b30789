// Package api 实现商品详情页与店面远程服务之间的 HTTP 客户端边界。
package api

import (
	"context"

	"github.com/MorseWayne/product_page/internal/domain"
)

// Storefront 定义核心流程依赖的店面远程服务能力
type Storefront interface {
	// OptionChange 提交当前表单状态，换取服务端计算出的权威商品状态
	OptionChange(ctx context.Context, productID string, form *domain.FormSnapshot) (*domain.AttributeChangeResponse, error)
	// CartItemAdd 提交加购表单（含文件字段）
	CartItemAdd(ctx context.Context, form *domain.FormSnapshot) (*domain.ItemAddResult, error)
	// CartGetContent 拉取按模板渲染的购物车预览片段
	CartGetContent(ctx context.Context, opts domain.CartContentOptions) (string, error)
}

// attributeEnvelope 选项变更响应的外层信封
type attributeEnvelope struct {
	Data *domain.AttributeChangeResponse `json:"data"`
}

// itemAddEnvelope 加购响应的外层信封
type itemAddEnvelope struct {
	Data *domain.ItemAddResult `json:"data"`
}
